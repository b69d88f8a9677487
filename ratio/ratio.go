package ratio

import (
	"math"
	"math/big"
	"strconv"
)

// Kind tags which variant a Value holds.
type Kind uint8

const (
	// Resolved values carry an exact integer.
	Resolved Kind = iota
	// Deferred values carry a dividend/divisor pair that did not divide evenly.
	Deferred
)

// Value is an immutable exact-or-deferred rational.
// The zero Value is the resolved integer 0.
type Value struct {
	kind Kind
	num  int64 // integer when Resolved, dividend when Deferred
	den  int64 // 1 when Resolved
}

// Invalid is the 0/0 pair produced when arithmetic overflows int64. Like any
// zero-divisor value it never forces to an integer and equals nothing.
var Invalid = Value{kind: Deferred}

// Int returns the resolved Value n.
func Int(n int64) Value {
	return Value{kind: Resolved, num: n, den: 1}
}

// New builds dividend/divisor, reducing to an integer when divisor != 0 and
// the division is exact. Otherwise the pair is kept as is.
func New(dividend, divisor int64) Value {
	if dividend == math.MinInt64 && divisor == -1 {
		return Invalid
	}
	if divisor != 0 && dividend%divisor == 0 {
		return Int(dividend / divisor)
	}

	return Value{kind: Deferred, num: dividend, den: divisor}
}

// Lazy builds a deferred pair without attempting any reduction.
func Lazy(dividend, divisor int64) Value {
	return Value{kind: Deferred, num: dividend, den: divisor}
}

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsInt reports whether v is resolved.
func (v Value) IsInt() bool { return v.kind == Resolved }

// Num returns the integer (resolved) or the dividend (deferred).
func (v Value) Num() int64 { return v.num }

// Den returns 1 (resolved) or the divisor (deferred).
func (v Value) Den() int64 {
	if v.kind == Resolved {
		return 1
	}

	return v.den
}

// Calculate forces v to an integer. A deferred pair that does not divide
// evenly, or has a zero divisor, forces to 0.
func (v Value) Calculate() int64 {
	n, _ := v.Exact()

	return n
}

// Exact forces v to an integer and reports whether that was possible.
func (v Value) Exact() (int64, bool) {
	if v.kind == Resolved {
		return v.num, true
	}
	if v.den == 0 || v.num%v.den != 0 || (v.num == math.MinInt64 && v.den == -1) {
		return 0, false
	}

	return v.num / v.den, true
}

// Equal reports whether v and w denote the same rational. Values with a zero
// divisor are equal to nothing, themselves included.
//
// Complexity: O(1).
func (v Value) Equal(w Value) bool {
	if v.Den() == 0 || w.Den() == 0 {
		return false
	}

	l, ok1 := mul(v.num, w.Den())
	r, ok2 := mul(w.num, v.Den())
	if ok1 && ok2 {
		return l == r
	}
	// Products beyond int64 are compared exactly.
	bl := new(big.Int).Mul(big.NewInt(v.num), big.NewInt(w.Den()))
	br := new(big.Int).Mul(big.NewInt(w.num), big.NewInt(v.Den()))

	return bl.Cmp(br) == 0
}

// Float64 returns the nearest float64. A zero divisor yields ±Inf or NaN.
func (v Value) Float64() float64 {
	if v.kind == Resolved {
		return float64(v.num)
	}

	return float64(v.num) / float64(v.den)
}

// String renders "n" for resolved values and "a/b" for deferred ones.
func (v Value) String() string {
	if v.kind == Resolved {
		return strconv.FormatInt(v.num, 10)
	}

	return strconv.FormatInt(v.num, 10) + "/" + strconv.FormatInt(v.den, 10)
}
