package ratio

import "math"

// Add returns v + w: a/b + c/d = (a·d + b·c) / (b·d).
// An int64 overflow anywhere in the cross-multiplication yields Invalid.
//
// Complexity: O(1).
func (v Value) Add(w Value) Value {
	if v.IsInt() && w.IsInt() {
		s, ok := add(v.num, w.num)
		if !ok {
			return Invalid
		}
		return Int(s)
	}
	a, b := v.num, v.Den()
	c, d := w.num, w.Den()
	ad, ok1 := mul(a, d)
	bc, ok2 := mul(b, c)
	bd, ok3 := mul(b, d)
	n, ok4 := add(ad, bc)
	if !(ok1 && ok2 && ok3 && ok4) {
		return Invalid
	}

	return New(n, bd)
}

// Sub returns v - w: a/b - c/d = (a·d - b·c) / (b·d).
//
// Complexity: O(1).
func (v Value) Sub(w Value) Value {
	if v.IsInt() && w.IsInt() {
		s, ok := sub(v.num, w.num)
		if !ok {
			return Invalid
		}
		return Int(s)
	}
	a, b := v.num, v.Den()
	c, d := w.num, w.Den()
	ad, ok1 := mul(a, d)
	bc, ok2 := mul(b, c)
	bd, ok3 := mul(b, d)
	n, ok4 := sub(ad, bc)
	if !(ok1 && ok2 && ok3 && ok4) {
		return Invalid
	}

	return New(n, bd)
}

// Mul returns v × w: a/b · c/d = (a·c) / (b·d).
//
// Complexity: O(1).
func (v Value) Mul(w Value) Value {
	n, ok1 := mul(v.num, w.num)
	if v.IsInt() && w.IsInt() {
		if !ok1 {
			return Invalid
		}
		return Int(n)
	}
	d, ok2 := mul(v.Den(), w.Den())
	if !(ok1 && ok2) {
		return Invalid
	}

	return New(n, d)
}

// Div returns v ÷ w, multiplying v by the reciprocal of w.
// Dividing by a zero Value yields a deferred pair with divisor 0.
//
// Complexity: O(1).
func (v Value) Div(w Value) Value {
	return v.Mul(w.reciprocal())
}

// reciprocal swaps dividend and divisor without reducing, so 1/0 stays
// visible as a zero divisor. A value that already has a zero divisor is its
// own reciprocal.
func (v Value) reciprocal() Value {
	if v.Den() == 0 {
		return v
	}

	return Lazy(v.Den(), v.num)
}

// AddInt returns v + n.
func (v Value) AddInt(n int64) Value { return v.Add(Int(n)) }

// SubInt returns v - n.
func (v Value) SubInt(n int64) Value { return v.Sub(Int(n)) }

// MulInt returns v × n.
func (v Value) MulInt(n int64) Value { return v.Mul(Int(n)) }

// DivInt returns v ÷ n.
func (v Value) DivInt(n int64) Value { return v.Div(Int(n)) }

// IntAdd returns n + v.
func IntAdd(n int64, v Value) Value { return Int(n).Add(v) }

// IntSub returns n - v.
func IntSub(n int64, v Value) Value { return Int(n).Sub(v) }

// IntMul returns n × v.
func IntMul(n int64, v Value) Value { return Int(n).Mul(v) }

// IntDiv returns n ÷ v.
func IntDiv(n int64, v Value) Value { return Int(n).Div(v) }

// add, sub and mul report false when the int64 result wraps.

func add(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}

	return c, true
}

func sub(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, false
	}

	return c, true
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}
