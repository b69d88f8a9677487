package solver

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/solve24/rpn"
)

// Solution is one distinct expression and the first candidate that rendered to it.
type Solution struct {
	Expr    string
	Postfix rpn.Candidate
}

// Summary counts the work done by one search.
type Summary struct {
	Orderings int // distinct value tuples searched
	Skipped   int // permutations dropped as repeated tuples
	Evaluated int // candidates evaluated
	Matched   int // candidates equal to the target, before string dedup
	Elapsed   time.Duration
}

// Result is the outcome of Solve.
type Result struct {
	Numbers   [4]int
	Target    int
	Solutions []Solution
	Summary   Summary
}

// Solved reports whether at least one solution was found.
func (r *Result) Solved() bool { return len(r.Solutions) > 0 }

// Expressions returns the solution strings in order.
func (r *Result) Expressions() []string {
	out := make([]string, len(r.Solutions))
	for i, s := range r.Solutions {
		out[i] = s.Expr
	}

	return out
}

// Unsolved returns the message printed when nothing reaches the target,
// e.g. "Cannot get 24 from [1, 1, 1, 1]".
func (r *Result) Unsolved() string {
	parts := make([]string, len(r.Numbers))
	for i, v := range r.Numbers {
		parts[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("Cannot get %d from [%s]", r.Target, strings.Join(parts, ", "))
}

// Lines returns the console output: numbered "NN. expr" lines, or the single
// Unsolved message.
func (r *Result) Lines() []string {
	if !r.Solved() {
		return []string{r.Unsolved()}
	}
	out := make([]string, len(r.Solutions))
	for i, s := range r.Solutions {
		out[i] = fmt.Sprintf("%02d. %s", i+1, s.Expr)
	}

	return out
}

// WriteTo writes Lines to w, one per line.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range r.Lines() {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
