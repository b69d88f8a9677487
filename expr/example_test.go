package expr_test

import (
	"fmt"

	"github.com/katalvlaran/solve24/expr"
	"github.com/katalvlaran/solve24/rpn"
)

// ExampleRender renders a postfix candidate with minimal parentheses.
func ExampleRender() {
	c := rpn.Candidate{
		rpn.Num(13), rpn.Num(7), rpn.Num(7), rpn.Oper(rpn.Div),
		rpn.Oper(rpn.Sub), rpn.Num(2), rpn.Oper(rpn.Mul),
	}
	fmt.Println(c)
	fmt.Println(expr.Render(c))
	// Output:
	// 13 7 7 / - 2 x
	// (13 - 7 / 7) x 2
}

// ExampleParse reads printer output back and evaluates it.
func ExampleParse() {
	n, err := expr.Parse("(1 + 2) x (1 + 7)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Eval())
	// Output:
	// 24
}
