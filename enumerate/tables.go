package enumerate

import "github.com/katalvlaran/solve24/rpn"

// Permutations lists every ordering of four indices in lexicographic order.
var Permutations = [24][4]int{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 2, 3, 1}, {0, 3, 1, 2}, {0, 3, 2, 1},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {1, 2, 0, 3}, {1, 2, 3, 0}, {1, 3, 0, 2}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 0, 3, 1}, {2, 1, 0, 3}, {2, 1, 3, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{3, 0, 1, 2}, {3, 0, 2, 1}, {3, 1, 0, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// Triple is an (op1, op2, op3) assignment, op1 applied first.
type Triple [3]rpn.Op

// Triples lists all 64 operator triples, op1 varying slowest.
var Triples = buildTriples()

func buildTriples() [64]Triple {
	var out [64]Triple
	i := 0
	for _, a := range rpn.Ops {
		for _, b := range rpn.Ops {
			for _, c := range rpn.Ops {
				out[i] = Triple{a, b, c}
				i++
			}
		}
	}

	return out
}

// Shape is one of the five ways to bracket four operands.
type Shape uint8

const (
	LeftChain Shape = iota
	Balanced
	InnerLeft
	InnerRight
	RightChain
)

// Shapes lists every shape in search order.
var Shapes = [5]Shape{LeftChain, Balanced, InnerLeft, InnerRight, RightChain}

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case LeftChain:
		return "LeftChain"
	case Balanced:
		return "Balanced"
	case InnerLeft:
		return "InnerLeft"
	case InnerRight:
		return "InnerRight"
	case RightChain:
		return "RightChain"
	}

	return "Shape(?)"
}
