// Package enumerate generates the complete search space of four-operand
// postfix candidates.
//
// Space:
//
//   - Permutations: the 24 index orderings of four positions, lexicographic.
//   - Triples:      the 4³ = 64 ordered operator triples, Add < Sub < Mul < Div.
//   - Shapes:       the 5 binary-tree shapes (Catalan C₃) over four operands.
//
// For operands (n0, n1, n2, n3) and operators (op1 applied first, op3 last):
//
//	LeftChain   n0 n1 op1 n2 op2 n3 op3   ((n0∘n1)∘n2)∘n3
//	Balanced    n0 n1 op1 n2 n3 op2 op3   (n0∘n1)∘(n2∘n3)
//	InnerLeft   n0 n1 n2 op1 op2 n3 op3   (n0∘(n1∘n2))∘n3
//	InnerRight  n0 n1 n2 op1 n3 op2 op3   n0∘((n1∘n2)∘n3)
//	RightChain  n0 n1 n2 n3 op1 op2 op3   n0∘(n1∘(n2∘n3))
//
// Orderings drops permutations whose concrete value tuple was already
// produced, so inputs with repeated values are never searched twice.
//
// Complexity: at most 24 × 64 × 5 = 7,680 candidates per input.
package enumerate
