// Package expr turns postfix candidates into expression trees and renders them
// as infix text with only the parentheses the grammar needs.
//
// Rendering rules, keyed on a node's operator and its child's operator:
//
//	+   never wraps a child
//	-   wraps a right child that is + or -
//	x   wraps any child that is + or -
//	/   wraps any child that is + or -, and a right child that is x or /
//
// The - row is the one departure from the plain four-rule printer, which
// wraps only a right - child and so prints a - (b + c) as a - b + c.
//
// Multiplication prints as "x". Leaves print in decimal.
//
// Parse reads the same text back with standard precedence (x and / bind
// tighter than + and -, all left-associative), so a rendered expression can be
// re-evaluated independently of the candidate that produced it.
//
// Errors:
//
//   - ErrSyntax: the input is not a well-formed expression.
package expr
