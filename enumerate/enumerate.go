package enumerate

import "github.com/katalvlaran/solve24/rpn"

// Build encodes one (tuple, triple, shape) combination as a postfix candidate.
//
// Complexity: O(1).
func Build(nums [4]int, ops Triple, s Shape) rpn.Candidate {
	n0, n1, n2, n3 := rpn.Num(nums[0]), rpn.Num(nums[1]), rpn.Num(nums[2]), rpn.Num(nums[3])
	o1, o2, o3 := rpn.Oper(ops[0]), rpn.Oper(ops[1]), rpn.Oper(ops[2])

	switch s {
	case Balanced:
		return rpn.Candidate{n0, n1, o1, n2, n3, o2, o3}
	case InnerLeft:
		return rpn.Candidate{n0, n1, n2, o1, o2, n3, o3}
	case InnerRight:
		return rpn.Candidate{n0, n1, n2, o1, n3, o2, o3}
	case RightChain:
		return rpn.Candidate{n0, n1, n2, n3, o1, o2, o3}
	default:
		return rpn.Candidate{n0, n1, o1, n2, o2, n3, o3}
	}
}

// Apply reorders numbers by the index permutation perm.
func Apply(numbers [4]int, perm [4]int) [4]int {
	var out [4]int
	for i, idx := range perm {
		out[i] = numbers[idx]
	}

	return out
}

// Orderings returns the distinct value tuples produced by Permutations over
// numbers, in permutation order, and how many permutations were skipped
// because their tuple had already been produced.
//
// Complexity: O(24) time and space.
func Orderings(numbers [4]int) (tuples [][4]int, skipped int) {
	seen := make(map[[4]int]struct{}, len(Permutations))
	tuples = make([][4]int, 0, len(Permutations))
	for _, perm := range Permutations {
		t := Apply(numbers, perm)
		// Repeated values yield repeated tuples.
		if _, dup := seen[t]; dup {
			skipped++
			continue
		}
		seen[t] = struct{}{}
		tuples = append(tuples, t)
	}

	return tuples, skipped
}

// Variants returns the candidates of every shape for one tuple and triple,
// in Shapes order.
//
// Complexity: O(len(Shapes)).
func Variants(nums [4]int, ops Triple) [len(Shapes)]rpn.Candidate {
	var out [len(Shapes)]rpn.Candidate
	for i, s := range Shapes {
		out[i] = Build(nums, ops, s)
	}

	return out
}
