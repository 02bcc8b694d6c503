package codedmsg

import (
	"math/big"
	"slices"
)

// Assemble merges the given classes, orders the digits largest first and
// reads them as a base-10 number, most significant digit first.
//
// The accumulation is acc = acc·10 + d over the descending sequence, which
// equals Σ d_i·10^(position from the right). Values above 9 therefore carry
// into the next position instead of being concatenated as text.
// An empty merge yields 0.
//
// Complexity: O(n log n) for the sort plus O(n) big-integer steps.
func Assemble(classes ...[]int) *big.Int {
	return valueOf(AssembleDigits(classes...))
}

// AssembleDigits returns the merged digits in descending order.
// Inputs are not modified.
func AssembleDigits(classes ...[]int) []int {
	var n int
	for _, cl := range classes {
		n += len(cl)
	}
	all := make([]int, 0, n)
	for _, cl := range classes {
		all = append(all, cl...)
	}
	slices.Sort(all)
	slices.Reverse(all)

	return all
}

// valueOf folds a most-significant-first digit sequence into a big.Int.
func valueOf(digits []int) *big.Int {
	var (
		acc  = new(big.Int)
		ten  = big.NewInt(10)
		step = new(big.Int)
		d    int
	)
	for _, d = range digits {
		acc.Mul(acc, ten)
		acc.Add(acc, step.SetInt64(int64(d)))
	}

	return acc
}
