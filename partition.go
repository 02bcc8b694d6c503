package codedmsg

import "slices"

// Partition splits digits into the three residue classes modulo 3 and
// accumulates their sum.
//
// Contract:
//   - Every input digit lands in exactly one class, chosen by its residue.
//   - Each class is sorted ascending.
//   - digits is not modified; nil and empty inputs yield empty classes.
//
// Complexity: O(n log n) time for the per-class sorts, O(n) space.
func Partition(digits []int) Classes {
	var c Classes
	var d int
	for _, d = range digits {
		c.Sum += d
		k := residue(d)
		c.R[k] = append(c.R[k], d)
	}
	for k := range c.R {
		slices.Sort(c.R[k])
	}

	return c
}

// Residue returns the digit sum modulo 3, always in [0, 2].
func (c Classes) Residue() int {
	return residue(c.Sum)
}

// Len reports how many digits the classes hold.
func (c Classes) Len() int {
	return len(c.R[0]) + len(c.R[1]) + len(c.R[2])
}

// Merge returns every held digit in a fresh slice: R0, then R1, then R2.
// The result is the same multiset that was partitioned, minus any removals.
func (c Classes) Merge() []int {
	out := make([]int, 0, c.Len())
	for k := range c.R {
		out = append(out, c.R[k]...)
	}

	return out
}

// Clone returns a deep copy so Fix can run without touching c.
func (c Classes) Clone() Classes {
	var out Classes
	out.Sum = c.Sum
	for k := range c.R {
		out.R[k] = slices.Clone(c.R[k])
	}

	return out
}

// residue maps any int onto [0, 2]; Go's % keeps the dividend's sign.
func residue(v int) int {
	r := v % 3
	if r < 0 {
		r += 3
	}

	return r
}
