package codedmsg_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codedmsg"
)

// TestPartition_Classes verifies residue routing, per-class ordering and the sum.
func TestPartition_Classes(t *testing.T) {
	c := codedmsg.Partition([]int{3, 6, 5, 1, 8})

	assert.Equal(t, []int{3, 6}, c.R[0], "R0 holds multiples of 3")
	assert.Equal(t, []int{1}, c.R[1], "R1 holds residue 1")
	assert.Equal(t, []int{5, 8}, c.R[2], "R2 holds residue 2")
	assert.Equal(t, 23, c.Sum)
	assert.Equal(t, 2, c.Residue())
	assert.Equal(t, 5, c.Len())
}

// TestPartition_SortsAscending checks that unsorted input ends up ascending per class.
func TestPartition_SortsAscending(t *testing.T) {
	c := codedmsg.Partition([]int{9, 7, 8, 0, 4, 2, 6, 1, 5, 3})

	assert.Equal(t, []int{0, 3, 6, 9}, c.R[0])
	assert.Equal(t, []int{1, 4, 7}, c.R[1])
	assert.Equal(t, []int{2, 5, 8}, c.R[2])
	assert.Equal(t, 45, c.Sum)
	assert.Equal(t, 0, c.Residue())
}

// TestPartition_Empty ensures nil and empty inputs produce empty classes.
func TestPartition_Empty(t *testing.T) {
	for _, in := range [][]int{nil, {}} {
		c := codedmsg.Partition(in)
		assert.Zero(t, c.Len())
		assert.Zero(t, c.Sum)
		assert.Zero(t, c.Residue())
		assert.Empty(t, c.Merge())
	}
}

// TestPartition_DoesNotMutateInput guards the caller's slice.
func TestPartition_DoesNotMutateInput(t *testing.T) {
	in := []int{5, 1, 3, 2}
	_ = codedmsg.Partition(in)
	assert.Equal(t, []int{5, 1, 3, 2}, in)
}

// TestPartition_MergeRoundTrip: merging the classes gives back the input multiset.
func TestPartition_MergeRoundTrip(t *testing.T) {
	inputs := [][]int{
		{1, 2, 3},
		{0, 0, 0, 0},
		{9, 9, 1, 1, 2, 2, 5, 8, 4},
		{12, 7, 30, 1},
	}
	for _, in := range inputs {
		got := codedmsg.Partition(in).Merge()
		want := slices.Clone(in)
		slices.Sort(got)
		slices.Sort(want)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Merge(Partition(%v)) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

// TestClasses_Clone verifies that a clone shares no backing arrays.
func TestClasses_Clone(t *testing.T) {
	orig := codedmsg.Partition([]int{1, 4, 2, 5, 3, 1})
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	removed, err := clone.Fix()
	require.NoError(t, err)
	require.Equal(t, []int{1}, removed)
	clone.R[0][0] = 99

	assert.Equal(t, []int{3}, orig.R[0], "clone writes must not leak")
	assert.Equal(t, []int{1, 1, 4}, orig.R[1])
	assert.Equal(t, 16, orig.Sum)
}

// TestClasses_ResidueNegativeSum keeps Residue in [0, 2] for negative sums.
func TestClasses_ResidueNegativeSum(t *testing.T) {
	assert.Equal(t, 2, codedmsg.Classes{Sum: -1}.Residue())
	assert.Equal(t, 1, codedmsg.Classes{Sum: -2}.Residue())
	assert.Equal(t, 0, codedmsg.Classes{Sum: -3}.Residue())
}
