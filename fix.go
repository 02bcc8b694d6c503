package codedmsg

// Fix removes the fewest, smallest digits needed to make the digit sum
// divisible by 3 and returns the removed digits in ascending order.
//
// Policy (sum residue → action):
//
//	0: nothing to do.
//	1: drop R1[0]; otherwise drop R2[0] and R2[1]; otherwise ErrInfeasible.
//	2: drop R2[0]; otherwise drop R1[0] and R1[1]; otherwise ErrInfeasible.
//
// Dropping the front of an ascending class removes its smallest values,
// which leaves the largest digits for assembly. Two digits of the
// complementary class shift the residue by 2·k ≡ -k (mod 3), which is
// exactly the correction a single digit of residue k would make.
//
// On ErrInfeasible the classes are left untouched. On success Sum is
// reduced by the removed digits, so Residue() reports 0.
//
// Complexity: O(1) amortised; at most two elements leave the front of a slice.
func (c *Classes) Fix() ([]int, error) {
	var need int
	need = c.Residue()
	if need == 0 {
		return nil, nil
	}

	// single is the class whose smallest digit alone fixes the residue;
	// pair is the complementary class that needs two digits.
	single, pair := need, 3-need
	switch {
	case len(c.R[single]) > 0:
		return c.dropFront(single, 1), nil
	case len(c.R[pair]) > 1:
		return c.dropFront(pair, 2), nil
	default:
		return nil, ErrInfeasible
	}
}

// dropFront removes the first n digits of class k and subtracts them from Sum.
func (c *Classes) dropFront(k, n int) []int {
	removed := make([]int, n)
	copy(removed, c.R[k][:n])
	c.R[k] = c.R[k][n:]

	var d int
	for _, d = range removed {
		c.Sum -= d
	}

	return removed
}
