// Package codedmsg - entry points chaining partition → fix → assemble.
//
// Largest is the detailed form: it validates the input, records the removed
// digits and reports feasibility. Solve is the plain form returning only the
// value, with 0 standing in for "no valid number". SolveInt64 narrows the
// value to a fixed-width integer and refuses to wrap.
package codedmsg

import (
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// Largest returns the largest number divisible by 3 formed from a sub-multiset
// of digits, dropping at most two of them.
//
// Stages:
//  1. validate: negative values are rejected; values above 9 too under StrictDigits.
//  2. Partition into residue classes.
//  3. Fix the residue; ErrInfeasible becomes Result{Feasible: false}.
//  4. Assemble the survivors in descending order.
//
// Errors: ErrNegativeDigit, ErrDigitRange (wrapped with the offending index).
// Infeasibility is not an error.
//
// Complexity: O(n log n) time, O(n) space.
func Largest(digits []int, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	log := cfg.Logger

	// 2) Reject values the residue logic does not cover.
	if err := validate(digits, cfg.StrictDigits); err != nil {
		return Result{Value: new(big.Int)}, err
	}

	// 3) Partition.
	c := Partition(digits)
	log.Debug("partitioned digits",
		zap.Int("n", len(digits)),
		zap.Int("sum", c.Sum),
		zap.Int("residue", c.Residue()),
		zap.Ints("r0", c.R[0]),
		zap.Ints("r1", c.R[1]),
		zap.Ints("r2", c.R[2]),
	)

	// 4) Fix the residue.
	removed, err := c.Fix()
	if errors.Is(err, ErrInfeasible) {
		log.Debug("no removal restores divisibility",
			zap.Int("r1", len(c.R[1])),
			zap.Int("r2", len(c.R[2])),
		)

		return Result{Value: new(big.Int), Feasible: false}, nil
	}
	if len(removed) > 0 {
		log.Debug("removed digits", zap.Ints("removed", removed))
	}

	// 5) Assemble.
	out := AssembleDigits(c.R[0], c.R[1], c.R[2])
	res := Result{
		Value:    valueOf(out),
		Digits:   out,
		Removed:  removed,
		Feasible: true,
	}
	log.Debug("assembled value", zap.Stringer("value", res.Value), zap.Int("digits", len(out)))

	return res, nil
}

// Solve returns the largest number divisible by 3 that the digits can form,
// or 0 when none exists. It never returns nil and never fails: rejected
// input also yields 0.
func Solve(digits []int) *big.Int {
	res, err := Largest(digits)
	if err != nil {
		return new(big.Int)
	}

	return res.Value
}

// SolveInt64 is Solve narrowed to int64.
// Inputs of at most MaxInt64Digits single digits never overflow.
//
// Errors: ErrNegativeDigit, ErrOverflow.
func SolveInt64(digits []int) (int64, error) {
	res, err := Largest(digits)
	if err != nil {
		return 0, err
	}
	if !res.Value.IsInt64() {
		return 0, fmt.Errorf("%w: %d digits", ErrOverflow, len(res.Digits))
	}

	return res.Value.Int64(), nil
}

// validate checks each value against the accepted range.
func validate(digits []int, strict bool) error {
	var (
		i int
		d int
	)
	for i, d = range digits {
		if d < 0 {
			return fmt.Errorf("%w: index %d value %d", ErrNegativeDigit, i, d)
		}
		if strict && d > 9 {
			return fmt.Errorf("%w: index %d value %d", ErrDigitRange, i, d)
		}
	}

	return nil
}
