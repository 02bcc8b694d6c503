// Package codedmsg defines the residue classes, results, options and
// sentinel errors used by the largest-multiple-of-three solver.
//
// Options:
//
//	– StrictDigits: reject any value greater than 9 (ErrDigitRange).
//	– Logger:       zap logger receiving Debug-level traces of each stage.
//
// Errors (sentinel):
//
//	– ErrInfeasible    no removal of at most two digits restores divisibility.
//	– ErrNegativeDigit an input value is negative.
//	– ErrDigitRange    an input value exceeds 9 while StrictDigits is set.
//	– ErrOverflow      the assembled value does not fit into int64.
package codedmsg

import (
	"errors"
	"math/big"

	"go.uber.org/zap"
)

// Sentinel errors returned by the solver.
var (
	// ErrInfeasible indicates that neither a single-digit nor a two-digit
	// removal can make the digit sum divisible by 3.
	// Only Fix reports it; Solve and Largest turn it into the zero value.
	ErrInfeasible = errors.New("codedmsg: no removal restores divisibility by 3")

	// ErrNegativeDigit indicates a negative input value.
	ErrNegativeDigit = errors.New("codedmsg: digit must be non-negative")

	// ErrDigitRange indicates a value outside [0, 9] under StrictDigits.
	ErrDigitRange = errors.New("codedmsg: digit out of range [0, 9]")

	// ErrOverflow indicates that the result does not fit into an int64.
	ErrOverflow = errors.New("codedmsg: value overflows int64")
)

// MaxInt64Digits is the longest input of single digits whose largest
// arrangement always fits into an int64 (999999999999999999 < 2^63-1).
const MaxInt64Digits = 18

// Classes holds the input digits split by their residue modulo 3.
//
// R[k] contains every digit d with d%3 == k, sorted ascending, so the
// smallest candidates for removal sit at the front. Sum is the digit sum
// of the digits currently held; only Sum%3 carries meaning.
type Classes struct {
	R   [3][]int
	Sum int
}

// Result is the full outcome of Largest.
type Result struct {
	// Value is the assembled number; zero when infeasible or nothing survives.
	Value *big.Int

	// Digits are the surviving digits, most significant first.
	Digits []int

	// Removed are the digits dropped to restore divisibility, ascending.
	Removed []int

	// Feasible is false when no removal of at most two digits helps.
	Feasible bool
}

// Options configures Largest.
type Options struct {
	StrictDigits bool        // reject values > 9
	Logger       *zap.Logger // Debug-level stage traces; never nil after DefaultOptions
}

// Option represents a functional option for configuring Largest.
type Option func(*Options)

// WithStrictDigits rejects any input value greater than 9 with ErrDigitRange.
func WithStrictDigits() Option {
	return func(o *Options) {
		o.StrictDigits = true
	}
}

// WithLogger routes stage traces to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns permissive options with a no-op logger.
//
// Defaults:
//   - StrictDigits: false (values above 9 are assembled positionally).
//   - Logger:       zap.NewNop().
func DefaultOptions() Options {
	return Options{
		StrictDigits: false,
		Logger:       zap.NewNop(),
	}
}
