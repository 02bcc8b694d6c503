// Package codedmsg finds the largest number divisible by 3 that can be built
// from a multiset of digits, each used at most once.
//
// 🚀 How it works
//
//	A number is divisible by 3 exactly when its digit sum is, so the order
//	of the digits never matters for divisibility. The solver therefore:
//	  • Partition: splits the digits into residue classes R0, R1, R2 (d mod 3),
//	    each sorted ascending, and sums them.
//	  • Fix: if the sum mod 3 is k ≠ 0, drops the smallest digit of Rk,
//	    or, when Rk is empty, the two smallest digits of R(3−k).
//	  • Assemble: orders the survivors largest first and reads them as a
//	    base-10 number.
//
// When neither removal is possible the input admits no valid number and the
// result is 0. Likewise an input that is empty after removal yields 0.
//
// ✨ Key features:
//   - never removes more than two digits, and removes one whenever one suffices
//   - arbitrary precision results (math/big); SolveInt64 refuses to wrap
//   - optional strict [0, 9] validation and zap debug tracing via functional options
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/codedmsg"
//
//	v := codedmsg.Solve([]int{3, 6, 5, 1, 8}) // 8631
//
//	res, err := codedmsg.Largest(digits, codedmsg.WithStrictDigits())
//	if err != nil {
//	  // ErrNegativeDigit or ErrDigitRange
//	}
//	fmt.Println(res.Value, res.Digits, res.Removed, res.Feasible)
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(n)
//
// Thread safety:
//
//   - Every call is pure and keeps no shared state; concurrent calls are safe.
//
// The command in cmd/codedmsg wraps Largest for use from a shell.
package codedmsg
