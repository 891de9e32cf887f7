package asyncresult

import (
	"context"

	"github.com/digitalmonad/fpkit/result"
)

// Bracket acquires a resource, uses it, and releases it exactly once per
// successful acquisition.
//
// When acquire fails, its failure is returned directly and neither use nor
// release runs.  Otherwise use's outcome, success or failure, is captured
// and handed to release along with the resource, and release runs
// unconditionally.  A release failure wins over use's outcome; otherwise
// use's original outcome is the final result.
func Bracket[E, A, B any](
	acquire AsyncResult[E, A],
	use func(A) AsyncResult[E, B],
	release func(A, result.Result[E, B]) AsyncResult[E, struct{}],
) AsyncResult[E, B] {
	return Chain(acquire, func(resource A) AsyncResult[E, B] {
		return func(ctx context.Context) result.Result[E, B] {
			outcome := use(resource)(ctx)

			if e, failed := release(resource, outcome)(ctx).Failure(); failed {
				return result.Err[E, B](e)
			}
			return outcome
		}
	})
}
