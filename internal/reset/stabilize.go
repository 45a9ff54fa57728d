package reset

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/item"
)

// Stabilize runs fn and then moves ref so that the center of its bounding
// box is where it was before, even if fn changed the item's size. Cached
// bounds are recomputed before the move. Failures of the recompute or the
// move are returned as step errors; an unsupported recompute is not a failure.
func Stabilize(ref item.Ref, fn func()) []StepError {
	center := item.Center(ref)

	fn()

	var errs []StepError
	if err := ref.RecomputeBounds(); err != nil && !errors.Is(err, item.ErrUnsupported) {
		errs = append(errs, StepError{Step: StepBounds, Err: err})
	}
	pos := r2.Sub(center, r2.Scale(0.5, ref.Size()))
	if err := ref.SetPosition(pos); err != nil {
		errs = append(errs, StepError{Step: StepPosition, Err: err})
	}
	return errs
}
