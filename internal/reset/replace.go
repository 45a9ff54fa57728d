package reset

import (
	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/item"
)

// Replace swaps ref for a fresh, untransformed reference to the same asset,
// centered where ref was. Name, opacity and blend mode are carried over when the host allows it.
// If the fresh reference cannot be created, ref is returned unchanged with
// the error.
func Replace(ref item.Replaceable) (item.Replaceable, []StepError, error) {
	center := item.Center(ref)

	fresh, err := ref.ReinsertFresh()
	if err != nil {
		return ref, nil, err
	}

	var skipped []StepError
	attrs := ref.Attributes()
	for _, set := range []func() error{
		func() error { return fresh.SetName(attrs.Name) },
		func() error { return fresh.SetOpacity(attrs.Opacity) },
		func() error { return fresh.SetBlendMode(attrs.BlendMode) },
	} {
		if err := set(); err != nil {
			skipped = append(skipped, StepError{Step: StepAttributes, Err: err})
		}
	}

	pos := r2.Sub(center, r2.Scale(0.5, fresh.Size()))
	if err := fresh.SetPosition(pos); err != nil {
		skipped = append(skipped, StepError{Step: StepPosition, Err: err})
	}
	if err := ref.Remove(); err != nil {
		skipped = append(skipped, StepError{Step: StepRemove, Err: err})
	}
	return fresh, skipped, nil
}

func (e *Engine) replace(ref item.Replaceable, rep Report) (item.Ref, Report) {
	rep.CenterBefore, rep.SizeBefore = item.Center(ref), ref.Size()
	fresh, skipped, err := Replace(ref)
	for _, se := range skipped {
		e.skip(&rep, se)
	}
	if err != nil {
		e.skip(&rep, StepError{Step: StepReplace, Err: err})
		rep.CenterAfter, rep.SizeAfter = rep.CenterBefore, rep.SizeBefore
		return ref, rep
	}
	rep.Replaced = true
	rep.Steps = append(rep.Steps, StepReplace)
	rep.CenterAfter, rep.SizeAfter = item.Center(fresh), fresh.Size()
	return fresh, rep
}
