package reset

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"

	"xform-reset/internal/item"
)

// ErrNothingProcessed is returned when options were given but no item in the
// selection could be reset.
var ErrNothingProcessed = errors.New("reset: no eligible items in selection")

// Step names, in the order Apply runs them.
const (
	StepRotate     = "rotate"
	StepFlip       = "flip"
	StepRatio      = "ratio"
	StepScale      = "scale"
	StepPercent    = "percent"
	StepShear      = "shear"
	StepShearAgain = "shear-again"
	StepReplace    = "replace"
	StepAttributes = "attributes"
	StepRemove     = "remove"
	StepBounds     = "bounds"
	StepPosition   = "position"
)

// StepError records a host call that failed. The step is skipped and the
// remaining steps still run.
type StepError struct {
	Step string
	Err  error
}

func (e StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e StepError) Unwrap() error {
	return e.Err
}

// Report describes what Apply did to one item.
type Report struct {
	Name     string
	Category item.Category

	Ineligible bool
	Replaced   bool
	Steps      []string
	Skipped    []StepError

	CenterBefore, CenterAfter r2.Vec
	SizeBefore, SizeAfter     r2.Vec
}

// Touched reports whether Apply made any host call on the item.
func (r Report) Touched() bool {
	return r.Replaced || len(r.Steps) > 0 || len(r.Skipped) > 0
}

// Engine applies resets and logs skipped steps.
type Engine struct {
	log zerolog.Logger
}

// NewEngine returns an engine that logs through log.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{log: log}
}

var defaultEngine = NewEngine(zerolog.Nop())

// ApplyToSelection resets every item of refs with the same options using a
// silent engine. See Engine.ApplyToSelection.
func ApplyToSelection(opts Options, refs []item.Ref) ([]item.Ref, []Report, error) {
	return defaultEngine.ApplyToSelection(opts, refs)
}

// ApplyToSelection resets every item of refs with opts. The returned slice
// holds the same items, except that replaced items are swapped for their
// fresh references.
// An empty selection with any option set returns ErrNothingProcessed.
func (e *Engine) ApplyToSelection(opts Options, refs []item.Ref) ([]item.Ref, []Report, error) {
	if len(refs) == 0 && opts.Any() {
		return nil, nil, ErrNothingProcessed
	}
	return e.ApplyEach(refs, func(item.Ref) Options { return opts })
}

// ApplyEach is ApplyToSelection with options chosen per item. It returns
// ErrNothingProcessed when some item was asked for a reset but none of the
// items asked for one is eligible.
func (e *Engine) ApplyEach(refs []item.Ref, optsFor func(item.Ref) Options) ([]item.Ref, []Report, error) {
	out := make([]item.Ref, len(refs))
	reports := make([]Report, len(refs))
	requested, eligible := false, false
	for i, ref := range refs {
		opts := optsFor(ref)
		out[i], reports[i] = e.Apply(opts, ref)
		if opts.Any() {
			requested = true
			if !reports[i].Ineligible {
				eligible = true
			}
		}
	}
	if requested && !eligible {
		return out, reports, ErrNothingProcessed
	}
	return out, reports, nil
}

// Apply resets the components of ref selected by opts, keeping its
// bounding-box center in place. Steps always run in the order
// rotate, flip, ratio, scale, shear. Shear is removed a second time if
// round-off from the earlier steps leaves some behind.
//
// With no options set the item is not touched at all. Linked items with
// Replace are swapped for a fresh reference instead; the returned Ref is the
// item to use from then on.
func (e *Engine) Apply(opts Options, ref item.Ref) (item.Ref, Report) {
	rep := Report{Name: ref.Name(), Category: ref.Category()}
	if !rep.Category.Eligible() {
		rep.Ineligible = true
		return ref, rep
	}

	if opts.Replace && rep.Category == item.Linked {
		if r, ok := ref.(item.Replaceable); ok {
			return e.replace(r, rep)
		}
	}
	if !opts.matrixWork() {
		return ref, rep
	}

	rep.CenterBefore, rep.SizeBefore = item.Center(ref), ref.Size()
	skipped := Stabilize(ref, func() { e.run(opts, ref, &rep) })
	for _, se := range skipped {
		e.skip(&rep, se)
	}
	rep.CenterAfter, rep.SizeAfter = item.Center(ref), ref.Size()
	return ref, rep
}

func (e *Engine) run(opts Options, ref item.Ref, rep *Report) {
	step := func(name string, fn func() error) {
		if err := fn(); err != nil {
			e.skip(rep, StepError{Step: name, Err: err})
			return
		}
		rep.Steps = append(rep.Steps, name)
	}

	if opts.Rotate {
		step(StepRotate, func() error { return CancelRotation(ref) })
	}
	if opts.Flip {
		step(StepFlip, func() error { return UndoMirror(ref) })
	}
	if opts.Ratio {
		step(StepRatio, func() error { return EqualizeScale(ref) })
	}
	if opts.Scale {
		step(StepScale, func() error { return NormalizeScale(ref) })
		if p := opts.Percent(); p != DefaultPercent {
			step(StepPercent, func() error { return ref.ResizePercent(float64(p), float64(p)) })
		}
	}
	if opts.Skew {
		step(StepShear, func() error { return RemoveShear(ref) })
		if math.Abs(ShearOf(ref)) > ShearTolerance {
			step(StepShearAgain, func() error { return RemoveShear(ref) })
		}
	}
}

func (e *Engine) skip(rep *Report, se StepError) {
	e.log.Debug().
		Str("item", rep.Name).
		Str("category", rep.Category.String()).
		Str("step", se.Step).
		Err(se.Err).
		Msg("step skipped")
	rep.Skipped = append(rep.Skipped, se)
}
