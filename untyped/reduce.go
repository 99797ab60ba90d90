package untyped

import (
	"errors"
	"fmt"
)

// Strategy selects which redex Reduce contracts first.
type Strategy uint8

const (
	// Normal reduces the function position before the argument and
	// contracts a redex before looking inside its argument.
	Normal Strategy = iota
	// Applicative reduces the argument first. It never reduces inside a
	// function position that is not an abstraction.
	Applicative
)

func (s Strategy) String() string {
	switch s {
	case Normal:
		return "normal"
	case Applicative:
		return "applicative"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "normal":
		return Normal, nil
	case "applicative":
		return Applicative, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// beta contracts (λ.body) arg.
func beta(body, arg Term) Term {
	return Subst(0, arg, body)
}

// Reduce performs at most one beta step of t under s. The boolean is
// false when t is irreducible under s.
func Reduce(t Term, s Strategy) (Term, bool) {
	switch t := t.(type) {
	case Abs:
		body, ok := Reduce(t.Body, s)
		if !ok {
			return nil, false
		}
		return Abs{t.Label, body}, true
	case App:
		if s == Applicative {
			return reduceApplicative(t)
		}
		return reduceNormal(t)
	}
	return nil, false
}

func reduceNormal(t App) (Term, bool) {
	if fn, ok := Reduce(t.Fn, Normal); ok {
		return App{fn, t.Arg}, true
	}
	if abs, ok := t.Fn.(Abs); ok {
		return beta(abs.Body, t.Arg), true
	}
	if arg, ok := Reduce(t.Arg, Normal); ok {
		return App{t.Fn, arg}, true
	}
	return nil, false
}

func reduceApplicative(t App) (Term, bool) {
	if arg, ok := Reduce(t.Arg, Applicative); ok {
		return App{t.Fn, arg}, true
	}
	if abs, ok := t.Fn.(Abs); ok {
		return beta(abs.Body, t.Arg), true
	}
	return nil, false
}

// NormalForm reduces t under s until no step applies. It does not return
// for terms without a normal form under s; use an Evaluator with MaxSteps
// set when that matters.
func NormalForm(t Term, s Strategy) Term {
	for {
		next, ok := Reduce(t, s)
		if !ok {
			return t
		}
		t = next
	}
}

// ErrStepLimit is returned by Evaluator.Run when MaxSteps runs out before
// a normal form is reached.
var ErrStepLimit = errors.New("step limit reached")

// Evaluator normalizes terms with an optional step budget and trace hook.
type Evaluator struct {
	Strategy Strategy
	// MaxSteps bounds the number of reductions. Zero means no bound.
	MaxSteps int
	// Trace, if non-nil, is called with each term produced by a step.
	Trace func(step int, t Term)
}

// Run normalizes t and reports how many steps it took. On ErrStepLimit
// the returned term is the last one reached.
func (e Evaluator) Run(t Term) (Term, int, error) {
	steps := 0
	for {
		if e.MaxSteps > 0 && steps == e.MaxSteps {
			if _, ok := Reduce(t, e.Strategy); ok {
				return t, steps, fmt.Errorf("%w after %d steps", ErrStepLimit, steps)
			}
			return t, steps, nil
		}
		next, ok := Reduce(t, e.Strategy)
		if !ok {
			return t, steps, nil
		}
		steps++
		t = next
		if e.Trace != nil {
			e.Trace(steps, t)
		}
	}
}
