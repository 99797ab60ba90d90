package untyped

import "golang.org/x/exp/slices"

// Equal reports whether a and b are alpha-equivalent.
//
// Labels act as binder names here: a variable n is bound by the innermost
// enclosing abstraction labelled n and is free otherwise. Two bound
// variables are equal when they point at the same binder depth, two free
// ones when their indices match. So \0.0 equals \1.1 but not \1.0.
func Equal(a, b Term) bool {
	return alphaEq(nil, nil, a, b)
}

func prepend(v int, from []int) []int {
	return append([]int{v}, from...)
}

func alphaEq(ctxA, ctxB []int, a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		if !ok {
			return false
		}
		i, j := slices.Index(ctxA, int(a)), slices.Index(ctxB, int(b))
		if i < 0 && j < 0 {
			return a == b
		}
		return i == j
	case Abs:
		b, ok := b.(Abs)
		if !ok {
			return false
		}
		return alphaEq(prepend(a.Label, ctxA), prepend(b.Label, ctxB), a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && alphaEq(ctxA, ctxB, a.Fn, b.Fn) && alphaEq(ctxA, ctxB, a.Arg, b.Arg)
	}
	return false
}
