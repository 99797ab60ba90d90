package untyped

// Shift adds d to every variable of t that is free relative to cutoff c.
// The cutoff grows by one under each abstraction.
func Shift(d, c int, t Term) Term {
	switch t := t.(type) {
	case Var:
		if int(t) < c {
			return t
		}
		return t + Var(d)
	case Abs:
		return Abs{t.Label, Shift(d, c+1, t.Body)}
	case App:
		return App{Shift(d, c, t.Fn), Shift(d, c, t.Arg)}
	}
	panic("unreachable")
}

// Subst replaces the occurrences of variable j in t with s. Under an
// abstraction j is incremented and s shifted up by one so that the free
// variables of s keep pointing at the same binders.
//
// Variables above j are left alone: the binder being eliminated is not
// renumbered away.
func Subst(j int, s, t Term) Term {
	switch t := t.(type) {
	case Var:
		if int(t) == j {
			return s
		}
		return t
	case Abs:
		return Abs{t.Label, Subst(j+1, Shift(1, 0, s), t.Body)}
	case App:
		return App{Subst(j, s, t.Fn), Subst(j, s, t.Arg)}
	}
	panic("unreachable")
}
