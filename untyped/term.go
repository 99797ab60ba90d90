// Package untyped implements the untyped lambda calculus over positional
// (De Bruijn) variables: parsing, single-step reduction under normal or
// applicative order, normalization, alpha-equivalence and printing.
//
// Every abstraction carries a Label. Reduction never looks at it; it is
// kept so that a term prints back the way it was written.
package untyped

import "strconv"

// Term is a lambda term. It is implemented by Var, Abs and App only.
// Terms are immutable, so a subterm may be shared between trees freely.
type Term interface {
	isTerm()
	DeBruijnString() string
	String() string
}

// Var is a positional variable: 0 names the nearest enclosing abstraction,
// 1 the next one out, and so on. Indices past the outermost abstraction
// are free variables.
type Var int

func (Var) isTerm() {}

func (v Var) DeBruijnString() string {
	return strconv.Itoa(int(v))
}

func (v Var) String() string {
	return strconv.Itoa(int(v))
}

// Abs introduces one binder around Body.
type Abs struct {
	Label int
	Body  Term
}

func (Abs) isTerm() {}

func (a Abs) DeBruijnString() string {
	return "(λ." + a.Body.DeBruijnString() + ")"
}

func (a Abs) String() string {
	return Format(a)
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

func (App) isTerm() {}

func (a App) DeBruijnString() string {
	return "(" + a.Fn.DeBruijnString() + " " + a.Arg.DeBruijnString() + ")"
}

func (a App) String() string {
	return Format(a)
}
