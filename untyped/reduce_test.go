package untyped

import (
	"errors"
	"testing"
)

var strategies = []Strategy{Normal, Applicative}

const (
	fst        = `\1. \0. 1`
	id         = `\0. 0`
	bigOmega   = `(\0. 0 0) \0. 0 0`
	fstIdOmega = `((\1.\0.1) (\0.0)) ((\0.0 0) (\0.0 0))`
)

func TestNormalForm(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"0", "0"},
		{`\0.0`, `\0.0`},
		{`(\0.0) 0`, "0"},
		{`(\1.\0.1) (\0.0)`, `\1.\0.0`},
		{`\0. (\1.0) 0`, `\0.0`},
		{`(\0.0) ((\0.0) 7)`, "7"},
		{`(\0.\1.0 1) (\2.2)`, `\1. 0 \2. 3`},
		{`(\0. 0 0) (\0. 0)`, `\0.0`},
	}
	for _, s := range strategies {
		for _, tt := range tests {
			got := NormalForm(MustParse(tt.in), s)
			if want := MustParse(tt.want); !Equal(got, want) {
				t.Errorf("%s: NormalForm(%s) = %s, want %s", s, tt.in, got, want)
			}
		}
	}
}

func TestNormalFormIdempotent(t *testing.T) {
	for _, s := range strategies {
		for _, in := range []string{"0", id, fst, `(\0.0) 0`, `(\0.\1.0 1) (\2.2)`, `\3. (\0.0) 3 \4. 4`} {
			nf := NormalForm(MustParse(in), s)
			if again := NormalForm(nf, s); !Equal(again, nf) {
				t.Errorf("%s: NormalForm(%s) not a fixed point: %s -> %s", s, in, nf, again)
			}
			if _, ok := Reduce(nf, s); ok {
				t.Errorf("%s: %s still reduces", s, nf)
			}
		}
	}
}

func TestFstIdOmega(t *testing.T) {
	term := MustParse(fstIdOmega)

	if got := NormalForm(term, Normal); !Equal(got, MustParse(id)) {
		t.Errorf("NormalForm(%s, normal) = %s, want %s", fstIdOmega, got, id)
	}

	// Applicative order evaluates the discarded omega first and never stops.
	e := Evaluator{Strategy: Applicative, MaxSteps: 100}
	_, steps, err := e.Run(term)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("Run(%s, applicative) error = %v, want ErrStepLimit", fstIdOmega, err)
	}
	if steps != 100 {
		t.Errorf("steps = %d, want 100", steps)
	}
}

func TestOmegaIsItsOwnReduct(t *testing.T) {
	omega := MustParse(bigOmega)
	for _, s := range strategies {
		next, ok := Reduce(omega, s)
		if !ok {
			t.Fatalf("%s: %s did not reduce", s, bigOmega)
		}
		if next != omega {
			t.Errorf("%s: %s -> %s", s, omega, next)
		}
	}
}

func TestBetaStep(t *testing.T) {
	tests := []struct {
		body, arg Term
	}{
		{Var(0), Var(3)},
		{App{Var(0), Abs{2, App{Var(1), Var(0)}}}, Abs{3, Var(0)}},
		{Abs{1, App{Var(1), Var(1)}}, App{Var(5), Var(6)}},
		{App{Var(2), Var(0)}, Abs{4, Abs{5, Var(1)}}},
	}
	for _, s := range strategies {
		for _, tt := range tests {
			redex := App{Abs{9, tt.body}, tt.arg}
			got, ok := Reduce(redex, s)
			if !ok {
				t.Fatalf("%s: %s did not reduce", s, redex)
			}
			if want := Subst(0, tt.arg, tt.body); !Equal(got, want) {
				t.Errorf("%s: Reduce(%s) = %s, want %s", s, redex, got, want)
			}
		}
	}
}

func TestApplicativeStuckHead(t *testing.T) {
	// The redex sits inside a function position that is not an abstraction.
	term := MustParse(`0 ((\0.0) 1) 2`)

	if got, want := NormalForm(term, Normal), MustParse("0 1 2"); got != want {
		t.Errorf("normal: got %s, want %s", got, want)
	}
	if _, ok := Reduce(term, Applicative); ok {
		t.Errorf("applicative: %s reduced", term)
	}
	if got := NormalForm(term, Applicative); got != term {
		t.Errorf("applicative: got %s, want %s", got, term)
	}
}

func TestReduceOrder(t *testing.T) {
	term := MustParse(`(\0. 1) ((\0.0) 2)`)
	tests := []struct {
		s    Strategy
		want string
	}{
		{Normal, "1"},
		{Applicative, `(\0. 1) 2`},
	}
	for _, tt := range tests {
		got, ok := Reduce(term, tt.s)
		if !ok {
			t.Fatalf("%s: %s did not reduce", tt.s, term)
		}
		if want := MustParse(tt.want); got != want {
			t.Errorf("%s: Reduce(%s) = %s, want %s", tt.s, term, got, want)
		}
	}
}

func TestEvaluatorTrace(t *testing.T) {
	for _, s := range strategies {
		var trace []string
		e := Evaluator{Strategy: s, Trace: func(step int, term Term) {
			trace = append(trace, term.String())
		}}
		got, steps, err := e.Run(MustParse(`(\0.0) ((\0.0) 0)`))
		if err != nil {
			t.Fatal(err)
		}
		if got != Var(0) || steps != 2 {
			t.Errorf("%s: Run = %s, %d steps; want 0, 2 steps", s, got, steps)
		}
		if len(trace) != 2 || trace[0] != `(\0. 0) 0` || trace[1] != "0" {
			t.Errorf("%s: trace = %q", s, trace)
		}
	}
}

func TestEvaluatorStepLimit(t *testing.T) {
	term := MustParse(`(\0.0) ((\0.0) 0)`)

	got, steps, err := Evaluator{MaxSteps: 2}.Run(term)
	if err != nil || got != Var(0) || steps != 2 {
		t.Errorf("MaxSteps 2: Run = %s, %d, %v", got, steps, err)
	}

	got, steps, err = Evaluator{MaxSteps: 1}.Run(term)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("MaxSteps 1: error = %v, want ErrStepLimit", err)
	}
	if want := MustParse(`(\0.0) 0`); got != want || steps != 1 {
		t.Errorf("MaxSteps 1: Run = %s, %d; want %s, 1", got, steps, want)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range strategies {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseStrategy("lazy"); err == nil {
		t.Error("ParseStrategy(\"lazy\") succeeded")
	}
}
