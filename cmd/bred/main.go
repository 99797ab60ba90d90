// Command bred reads a lambda term, reduces it to normal form and prints
// the result.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/0pd/bred/untyped"
	"github.com/peterh/liner"
	"github.com/samber/lo"
)

var (
	normal      = flag.Bool("normal", false, "reduce in normal order (default)")
	applicative = flag.Bool("applicative", false, "reduce in applicative order")
	maxSteps    = flag.Int("max-steps", 0, "give up after `n` reductions (0 means never)")
	trace       = flag.Bool("trace", false, "print every intermediate term")
	deBruijn    = flag.Bool("debruijn", false, "print results without binder labels")
	interactive = flag.Bool("i", false, "read terms interactively")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: bred [ -normal | -applicative ] [ -max-steps n ] [ -trace ] [ -debruijn ] [ -i | file ]\n\n")
	fmt.Fprint(os.Stderr, "bred reduces a term of the untyped lambda calculus, written with\n")
	fmt.Fprint(os.Stderr, "positional variables, to normal form.\n\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

type config struct {
	strategy untyped.Strategy
	maxSteps int
	trace    bool
	deBruijn bool
}

func (c config) format(t untyped.Term) string {
	if c.deBruijn {
		return t.DeBruijnString()
	}
	return untyped.Format(t)
}

// eval normalizes one line of input and writes the result, or the error
// message, to w.
func (c config) eval(w io.Writer, line string) error {
	t, err := untyped.Parse(line)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return err
	}
	e := untyped.Evaluator{Strategy: c.strategy, MaxSteps: c.maxSteps}
	if c.trace {
		e.Trace = func(step int, t untyped.Term) {
			fmt.Fprintf(w, "step %d: %s\n", step, c.format(t))
		}
	}
	t, _, err = e.Run(t)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(w, c.format(t))
	return nil
}

// run evaluates the first line of r.
func (c config) run(r io.Reader, w io.Writer) error {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return c.eval(w, line)
}

func (c config) repl(w io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	prompt := "bred(" + c.strategy.String() + ")> "
	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		// Errors are already reported on w; keep reading.
		_ = c.eval(w, input)
	}
}

func parseConfig() config {
	if *normal && *applicative {
		usage()
	}
	c := config{
		strategy: lo.Ternary(*applicative, untyped.Applicative, untyped.Normal),
		maxSteps: *maxSteps,
		trace:    *trace,
		deBruijn: *deBruijn,
	}
	if c.maxSteps < 0 {
		usage()
	}
	return c
}

func main() {
	flag.Usage = usage
	flag.Parse()
	c := parseConfig()
	args := flag.Args()
	if len(args) > 1 || (*interactive && len(args) != 0) {
		usage()
	}
	if *interactive {
		if err := c.repl(os.Stdout); err != nil {
			errExit(err)
		}
		return
	}
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			usage()
		}
		defer f.Close()
		in = f
	}
	if err := c.run(in, os.Stdout); err != nil {
		os.Exit(1)
	}
}
