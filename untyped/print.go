package untyped

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Format renders t in the syntax accepted by Parse with as few
// parentheses as possible. An abstraction extends as far right as it can,
// so it is bare only at the end of an application spine.
func Format(t Term) string {
	switch t := t.(type) {
	case Var:
		return strconv.Itoa(int(t))
	case Abs:
		return "\\" + strconv.Itoa(t.Label) + ". " + Format(t.Body)
	case App:
		hd, args := spine(t)
		head := Format(hd)
		if _, ok := hd.(Abs); ok {
			head = "(" + head + ")"
		}
		last := len(args) - 1
		return strings.Join(append([]string{head}, lo.Map(args, func(arg Term, i int) string {
			switch arg.(type) {
			case Var:
				return Format(arg)
			case Abs:
				if i == last {
					return Format(arg)
				}
			}
			return "(" + Format(arg) + ")"
		})...), " ")
	}
	panic("unreachable")
}

// spine unwinds nested applications f a1 ... an into f and a1 ... an.
func spine(t App) (Term, []Term) {
	var args []Term
	var hd Term = t
	for {
		app, ok := hd.(App)
		if !ok {
			return hd, args
		}
		args = append([]Term{app.Arg}, args...)
		hd = app.Fn
	}
}
