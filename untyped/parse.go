package untyped

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// ParseError reports input that does not match the term grammar. Got is
// "EOF" when the input ended early.
type ParseError struct {
	Want string
	Got  string
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("invalid number %q: %v", e.Got, e.Err)
	case e.Want != "":
		return fmt.Sprintf("expected token %q, got %q", e.Want, e.Got)
	}
	return fmt.Sprintf("unexpected token %q", e.Got)
}

func (e *ParseError) Unwrap() error { return e.Err }

func unexpected(s string) error {
	return &ParseError{Got: s}
}

const eof = "EOF"

var symbols = []string{"(", ")", "\\", "."}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r'
}

func validateToken(s string) error {
	if slices.Contains(symbols, s) {
		return nil
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return unexpected(s)
	}
	return nil
}

func scan(s string) (res []string, err error) {
	res = strings.FieldsFunc(s, isSpace)
	sep := func(c string) []string {
		return lo.FlatMap(res, func(s string, _ int) (ret []string) {
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	for _, c := range symbols {
		res = sep(c)
	}
	for _, s := range res {
		if err := validateToken(s); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func expect(tok string, tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, &ParseError{Want: tok, Got: eof}
	}
	if hd := tokens[0]; hd != tok {
		return nil, &ParseError{Want: tok, Got: hd}
	}
	return tokens[1:], nil
}

func parseNumber(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{Got: tok, Err: err}
	}
	return n, nil
}

func parseLambda(tokens []string) (Term, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, &ParseError{Want: "number", Got: eof}
	}
	tok, tokens := tokens[0], tokens[1:]
	if slices.Contains(symbols, tok) {
		return nil, nil, &ParseError{Want: "number", Got: tok}
	}
	label, err := parseNumber(tok)
	if err != nil {
		return nil, nil, err
	}
	if tokens, err = expect(".", tokens); err != nil {
		return nil, nil, err
	}
	body, tokens, err := parseApp(tokens)
	if err != nil {
		return nil, nil, err
	}
	return Abs{label, body}, tokens, nil
}

func parseParenExpr(tokens []string) (Term, []string, error) {
	t, tokens, err := parseApp(tokens)
	if err != nil {
		return nil, nil, err
	}
	tokens, err = expect(")", tokens)
	return t, tokens, err
}

func parseSingle(tokens []string) (Term, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, unexpected(eof)
	}
	tok, tokens := tokens[0], tokens[1:]
	switch tok {
	case ")", ".":
		return nil, nil, unexpected(tok)
	case "(":
		return parseParenExpr(tokens)
	case "\\":
		return parseLambda(tokens)
	}
	n, err := parseNumber(tok)
	if err != nil {
		return nil, nil, err
	}
	return Var(n), tokens, nil
}

// parseApp parses one or more juxtaposed subterms and folds them into a
// left-associated application.
func parseApp(tokens []string) (Term, []string, error) {
	first, tokens, err := parseSingle(tokens)
	if err != nil {
		return nil, nil, err
	}
	var args []Term
	for len(tokens) > 0 && tokens[0] != ")" {
		var arg Term
		if arg, tokens, err = parseSingle(tokens); err != nil {
			return nil, nil, err
		}
		args = append(args, arg)
	}
	return lo.Reduce(args, func(fn Term, arg Term, _ int) Term {
		return App{fn, arg}
	}, first), tokens, nil
}

// Parse reads a single term. Whitespace between tokens is ignored and the
// whole input must be consumed.
func Parse(s string) (Term, error) {
	tokens, err := scan(s)
	if err != nil {
		return nil, err
	}
	t, tokens, err := parseApp(tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) != 0 {
		return nil, &ParseError{Want: eof, Got: tokens[0]}
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Term {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}
