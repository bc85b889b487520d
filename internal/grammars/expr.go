package grammars

import (
	"strconv"

	"github.com/parsekit-go/parsec"
)

// Expr is a small recursive expression grammar, exported here (rather
// than left as a test fixture) so cmd/parsec can parse and display it:
//
//	expr = spaces >> (identifier | integer | '[' sep_by(expr, ',') ']')
type Expr struct {
	Id    string
	IsId  bool
	Int   int64
	IsInt bool
	Array []Expr
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlnum(r rune) bool {
	return isLetter(r) || isDigit(r)
}

func spaces() parsec.Parser[rune, []rune] {
	return parsec.Many(parsec.Space())
}

func integer() parsec.Parser[rune, int64] {
	return parsec.Map(parsec.Many1(parsec.Digit()), func(digits []rune) int64 {
		n, _ := strconv.ParseInt(string(digits), 10, 64)
		return n
	})
}

// identifier parses a bare word: a run of letters.
func identifier() parsec.Parser[rune, string] {
	return parsec.Map(parsec.Many1(parsec.SatisfyChar(isLetter)), func(rs []rune) string { return string(rs) })
}

// ExprParser builds the recursive Expr grammar, using Lazy for the
// self-reference inside the array production — the generic-core
// counterpart to json.go's string-keyed Grammar/Symbol recursion, for
// grammars that can be expressed directly as typed Go values.
func ExprParser() parsec.Parser[rune, Expr] {
	var expr parsec.Parser[rune, Expr]

	idExpr := parsec.Map(identifier(), func(id string) Expr {
		return Expr{Id: id, IsId: true}
	})
	intExpr := parsec.Map(integer(), func(n int64) Expr {
		return Expr{Int: n, IsInt: true}
	})
	comma := parsec.SatisfyChar(func(r rune) bool { return r == ',' })
	open := parsec.SatisfyChar(func(r rune) bool { return r == '[' })
	closeBracket := parsec.SatisfyChar(func(r rune) bool { return r == ']' })
	arrayExpr := parsec.Map(
		parsec.Between(open, closeBracket, parsec.SepBy(parsec.Lazy(func() parsec.Parser[rune, Expr] { return expr }), comma)),
		func(items []Expr) Expr { return Expr{Array: items} },
	)

	expr = parsec.With(spaces(), parsec.Or(idExpr, parsec.Or(intExpr, arrayExpr)))
	return expr
}

// ParseExprList parses a comma-separated list of Expr values, the shape
// exposed to cmd/parsec's `parse --grammar expr` subcommand. Trailing
// whitespace is skipped; any other input left after the list is an error.
func ParseExprList(input string) ([]Expr, error) {
	comma := parsec.SatisfyChar(func(r rune) bool { return r == ',' })
	v, next, err := parsec.ParseString(parsec.Skip(parsec.SepBy(ExprParser(), comma), spaces()), input)
	if err != nil {
		return nil, err
	}
	if rest, ok := parsec.Remaining(next.Input); ok && rest != "" {
		return nil, &parsec.ParseError{
			Position: next.Position,
			Reasons:  []parsec.Reason{{Kind: parsec.Message, Text: "incomplete parse, expected EOF but input remains"}},
		}
	}
	return v, nil
}
