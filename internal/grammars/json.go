// Package grammars hosts concrete grammars built on top of parsec: example
// consumers of the library rather than part of its core, of exactly the
// shape a CLI demonstrating the library needs.
package grammars

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/parsekit-go/parsec"
)

// keyValue is the intermediate result of the "keyValue" production.
type keyValue struct {
	key   string
	value any
}

func isJSONSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

// JSON builds a JSON grammar using parsec.Grammar. Object results are
// backed by github.com/emirpasic/gods's linkedhashmap rather than a plain
// map, so JSON object keys preserve insertion order for display.
func JSON() *parsec.Grammar {
	g := parsec.NewGrammar()

	g.AddSymbol("ws", parsec.Boxed(parsec.Many(parsec.SatisfyChar(isJSONSpace))))

	g.AddSymbol("START", parsec.Boxed(
		parsec.Skip(parsec.With(g.Symbol("ws"), g.Symbol("jsonValue")), g.Symbol("ws")),
	))

	g.AddSymbol("jsonValue", parsec.Boxed(parsec.Or(
		g.Symbol("array"), parsec.Or(
			g.Symbol("object"), parsec.Or(
				g.Symbol("null"), parsec.Or(
					g.Symbol("bool"), parsec.Or(
						g.Symbol("string"), g.Symbol("number"))))))))

	g.WithAction("null", parsec.Boxed(parsec.Literal("null")), func(any) (any, error) {
		return nil, nil
	})

	g.WithAction("bool", parsec.Boxed(parsec.Or(parsec.Literal("false"), parsec.Literal("true"))), func(res any) (any, error) {
		return res.(string) == "true", nil
	})

	g.AddSymbol("string", parsec.Boxed(jsonString()))

	g.WithAction("number", parsec.Boxed(jsonNumberText()), func(res any) (any, error) {
		return parseJSONNumber(res.(string)), nil
	})

	g.AddSymbol("comma", parsec.Boxed(
		parsec.Skip(parsec.With(g.Symbol("ws"), parsec.Literal(",")), g.Symbol("ws")),
	))

	g.WithAction("object", parsec.Boxed(parsec.Between(
		wrapped(g, "{"), wrapped(g, "}"),
		parsec.SepBy(g.Symbol("keyValue"), g.Symbol("comma")),
	)), func(res any) (any, error) {
		out := linkedhashmap.New()
		for _, p0 := range res.([]any) {
			p := p0.(keyValue)
			out.Put(p.key, p.value)
		}
		return out, nil
	})

	g.WithAction("keyValue", parsec.Boxed(parsec.And(
		parsec.Skip(parsec.Skip(g.Symbol("string"), g.Symbol("ws")), parsec.Literal(":")),
		parsec.With(g.Symbol("ws"), g.Symbol("jsonValue")),
	)), func(res any) (any, error) {
		pair := res.(parsec.Pair[any, any])
		return keyValue{key: pair.First.(string), value: pair.Second}, nil
	})

	g.AddSymbol("array", parsec.Boxed(parsec.Between(
		wrapped(g, "["), wrapped(g, "]"),
		parsec.SepBy(g.Symbol("jsonValue"), g.Symbol("comma")),
	)))

	return g
}

// wrapped parses a single delimiter character surrounded by optional
// whitespace — the shared shape of "{", "}", "[" and "]" in object/array
// productions.
func wrapped(g *parsec.Grammar, delim string) parsec.AnyParser {
	return parsec.Boxed(parsec.Skip(parsec.With(g.Symbol("ws"), parsec.Literal(delim)), g.Symbol("ws")))
}

func jsonString() parsec.Parser[rune, string] {
	quote := func(r rune) bool { return r == '"' }
	notQuote := func(r rune) bool { return r != '"' }
	return parsec.Skip(
		parsec.With(parsec.SatisfyChar(quote), parsec.Map(parsec.Many(parsec.SatisfyChar(notQuote)), func(rs []rune) string { return string(rs) })),
		parsec.SatisfyChar(quote),
	)
}

func jsonNumberText() parsec.Parser[rune, string] {
	sign := parsec.SatisfyChar(func(r rune) bool { return r == '+' || r == '-' })
	digits := parsec.Many1(parsec.Digit())
	return parsec.Map(
		parsec.And(parsec.Optional(sign), digits),
		func(pair parsec.Pair[parsec.Maybe[rune], []rune]) string {
			out := string(pair.Second)
			if pair.First.Present {
				out = string(pair.First.Value) + out
			}
			return out
		},
	)
}

func parseJSONNumber(s string) int {
	negative := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	total := 0
	for _, d := range s {
		total = total*10 + int(d-'0')
	}
	if negative {
		total = -total
	}
	return total
}
