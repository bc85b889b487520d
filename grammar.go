package parsec

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"golang.org/x/exp/maps"
)

// Grammar is a complete parsing system over character streams: a named set
// of symbols (each an AnyParser, i.e. a Parser[rune, any]) plus a start
// symbol. It is the dynamic, string-keyed counterpart to the generic
// Lazy-based recursion described in parser.go: where Lazy suits a grammar
// expressed directly as Go values (see internal/grammars/expr.go), Grammar
// suits one assembled from named productions that reference each other by
// name before every production has been defined, such as internal/grammars'
// JSON grammar.
type Grammar struct {
	symbols     map[string]AnyParser
	startSymbol string
}

// AnyParser is the type every Grammar symbol is stored as: a character
// parser whose output has been boxed into interface{}. Use Boxed to lift a
// typed Parser[rune, O] into an AnyParser for registration.
type AnyParser = Parser[rune, any]

// Boxed lifts a typed parser into an AnyParser by wrapping its result in
// an interface{}, so it can be registered as (or compose with) a Grammar
// symbol.
func Boxed[O any](p Parser[rune, O]) AnyParser {
	return Map(p, func(v O) any { return v })
}

// NewGrammar builds an empty grammar with the conventional start symbol
// "START".
func NewGrammar() *Grammar {
	return &Grammar{symbols: make(map[string]AnyParser), startSymbol: "START"}
}

// AddSymbol registers or overwrites a named production.
func (g *Grammar) AddSymbol(name string, p AnyParser) {
	g.symbols[name] = p
}

// WithAction registers a production together with a post-processing
// action applied to its successful result. The action may itself fail, in
// which case the error becomes a Message reason at the production's
// success position.
func (g *Grammar) WithAction(name string, p AnyParser, action func(any) (any, error)) {
	g.symbols[name] = func(s State[rune]) (any, State[rune], error) {
		v, next, err := p(s)
		if err != nil {
			return nil, s, err
		}
		out, actionErr := action(v)
		if actionErr != nil {
			return nil, s, messageError(next.Position, actionErr.Error())
		}
		return out, next, nil
	}
}

// Symbol returns a parser that, when run, looks up name in g at that
// moment and delegates to it. Symbol is how a Grammar's
// productions refer to one another before every production has been
// registered — the named-grammar analogue of Lazy.
func (g *Grammar) Symbol(name string) AnyParser {
	return func(s State[rune]) (any, State[rune], error) {
		p, ok := g.symbols[name]
		if !ok {
			panic(fmt.Sprintf("parsec: no symbol named %q", name))
		}
		return p(s)
	}
}

// SymbolNames returns the grammar's registered symbol names in sorted
// order, used by cmd/parsec's `list-symbols` subcommand.
func (g *Grammar) SymbolNames() []string {
	names := maps.Keys(g.symbols)
	sort.Strings(names)
	return names
}

// Fingerprint returns a short content hash of the grammar's symbol names,
// suitable for logging so two runs against (hopefully) the same grammar
// can be compared. It is deliberately not a hash of parse results or
// intermediate state: this is a debugging aid, not packrat memoization (no
// parser in this package memoizes results).
func (g *Grammar) Fingerprint() (string, error) {
	return structhash.Hash(g.SymbolNames(), 1)
}

// ParseString parses str starting from the grammar's start symbol,
// "START"; use ParseStringWith to start from another symbol.
func (g *Grammar) ParseString(str string) (any, error) {
	return g.ParseStringWith(str, g.startSymbol)
}

// ParseStringWith parses str starting from the named symbol.
func (g *Grammar) ParseStringWith(str, startSym string) (any, error) {
	p, ok := g.symbols[startSym]
	if !ok {
		panic(fmt.Sprintf("parsec: start symbol %q does not exist", startSym))
	}
	v, next, err := ParseString(p, str)
	if err != nil {
		return nil, err
	}
	if rest, ok := Remaining(next.Input); ok && rest != "" {
		return nil, messageError(next.Position, "incomplete parse, expected EOF but input remains")
	}
	return v, nil
}
