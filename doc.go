// Package parsec is a parser combinator library: a small set of primitive
// parsers and composition operators for building recursive-descent parsers
// over restartable, in-memory streams of tokens.
//
// A Parser is a function from a State to either a parsed value and an
// advanced State, or a *ParseError. Parser trees are built once, by value,
// and invoked repeatedly; see Parse and ParseString for the entry points.
package parsec
