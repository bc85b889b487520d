// Package diag wires cmd/parsec's structured logging: a zerolog logger
// tagged with a per-process session id, in the style of
// deepnoodle-ai-risor's cmd/risor-lsp (log.Error().Err(err).Str(...).Msg(...)).
package diag

import (
	"os"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// Session wraps a zerolog.Logger pre-tagged with a session id, so every
// line emitted during one CLI invocation or REPL run can be correlated
// even across concurrent invocations writing to the same stream.
type Session struct {
	ID     string
	Logger zerolog.Logger
}

// NewSession creates a session id (github.com/gofrs/uuid, as risor's root
// dependency) and a logger that stamps every event with it.
func NewSession(verbose bool) (*Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Str("session", id.String()).
		Logger()

	return &Session{ID: id.String(), Logger: logger}, nil
}

// ParseResult logs a single grammar-parse attempt's outcome.
func (s *Session) ParseResult(grammar, fingerprint, source string, err error) {
	evt := s.Logger.Info()
	if err != nil {
		evt = s.Logger.Warn().Err(err)
	}
	evt.Str("grammar", grammar).Str("fingerprint", fingerprint).Str("source", source).
		Msg("parse")
}
