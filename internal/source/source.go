// Package source provides exam questions from a local bank file or by
// generating them live from diagram images.
package source

import (
	"context"
	"fmt"

	"github.com/tanmay/physiq/internal/exam"
)

// Source supplies the question pool an exam session draws from.
type Source interface {
	// Questions returns a pool able to satisfy cfg. Pools may be larger
	// than cfg.NumQuestions; selection happens afterwards.
	Questions(ctx context.Context, cfg exam.Config) ([]exam.Question, error)
}

// SourceUnavailableError indicates a source could not supply any questions.
// The caller keeps the session unstarted and may retry.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("question source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }
