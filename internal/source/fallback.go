package source

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tanmay/physiq/internal/exam"
)

// FallbackSource tries a primary source and falls back to a secondary
// when the primary cannot supply questions.
type FallbackSource struct {
	primary   Source
	secondary Source
	log       zerolog.Logger
}

// NewFallbackSource chains two sources, primary first.
func NewFallbackSource(primary, secondary Source, log zerolog.Logger) *FallbackSource {
	return &FallbackSource{
		primary:   primary,
		secondary: secondary,
		log:       log,
	}
}

func (f *FallbackSource) Questions(ctx context.Context, cfg exam.Config) ([]exam.Question, error) {
	questions, primaryErr := f.primary.Questions(ctx, cfg)
	if primaryErr == nil {
		return questions, nil
	}

	f.log.Warn().Err(primaryErr).Msg("primary question source failed, trying secondary")

	questions, secondaryErr := f.secondary.Questions(ctx, cfg)
	if secondaryErr == nil {
		return questions, nil
	}

	return nil, &SourceUnavailableError{
		Source: "fallback",
		Err:    errors.Join(primaryErr, secondaryErr),
	}
}
