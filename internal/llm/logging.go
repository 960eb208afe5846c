package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingProvider is a decorator that logs every request with its purpose,
// latency and token usage.
type LoggingProvider struct {
	inner Provider
	log   zerolog.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := l.log.Info()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev = ev.
		Str("purpose", PurposeFrom(ctx)).
		Str("model", l.inner.ModelID()).
		Int("images", len(req.Images)).
		Dur("latency", time.Since(start))
	if resp != nil {
		ev = ev.
			Int("input_tokens", resp.Usage.InputTokens).
			Int("output_tokens", resp.Usage.OutputTokens).
			Str("stop_reason", resp.StopReason)
	}
	ev.Msg("llm request")

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
