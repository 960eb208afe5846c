package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider decorates a Provider with exponential backoff. Question
// generation calls it once per diagram, so a transient failure should cost
// a short wait, not the whole image.
type retryProvider struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with retry on transient failures.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{next: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.next.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidSeen) || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

// retryable classifies an error. Context errors and token-ceiling errors
// are permanent. A schema-invalid response gets exactly one more chance;
// a model that produced garbage twice will keep producing it.
func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}

	// Rate limits, outages, and anything else (network flakes) are
	// worth another attempt.
	return true
}

// wait computes the backoff for attempt. A rate-limit hint from the
// provider overrides the schedule.
func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))

	// ±20% jitter so parallel generators don't synchronize.
	d *= 1 + 0.2*(2*rand.Float64()-1)

	return time.Duration(math.Max(d, 0))
}
