package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitProvider is a decorator that bounds the request rate to the
// external generator. The generator call is the only operation in the
// engine expected to block, so the limiter waits (respecting context
// cancellation) rather than rejecting.
type RateLimitProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps a Provider with a token-bucket rate limiter of
// requestsPerMinute sustained rate and a burst of one.
func WithRateLimit(p Provider, requestsPerMinute int) Provider {
	if requestsPerMinute <= 0 {
		return p
	}
	lim := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)
	return &RateLimitProvider{inner: p, limiter: lim}
}

func (r *RateLimitProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.Generate(ctx, req)
}

func (r *RateLimitProvider) ModelID() string {
	return r.inner.ModelID()
}
