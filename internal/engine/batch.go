package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEachUser runs fn once per user ID in a bounded worker pool. The
// engine is stateless per invocation, so users parallelize freely; the
// pool only bounds resource use. The first error cancels the remaining
// work and is returned.
func ForEachUser(ctx context.Context, userIDs []string, concurrency int, fn func(ctx context.Context, userID string) error) error {
	if concurrency <= 0 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, id := range userIDs {
		g.Go(func() error {
			return fn(ctx, id)
		})
	}
	return g.Wait()
}
