package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PartialResult holds a result or an error for partial success patterns.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// MapPartial applies fn to every item with at most limit calls in flight and
// collects every outcome in input order. Unlike errgroup's first-error
// semantics, one failure does not cancel the rest.
//
// Example:
//
//	results := MapPartial(ctx, 4, pending, func(ctx context.Context, q domain.Quote) (domain.Quote, error) {
//	    return remote.SubmitQuote(ctx, q)
//	})
func MapPartial[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []PartialResult[R] {
	results := make([]PartialResult[R], len(items))

	if limit <= 0 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, item := range items {
		g.Go(func() error {
			value, err := fn(ctx, item)
			results[i] = PartialResult[R]{Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}
