package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/inodb/vibe-acmg/internal/pvs1"
)

const (
	// queryTimeout bounds a single store query so an evaluation never
	// blocks indefinitely on annotation I/O.
	queryTimeout = 10 * time.Second
	// maxRetries bounds transient-failure retries per query.
	maxRetries = 3
)

// withRetry runs a store query with a per-attempt timeout and bounded
// exponential backoff. Exhausted retries surface as an upstream service
// error; sql.ErrNoRows is permanent and passes through untouched for
// the caller to interpret.
func withRetry[T any](ctx context.Context, log *zap.Logger, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		qctx, cancel := context.WithTimeout(ctx, queryTimeout)
		defer cancel()

		var err error
		out, err = fn(qctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, context.Canceled) {
			return backoff.Permanent(err)
		}
		log.Debug("store query failed, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err))
		return err
	}, policy)

	if err != nil && !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, context.Canceled) {
		return out, fmt.Errorf("%s: %v: %w", op, err, pvs1.ErrUpstreamService)
	}
	return out, err
}
