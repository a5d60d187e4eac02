// Package retry re-sends calls that failed before the server produced an
// answer. Only network errors are retried; API, parse and configuration
// errors are returned at once.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/forestrie/go-tc3sms/sdkerr"
)

const (
	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	multiplier      = 2.0
	maxElapsedTime  = 30 * time.Second
)

// Policy bounds a retry loop. MaxRetries counts attempts after the first.
type Policy struct {
	MaxRetries      uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultPolicy returns a policy with the given retry budget.
func DefaultPolicy(maxRetries uint) Policy {
	return Policy{
		MaxRetries:      maxRetries,
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
	}
}

// Do runs op until it succeeds, fails with a non-network error, or the
// policy is exhausted. Each attempt re-signs, since op calls the client
// again and the client reads the clock per call.
func Do[T any](ctx context.Context, logger *zap.Logger, policy Policy, op func(context.Context) (T, error)) (T, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	attempt := 0
	operation := func() (T, error) {
		attempt++
		res, err := op(ctx)
		if err != nil && !sdkerr.IsNetwork(err) {
			var zero T
			return zero, backoff.Permanent(err)
		}
		return res, err
	}

	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.InitialInterval = policy.InitialInterval
	exponentialBackoff.MaxInterval = policy.MaxInterval
	exponentialBackoff.Multiplier = multiplier

	return backoff.Retry(
		ctx,
		operation,
		backoff.WithBackOff(exponentialBackoff),
		backoff.WithMaxTries(policy.MaxRetries+1),
		backoff.WithMaxElapsedTime(policy.MaxElapsedTime),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn("retrying after network error",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", next),
				zap.Error(err))
		}),
	)
}
