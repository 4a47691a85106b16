package ppt

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"time"
)

// RetryConfig holds the configuration for the batch/seed fetch profile.
// This profile exists for offline cache warming only: bulk runs must ride
// out vendor rate limiting without manual intervention, whereas interactive
// requests fail fast on a single attempt.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialBackoff is the delay after the first failed attempt.
	InitialBackoff time.Duration

	// MaxBackoff caps the backoff growth.
	MaxBackoff time.Duration

	// BackoffMultiplier is the exponential growth factor.
	BackoffMultiplier float64

	// AttemptTimeout bounds each individual attempt.
	AttemptTimeout time.Duration
}

// DefaultRetryConfig returns the retry settings used by the cache-warming
// tooling.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       10,
		InitialBackoff:    3 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 1.5,
		AttemptTimeout:    2 * time.Minute,
	}
}

// GetJSONWithRetry performs a GET with bounded retry, exponential backoff
// and jitter. Non-retryable errors (4xx other than 429) abort immediately;
// otherwise attempts continue until MaxAttempts, after which the terminal
// error wraps ErrRetryExhausted. Context cancellation aborts the wait.
func (c *Client) GetJSONWithRetry(ctx context.Context, endpoint string, params url.Values, cfg RetryConfig, v any) error {
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig()
	}

	var lastErr error
	backoff := cfg.InitialBackoff

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})
		if cfg.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, cfg.AttemptTimeout)
		}
		err := c.getJSON(attemptCtx, endpoint, params, v)
		cancel()
		if err == nil {
			if attempt > 1 {
				c.logger.Info().
					Str("endpoint", endpoint).
					Int("attempt", attempt).
					Msg("Request succeeded after retry")
			}
			return nil
		}
		lastErr = err

		if !shouldRetry(err) {
			return lastErr
		}
		if attempt >= cfg.MaxAttempts {
			break
		}

		// Jitter of up to 2s on top of the exponential delay keeps bulk
		// runs from hammering the vendor in lockstep.
		delay := backoff + time.Duration(rand.Int63n(int64(2*time.Second)))
		c.logger.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Int("attempt", attempt).
			Dur("backoff", delay).
			Msg("Retrying vendor request after backoff")

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		case <-time.After(delay):
		}

		backoff = time.Duration(float64(backoff) * cfg.BackoffMultiplier)
		if backoff > cfg.MaxBackoff {
			backoff = cfg.MaxBackoff
		}
	}

	c.logger.Error().
		Str("endpoint", endpoint).
		Int("max_attempts", cfg.MaxAttempts).
		Msg("Retry attempts exhausted")
	return fmt.Errorf("%w after %d attempts: %v", ErrRetryExhausted, cfg.MaxAttempts, lastErr)
}
