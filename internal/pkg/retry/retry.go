package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries  int              // Maximum number of retry attempts after the first
	BaseDelay   time.Duration    // Delay before the first retry
	MaxDelay    time.Duration    // Upper bound for any single delay
	Multiplier  float64          // Exponential backoff multiplier
	Jitter      bool             // Add up to 10% random delay
	IsRetryable func(error) bool // nil retries every error
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
	logger logrus.FieldLogger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a new retrier with the given configuration
func New(config Config, logger logrus.FieldLogger) *Retrier {
	return &Retrier{
		config: config,
		logger: logger,
		sleep:  sleepContext,
	}
}

// Execute runs fn until it succeeds, returns a non-retryable error, the
// attempts run out, or ctx is done
func (r *Retrier) Execute(ctx context.Context, operation string, fn RetryableFunc) error {
	var lastErr error
	log := r.logger.WithField("operation", operation)

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				log.WithField("attempt", attempt+1).Info("Operation succeeded after retries")
			}
			return nil
		}
		lastErr = err

		if r.config.IsRetryable != nil && !r.config.IsRetryable(err) {
			log.WithError(err).WithField("attempt", attempt+1).Debug("Error is not retryable, stopping")
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		log.WithError(err).WithFields(logrus.Fields{
			"attempt":     attempt + 1,
			"delay":       delay.String(),
			"max_retries": r.config.MaxRetries,
		}).Warn("Operation failed, retrying")

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	log.WithError(lastErr).WithField("total_attempts", r.config.MaxRetries+1).Error("Operation failed after all retries")
	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))

	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
