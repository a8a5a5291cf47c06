package health

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Defaults for Wait.
const (
	DefaultWaitInterval = 2 * time.Second
	DefaultWaitTimeout  = 2 * time.Minute
)

// ErrNotReady is returned by Wait when the probe never succeeded.
var ErrNotReady = errors.New("endpoint did not become ready")

// Probe is a single readiness check.
type Probe func(ctx context.Context) bool

// WaitOptions configures Wait.
type WaitOptions struct {
	Interval time.Duration
	Timeout  time.Duration

	// OnAttempt is called after every failed probe.
	OnAttempt func(attempt int, elapsed time.Duration)
}

// Wait polls probe until it succeeds. It returns the number of probes made.
func Wait(ctx context.Context, probe Probe, opts WaitOptions) (int, error) {
	if opts.Interval <= 0 {
		opts.Interval = DefaultWaitInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultWaitTimeout
	}

	start := time.Now()
	attempts := 0
	op := func() (struct{}, error) {
		attempts++
		if probe(ctx) {
			return struct{}{}, nil
		}
		if opts.OnAttempt != nil {
			opts.OnAttempt(attempts, time.Since(start))
		}
		return struct{}{}, ErrNotReady
	}

	_, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewConstantBackOff(opts.Interval)),
		backoff.WithMaxElapsedTime(opts.Timeout),
	)
	return attempts, err
}
