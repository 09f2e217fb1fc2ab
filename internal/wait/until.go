package wait

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout is returned when the predicate did not hold before Options.Timeout
	ErrTimeout = errors.New("wait: timed out")
	// ErrBudgetExhausted is returned when the predicate did not hold within Options.MaxAttempts
	ErrBudgetExhausted = errors.New("wait: attempt budget exhausted")
)

// Predicate reports whether the awaited condition holds. A non-nil error stops
// polling and is returned to the caller as is, unless ctx is already done.
type Predicate func(ctx context.Context) (bool, error)

// Options bound a poll loop. Zero Timeout or MaxAttempts means unbounded on
// that axis; at least one bound or a cancellable context should be supplied.
type Options struct {
	Interval    time.Duration
	Timeout     time.Duration
	MaxAttempts int
}

// DefaultInterval is the poll interval used when Options.Interval is not positive
const DefaultInterval = 100 * time.Millisecond

// Until evaluates pred immediately and then once per interval until it returns
// true, returns an error, ctx is done, the timeout elapses, or the attempt
// budget runs out.
func Until(ctx context.Context, pred Predicate, opts Options) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		if attempt > 1 && ctx.Err() != nil {
			return stopped(ctx, opts)
		}

		ok, err := pred(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return stopped(ctx, opts)
			}
			return err
		}
		if ok {
			return nil
		}
		if opts.MaxAttempts > 0 && attempt >= opts.MaxAttempts {
			return fmt.Errorf("%w after %d attempts", ErrBudgetExhausted, attempt)
		}

		select {
		case <-ctx.Done():
			return stopped(ctx, opts)
		case <-ticker.C:
		}
	}
}

func stopped(ctx context.Context, opts Options) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && opts.Timeout > 0 {
		return fmt.Errorf("%w after %v", ErrTimeout, opts.Timeout)
	}
	return ctx.Err()
}
