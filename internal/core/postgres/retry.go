package postgres

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// RetryPolicy retries a storage operation on transient connection failures.
// Backoff between attempts is linear: attempt × Backoff.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy allows three attempts with a one second backoff step.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, Backoff: time.Second}

// Do runs op, retrying only transiently classified errors. Any other error
// is returned after the first attempt.
func (p RetryPolicy) Do(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if !IsTransient(err) || attempt == p.MaxAttempts {
			return err
		}

		slog.Warn("transient storage error, retrying",
			"attempt", attempt, "max_attempts", p.MaxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * p.Backoff):
		}
	}
	return err
}

// IsTransient reports whether err looks like a lost or reset connection
// rather than a query-level failure.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08: connection exceptions
		return strings.HasPrefix(pgErr.Code, "08")
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return true
	}

	var netErr *net.OpError
	return errors.As(err, &netErr)
}
