package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
)

type retrying struct {
	src      Source
	attempts int
	delay    time.Duration
	log      *slog.Logger
}

// WithRetry retries a failed fetch up to attempts extra times, waiting delay
// between tries. The last error is returned once attempts are exhausted or
// ctx is done. attempts <= 0 returns src unchanged.
func WithRetry(src Source, attempts int, delay time.Duration, logger *slog.Logger) Source {
	if attempts <= 0 {
		return src
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &retrying{src: src, attempts: attempts, delay: delay, log: logging.Component(logger, "source")}
}

func (r *retrying) Fetch(ctx context.Context) ([]model.Record, error) {
	var lastErr error
	for try := 0; try <= r.attempts; try++ {
		if try > 0 {
			r.log.Warn("retrying fetch", "attempt", try, "of", r.attempts, "error", lastErr)
			t := time.NewTimer(r.delay)
			select {
			case <-ctx.Done():
				t.Stop()
				return nil, lastErr
			case <-t.C:
			}
		}
		records, err := r.src.Fetch(ctx)
		if err == nil {
			return records, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}
