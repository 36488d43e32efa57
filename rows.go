package resample

import (
	"context"
	"errors"
	"sync"

	"github.com/gogpu/resample/internal/parallel"
)

// forEachRow runs fn for every row index in [0, rows) on pool.
//
// The first error returned by fn cancels the remaining rows and is returned
// in preference to the context error it caused.
func forEachRow(ctx context.Context, pool *parallel.WorkerPool, rows int, fn func(y int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	err := pool.Run(ctx, rows, func(y int) {
		if rowErr := fn(y); rowErr != nil {
			once.Do(func() {
				firstErr = rowErr
				cancel()
			})
		}
	})
	if firstErr != nil {
		return firstErr
	}
	return err
}

// logDriverError reports a driver failure at the level it deserves.
func logDriverError(op string, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		Logger().Warn("resample: "+op+" cancelled", "err", err)
		return
	}
	Logger().Debug("resample: "+op+" failed", "err", err)
}
