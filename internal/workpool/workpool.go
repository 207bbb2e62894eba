// Package workpool runs indexed jobs on a bounded set of workers.
package workpool

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Options tunes a Run.
type Options struct {
	// Workers controls parallelization (0 = auto-detect)
	Workers int

	// FailFast stops handing out work after the first job error
	FailFast bool

	// ProgressInterval is how often Progress is called (0 = never)
	ProgressInterval time.Duration

	// Progress receives the number of jobs finished so far
	Progress func(done int64)
}

// Job processes item i. A non-nil error is reported to Run's caller; with
// FailFast it also cancels the remaining work.
type Job func(ctx context.Context, i int) error

// Run calls job for every index in [0, n) and returns how many jobs finished.
// Without FailFast all jobs run and the first error is still returned.
func Run(ctx context.Context, n int, job Job, opts Options) (int64, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n && n > 0 {
		workers = n
	}

	var done int64
	var firstErr atomic.Value

	g, gctx := errgroup.WithContext(ctx)
	workChan := make(chan int, workers*4)

	// Generate work
	g.Go(func() error {
		defer close(workChan)
		for i := 0; i < n; i++ {
			select {
			case <-gctx.Done():
				return nil
			case workChan <- i:
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range workChan {
				if gctx.Err() != nil {
					return nil
				}
				err := job(gctx, i)
				atomic.AddInt64(&done, 1)
				if err == nil {
					continue
				}
				if opts.FailFast {
					return err
				}
				firstErr.CompareAndSwap(nil, errBox{err})
			}
			return nil
		})
	}

	progressDone := make(chan struct{})
	if opts.Progress != nil && opts.ProgressInterval > 0 {
		go func() {
			ticker := time.NewTicker(opts.ProgressInterval)
			defer ticker.Stop()
			for {
				select {
				case <-progressDone:
					return
				case <-ticker.C:
					opts.Progress(atomic.LoadInt64(&done))
				}
			}
		}()
	}

	err := g.Wait()
	close(progressDone)
	if err == nil {
		if box, ok := firstErr.Load().(errBox); ok {
			err = box.err
		}
	}
	if err == nil {
		err = ctx.Err()
	}
	return atomic.LoadInt64(&done), err
}

// errBox gives atomic.Value a single concrete type to store.
type errBox struct{ err error }
