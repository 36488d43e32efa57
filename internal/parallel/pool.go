// Package parallel provides the goroutine pool used by the resampling drivers.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned by Run after Close has been called.
var ErrPoolClosed = errors.New("parallel: pool closed")

// WorkerPool is a fixed set of goroutines that execute indexed jobs.
//
// Jobs of one Run call are claimed from a shared atomic counter, so a worker
// that finishes a cheap job immediately picks up the next unclaimed index.
// This balances load when some jobs (for example image rows near a rotated
// edge) are slower than others.
//
// Thread safety: WorkerPool is safe for concurrent use. Concurrent Run calls
// share the workers.
type WorkerPool struct {
	workers int

	// batches delivers a batch to each worker that should help with it.
	batches chan *batch

	// mu orders Run's hand-off against Close: no batch is sent once done
	// has been closed.
	mu      sync.RWMutex
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// batch is one Run call in flight.
type batch struct {
	ctx  context.Context
	n    int64
	fn   func(i int)
	next atomic.Int64
	wg   sync.WaitGroup
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		batches: make(chan *batch, workers),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			p.drainQueue()
			return
		case b := <-p.batches:
			b.drain()
			b.wg.Done()
		}
	}
}

// drainQueue finishes batches handed off before the pool was closed.
func (p *WorkerPool) drainQueue() {
	for {
		select {
		case b := <-p.batches:
			b.drain()
			b.wg.Done()
		default:
			return
		}
	}
}

// drain claims and runs indices until none remain or the context is done.
func (b *batch) drain() {
	for b.ctx.Err() == nil {
		i := b.next.Add(1) - 1
		if i >= b.n {
			return
		}
		b.fn(int(i))
	}
}

// Run calls fn(i) for every i in [0, n) across the pool's workers and waits
// for all claimed jobs to finish.
//
// Once ctx is done no new index is claimed; if that left jobs unrun, Run
// returns ctx.Err() after the jobs already running complete.
// Returns ErrPoolClosed if the pool has been closed.
func (p *WorkerPool) Run(ctx context.Context, n int, fn func(i int)) error {
	if n <= 0 {
		if !p.running.Load() {
			return ErrPoolClosed
		}
		return ctx.Err()
	}

	b := &batch{ctx: ctx, n: int64(n), fn: fn}
	helpers := min(p.workers, n)

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return ErrPoolClosed
	}
	b.wg.Add(helpers)
	for range helpers {
		p.batches <- b
	}
	p.mu.RUnlock()

	b.wg.Wait()
	if b.next.Load() < b.n {
		return ctx.Err()
	}
	return nil
}

// Close stops all workers once every batch already handed off has finished.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
