// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a fork-join worker pool for row-parallel
// image kernels. A Pool can be created once and reused across many
// operations, or scoped to a single call with Run.
//
// Every parallel call partitions an index range (typically image rows)
// into disjoint sub-ranges, hands each one to exactly one worker, and
// blocks until all of them are done. Workers never share an index, so the
// callback needs no locking as long as it only touches data owned by its
// indices.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse pool across many operations
//	for _, img := range images {
//	    pool.ParallelFor(img.Height(), func(worker, start, end int) {
//	        processRows(img, start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
//
// A nil or closed Pool is valid: its methods run the whole range on the
// calling goroutine as worker 0.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single chunk of a parallel operation.
type workItem struct {
	fn      func(worker int)
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	// Spawn persistent workers
	for id := range numWorkers {
		go p.worker(id)
	}

	return p
}

// Run creates a pool of numWorkers, runs ParallelFor over [0, n) and closes
// the pool. The pool lives only for the duration of the call.
func Run(numWorkers, n int, fn func(worker, start, end int)) {
	p := New(numWorkers)
	defer p.Close()
	p.ParallelFor(n, fn)
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker(id int) {
	for item := range p.workC {
		item.fn(id)
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Closed reports whether Close has been called. A nil pool counts as closed.
func (p *Pool) Closed() bool {
	return p == nil || p.closed.Load()
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) using the worker pool.
// The range is split into at most NumWorkers contiguous chunks of equal
// size (the last may be shorter); each chunk goes to exactly one worker.
// Blocks until all work completes.
//
// fn receives the id of the worker running it, in [0, NumWorkers), and the
// chunk bounds [start, end).
func (p *Pool) ParallelFor(n int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}

	if p.Closed() {
		// Fallback to sequential if pool is closed
		fn(0, 0, n)
		return
	}

	// Determine number of workers to use (don't use more workers than items)
	workers := min(p.numWorkers, n)

	// For very small n, just run sequentially
	if workers == 1 {
		fn(0, 0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			// No work for this worker
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func(worker int) {
				fn(worker, start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomicBatched executes fn for batches of indices using atomic
// work stealing. This provides better load balancing when work per item
// varies, at the cost of one atomic operation per batch.
// Blocks until all work completes.
//
// fn receives the worker id and the batch bounds [start, end).
// batchSize controls how many items are grabbed per atomic operation.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	if p.Closed() {
		fn(0, 0, n)
		return
	}

	// Calculate number of batches
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	if workers == 1 {
		fn(0, 0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func(worker int) {
				for {
					batch := int(nextBatch.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					end := min(start+batchSize, n)
					fn(worker, start, end)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
