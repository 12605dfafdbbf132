// Copyright 2025 The go-radixsort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// parallel computation. Unlike per-call goroutine spawning, a Pool is
// created once and reused across many operations, eliminating allocation
// and spawn overhead.
//
// This matters for multi-pass algorithms: an LSD radix sort dispatches the
// pool twice per digit pass, and spawning a fresh batch of goroutines for
// every dispatch would dominate the cost of the passes themselves on
// mid-sized inputs.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse pool across many passes
//	for pass := range passes {
//	    pool.ParallelChunks(pool.NumWorkers(), n, func(chunk, start, end int) {
//	        processChunk(pass, chunk, start, end)
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
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
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

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelChunks splits [0, n) into exactly chunks contiguous ranges that
// cover it with no gaps or overlaps, and executes fn once per non-empty
// range. fn receives the chunk index and the half-open range [start, end).
//
// The chunk-to-range binding is deterministic: chunk i always covers
// [i*ceil(n/chunks), min((i+1)*ceil(n/chunks), n)). Callers that keep
// per-chunk state indexed by chunk can rely on the same chunk seeing the
// same range on every dispatch with the same (chunks, n).
//
// Blocks until every chunk completes. If n < chunks, trailing chunks are
// empty and fn is not called for them. On a closed pool, chunks run
// sequentially in index order.
func (p *Pool) ParallelChunks(chunks, n int, fn func(chunk, start, end int)) {
	if n <= 0 || chunks <= 0 {
		return
	}

	chunkSize := (n + chunks - 1) / chunks

	if chunks == 1 || p.closed.Load() {
		for i := 0; i < chunks; i++ {
			start := i * chunkSize
			if start >= n {
				break
			}
			fn(i, start, min(start+chunkSize, n))
		}
		return
	}

	var wg sync.WaitGroup
	for i := 0; i < chunks; i++ {
		i := i
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		wg.Add(1)
		p.workC <- workItem{
			fn: func() {
				fn(i, start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Don't use more workers than items
	workers := min(p.numWorkers, n)

	if workers == 1 {
		fn(0, n)
		return
	}

	p.ParallelChunks(workers, n, func(_, start, end int) {
		fn(start, end)
	})
}
