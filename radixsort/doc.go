// Package radixsort provides a parallel least-significant-digit (LSD) radix
// sort for fixed-width integer slices.
//
// # Algorithm
//
// The sort runs one stable counting-sort pass per 8-bit digit, least
// significant digit first. The number of passes is derived from the maximum
// key in the input, so small-valued data pays for fewer passes. Inputs at or
// below a small threshold skip the digit machinery entirely and use insertion
// sort.
//
// The parallel driver splits each pass into two phases over a fixed set of
// contiguous chunks:
//
//  1. Counting: every worker builds a private digit histogram for its chunk.
//  2. Scatter: after a single-threaded transform of the per-worker counts
//     into disjoint output offsets, every worker places its chunk's elements
//     into output ranges no other worker touches.
//
// Both phases end in a full join, so no worker ever reads counts another
// worker is still writing, and no two workers ever write the same output
// slot. The hot loops contain no locks and no atomics.
//
// # Supported Types
//
// int32, int64, uint32, uint64. Signed values are ordered correctly: keys are
// biased by the sign bit before digit extraction, so negative elements sort
// before non-negative ones.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-radixsort/radixsort"
//	    "github.com/ajroetker/go-radixsort/workerpool"
//	)
//
//	func ProcessData(data []uint32) {
//	    pool := workerpool.New(radixsort.DefaultWorkers)
//	    defer pool.Close()
//	    radixsort.ParallelSort(pool, data) // In-place ascending sort
//	}
//
// ParallelSort with a nil pool, and any input below the parallel cutoff,
// falls back to the serial driver, which is also exposed directly as Sort.
package radixsort
