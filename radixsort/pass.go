// Copyright 2025 go-radixsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package radixsort

import (
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-radixsort/workerpool"
)

// workerCounts is one worker's digit histogram for a single pass. The pad
// keeps adjacent rows on distinct cache lines while the counting phase
// increments them concurrently. After the offset transform the same row
// holds that worker's exclusive output start positions.
type workerCounts struct {
	counts [radix]int
	_      cpu.CacheLinePad
}

// countingPass performs one serial stable counting-sort pass, bucketing
// src into dst by the digit at shift.
func countingPass[T Integer](src, dst []T, shift uint, mask, bias uint64) {
	var counts [radix]int
	for _, v := range src {
		counts[radixDigit(v, shift, mask, bias)]++
	}

	// Exclusive prefix sum: counts[d] becomes the first output index
	// reserved for digit d.
	offset := 0
	for d := range counts {
		c := counts[d]
		counts[d] = offset
		offset += c
	}

	// Forward scatter keeps equal digits in input order.
	for _, v := range src {
		d := radixDigit(v, shift, mask, bias)
		dst[counts[d]] = v
		counts[d]++
	}
}

// parallelCountingPass performs one stable counting-sort pass across the
// pool, one chunk per row of rows. It runs in two phases with a full join
// between them:
//
// Phase one: each worker counts the digits of its chunk into its private
// row. Rows are written by exactly one worker and read by nobody until the
// join completes.
//
// Offset transform (single goroutine, between the joins): the rows-by-radix
// count matrix becomes exclusive start offsets, walked digit-major and then
// in chunk order within a digit. Worker w's slots for digit d are
// [rows[w].counts[d], rows[w].counts[d]+count) and no two ranges overlap,
// so the scatter needs no locks and no atomics.
//
// Phase two: each worker scatters its chunk in ascending index order,
// consuming only its own offsets. Chunk-ordered ranges plus forward
// iteration give the stable placement of a sequential counting sort.
func parallelCountingPass[T Integer](pool *workerpool.Pool, rows []workerCounts, src, dst []T, shift uint, mask, bias uint64) {
	// Rows of chunks that end up empty are never dispatched, so stale
	// counts from the previous pass must be cleared here.
	for w := range rows {
		rows[w].counts = [radix]int{}
	}

	pool.ParallelChunks(len(rows), len(src), func(w, start, end int) {
		counts := &rows[w].counts
		for _, v := range src[start:end] {
			counts[radixDigit(v, shift, mask, bias)]++
		}
	})

	offset := 0
	for d := 0; d < radix; d++ {
		for w := range rows {
			c := rows[w].counts[d]
			rows[w].counts[d] = offset
			offset += c
		}
	}

	pool.ParallelChunks(len(rows), len(src), func(w, start, end int) {
		offs := &rows[w].counts
		for _, v := range src[start:end] {
			d := radixDigit(v, shift, mask, bias)
			dst[offs[d]] = v
			offs[d]++
		}
	})
}
