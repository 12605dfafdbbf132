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
	"math/bits"

	"github.com/ajroetker/go-radixsort/workerpool"
)

// Sort sorts data in-place in ascending order using the serial driver:
// insertion sort for small inputs, LSD radix sort otherwise. Empty and
// single-element slices are no-ops.
func Sort[T Integer](data []T) {
	if len(data) <= 1 {
		return
	}
	if len(data) <= insertionSortThreshold {
		insertionSort(data)
		return
	}
	sortRadix[T](nil, data)
}

// ParallelSort sorts data in-place in ascending order, running each digit
// pass across the pool's workers. A nil pool or an input below the parallel
// cutoff falls back to Sort.
//
// The pool may be shared: concurrent ParallelSort calls on the same pool
// are safe as long as the slices do not overlap.
func ParallelSort[T Integer](pool *workerpool.Pool, data []T) {
	if pool == nil || len(data) < minParallelSortLen {
		Sort(data)
		return
	}
	sortRadix(pool, data)
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T Integer](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// sortRadix is the multi-pass driver shared by Sort and ParallelSort. A nil
// pool selects the serial pass.
func sortRadix[T Integer](pool *workerpool.Pool, data []T) {
	mask, bias := keyParams[T]()

	// One scan for the maximum key bounds the number of passes: digits
	// above the widest key are zero for every element.
	maxKey := uint64(0)
	for _, v := range data {
		if k := unsignedKey(v, mask, bias); k > maxKey {
			maxKey = k
		}
	}
	passes := (bits.Len64(maxKey) + radixBits - 1) / radixBits
	if passes == 0 {
		// All keys are zero: every element is the domain minimum.
		return
	}

	scratch := make([]T, len(data))
	var rows []workerCounts
	if pool != nil {
		rows = make([]workerCounts, pool.NumWorkers())
	}

	// Ping-pong between data and scratch; each pass reads the previous
	// pass's full output after the pass's final join.
	src, dst := data, scratch
	for p := 0; p < passes; p++ {
		shift := uint(p * radixBits)
		if pool == nil {
			countingPass(src, dst, shift, mask, bias)
		} else {
			parallelCountingPass(pool, rows, src, dst, shift, mask, bias)
		}
		src, dst = dst, src
	}

	// An odd pass count leaves the sorted run in scratch.
	if passes%2 == 1 {
		if pool == nil {
			copy(data, scratch)
		} else {
			pool.ParallelFor(len(data), func(start, end int) {
				copy(data[start:end], scratch[start:end])
			})
		}
	}
}
