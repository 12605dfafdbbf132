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

// DefaultWorkers is the worker count of the reference configuration.
// workerpool.New(radixsort.DefaultWorkers) reproduces it; any pool size
// works.
const DefaultWorkers = 8

const (
	// radixBits is the digit width. Each pass buckets by one 8-bit byte of
	// the key.
	radixBits = 8

	// radix is the number of buckets per pass.
	radix = 1 << radixBits

	// digitMask extracts one digit from a shifted key.
	digitMask = radix - 1

	// insertionSortThreshold: inputs this size or smaller are sorted by a
	// single insertion sort instead of digit passes. The decision is made
	// once per call on the whole input, never per chunk, so a digit pass
	// always applies the same ordering rule to every chunk.
	insertionSortThreshold = 32

	// minParallelSortLen: below this, ParallelSort runs the serial driver.
	// Two pool dispatches per pass cost more than counting a few thousand
	// elements on one core.
	minParallelSortLen = 8192
)
