// Copyright 2025 go-highway Authors
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

package hwy

// ProcessWithTail is a helper for processing byte slices with lanes that
// handles both full lanes and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(n) once with the lane-aligned prefix length n, if n > 0
//   - tailFn(offset, count) once for the tail if size is not a multiple of
//     LaneWidth
//
// fullFn receives the whole prefix instead of one call per lane so that the
// assembly routines can loop without re-entering Go.
//
// Example:
//
//	hwy.ProcessWithTail(len(row),
//	    func(n int) {
//	        hwy.SubFromMaxLanes(row[:n])
//	    },
//	    func(offset, count int) {
//	        hwy.SubFromMaxScalar(row[offset : offset+count])
//	    },
//	)
func ProcessWithTail(size int, fullFn func(n int), tailFn func(offset, count int)) {
	if size <= 0 {
		return
	}

	// Process full lanes
	full := LaneAligned(size)
	if full > 0 {
		fullFn(full)
	}

	// Process tail if any
	if remaining := size - full; remaining > 0 {
		tailFn(full, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of LaneWidth.
// This is useful for allocating buffers that will be processed in lanes.
func AlignedSize(size int) int {
	return ((size + LaneWidth - 1) / LaneWidth) * LaneWidth
}
