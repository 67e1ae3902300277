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

import "testing"

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size      int
		wantFull  int
		wantTail  [2]int
		wantCalls int
	}{
		{size: 0},
		{size: 15, wantTail: [2]int{0, 15}, wantCalls: 1},
		{size: 16, wantFull: 16, wantCalls: 1},
		{size: 35, wantFull: 32, wantTail: [2]int{32, 3}, wantCalls: 2},
	}

	for _, tt := range tests {
		var full int
		var tail [2]int
		calls := 0
		ProcessWithTail(tt.size,
			func(n int) {
				full = n
				calls++
			},
			func(offset, count int) {
				tail = [2]int{offset, count}
				calls++
			},
		)
		if full != tt.wantFull {
			t.Errorf("size %d: full got %d, want %d", tt.size, full, tt.wantFull)
		}
		if tail != tt.wantTail {
			t.Errorf("size %d: tail got %v, want %v", tt.size, tail, tt.wantTail)
		}
		if calls != tt.wantCalls {
			t.Errorf("size %d: calls got %d, want %d", tt.size, calls, tt.wantCalls)
		}
	}
}

func TestProcessWithTail_CoversEveryIndexOnce(t *testing.T) {
	for size := 1; size < 70; size++ {
		seen := make([]int, size)
		ProcessWithTail(size,
			func(n int) {
				for i := range n {
					seen[i]++
				}
			},
			func(offset, count int) {
				for i := offset; i < offset+count; i++ {
					seen[i]++
				}
			},
		)
		for i, c := range seen {
			if c != 1 {
				t.Fatalf("size %d: index %d visited %d times", size, i, c)
			}
		}
	}
}
