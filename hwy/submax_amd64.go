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

//go:build amd64 && !noasm

package hwy

// subFromMaxSSE2 computes p[i] = 255 - p[i] for i in [0, n) with
// MOVOU/PSUBB. n must be a multiple of 16.
//
//go:noescape
func subFromMaxSSE2(p *byte, n int)

// subFromMaxAVX2 computes p[i] = 255 - p[i] for i in [0, n) with
// VMOVDQU/VPSUBB on 32 bytes at a time and one final 16-byte lane when
// n is an odd number of lanes. n must be a multiple of 16.
//
//go:noescape
func subFromMaxAVX2(p *byte, n int)

func subFromMaxLanesSSE2(b []byte) {
	subFromMaxSSE2(&b[0], len(b))
}

func subFromMaxLanesAVX2(b []byte) {
	subFromMaxAVX2(&b[0], len(b))
}
