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

package negate

import (
	"fmt"

	"github.com/ajroetker/go-negate/hwy"
	"github.com/ajroetker/go-negate/hwy/contrib/image"
)

// Negate replaces every byte b of img with 255 - b using strategy s.
// A nil or released image is left untouched. An invalid strategy is a
// programming error and panics.
func Negate(img *image.RGB, s Strategy, opts ...Option) {
	if img == nil || img.Released() {
		return
	}
	pix, width, height := img.Pix(), img.Width(), img.Height()

	switch s {
	case Sequential:
		NegateSequential(pix, width, height)
	case Parallel:
		NegateParallel(pix, width, height, opts...)
	case Vectorized:
		NegateVectorized(pix, width, height)
	case ParallelVectorized:
		NegateParallelVectorized(pix, width, height, opts...)
	default:
		panic(fmt.Sprintf("negate: invalid strategy %d", int(s)))
	}
}

// The raw kernels below take a packed RGB buffer and its dimensions.
// len(pix) must equal width*height*3; image.RGB guarantees this, so
// callers holding one never need to check.

// NegateSequential scans every pixel once on the calling goroutine.
func NegateSequential(pix []byte, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * image.BytesPerPixel
			pix[i+0] = 255 - pix[i+0]
			pix[i+1] = 255 - pix[i+1]
			pix[i+2] = 255 - pix[i+2]
		}
	}
}

// NegateParallel splits the rows across workers; each worker negates its
// rows byte by byte.
func NegateParallel(pix []byte, width, height int, opts ...Option) {
	stride := width * image.BytesPerPixel
	forRows(height, buildOptions(opts), func(_, y0, y1 int) {
		negateRowsScalar(pix, stride, y0, y1)
	})
}

// NegateVectorized negates each row in 16-byte lanes on the calling
// goroutine. When a row's length is not a multiple of the lane width, the
// remaining bytes of that row are negated one at a time.
func NegateVectorized(pix []byte, width, height int) {
	negateRowsLanes(pix, width*image.BytesPerPixel, 0, height)
}

// NegateParallelVectorized splits the rows across workers; each worker
// negates its rows as NegateVectorized does, including the per-row tail.
func NegateParallelVectorized(pix []byte, width, height int, opts ...Option) {
	stride := width * image.BytesPerPixel
	forRows(height, buildOptions(opts), func(_, y0, y1 int) {
		negateRowsLanes(pix, stride, y0, y1)
	})
}

func negateRowsScalar(pix []byte, stride, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := pix[y*stride : (y+1)*stride]
		for i := range row {
			row[i] = 255 - row[i]
		}
	}
}

func negateRowsLanes(pix []byte, stride, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := pix[y*stride : (y+1)*stride]
		hwy.SubFromMax(row)
	}
}
