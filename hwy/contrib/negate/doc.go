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

// Package negate inverts 24-bit RGB rasters in place (b -> 255 - b for
// every channel byte) using one of four interchangeable strategies:
//
//	Sequential          one goroutine, pixel by pixel
//	Parallel            rows split across a worker pool, byte by byte
//	Vectorized          one goroutine, 16-byte lanes per row plus a scalar tail
//	ParallelVectorized  rows split across a worker pool, lanes per row
//
// All strategies produce byte-identical results. Negation is its own
// inverse, so applying any strategy twice restores the input.
//
// # Usage Example
//
//	img, _ := image.Decode("input.png")
//	defer img.Release()
//
//	negate.Negate(img, negate.ParallelVectorized)
//
//	// Reuse a pool across many calls
//	pool := workerpool.New(0)
//	defer pool.Close()
//	negate.Negate(img, negate.Parallel, negate.WithPool(pool))
//
// # Concurrency
//
// Parallel strategies hand each worker a disjoint range of rows and return
// only after every worker is done. No locks or atomics guard the pixels:
// rows never overlap, so no two workers touch the same byte. The caller
// must not mutate the image concurrently with a Negate call.
package negate
