// Package hwy provides byte-lane SIMD primitives with runtime CPU dispatch.
//
// It follows the Highway C++ library's design philosophy: write once,
// run optimally everywhere. The lane routines automatically use the best
// available instructions (AVX2, SSE2, NEON) or fall back to portable Go.
//
// A lane is a fixed 16-byte group. Every target computes the same thing on
// it: each byte b becomes 255 - b, done as one wide subtraction from an
// all-255 constant. Loads and stores are unaligned-safe, so slices may
// start at any address.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-negate/hwy"
//
//	n := hwy.LaneAligned(len(row))
//	hwy.SubFromMaxLanes(row[:n])  // full lanes
//	hwy.SubFromMaxScalar(row[n:]) // remainder
//
// or, for the same result in one call:
//
//	hwy.SubFromMax(row)
package hwy

import (
	"encoding/binary"
	"fmt"
	"math"
)

// LaneWidth is the number of bytes in one lane.
const LaneWidth = 16

// LaneAligned rounds size down to a multiple of LaneWidth.
func LaneAligned(size int) int {
	return size &^ (LaneWidth - 1)
}

// IsAligned returns true if size is a multiple of LaneWidth.
func IsAligned(size int) bool {
	return size%LaneWidth == 0
}

// SubFromMaxLanes replaces every byte of b with 255 - b, one lane at a time,
// using the current dispatch target.
//
// len(b) must be a multiple of LaneWidth; anything else is a programming
// error and panics. Use SubFromMax for arbitrary lengths.
func SubFromMaxLanes(b []byte) {
	if !IsAligned(len(b)) {
		panic(fmt.Sprintf("hwy: SubFromMaxLanes length %d is not a multiple of %d", len(b), LaneWidth))
	}
	if len(b) == 0 {
		return
	}
	current.lanes(b)
}

// SubFromMaxScalar replaces every byte of b with 255 - b, one byte at a time.
func SubFromMaxScalar(b []byte) {
	for i := range b {
		b[i] = 255 - b[i]
	}
}

// SubFromMax replaces every byte of b with 255 - b: full lanes go through
// SubFromMaxLanes and the remainder through SubFromMaxScalar.
func SubFromMax(b []byte) {
	ProcessWithTail(len(b),
		func(n int) {
			SubFromMaxLanes(b[:n])
		},
		func(offset, count int) {
			SubFromMaxScalar(b[offset : offset+count])
		},
	)
}

// subFromMaxLanesSWAR is the portable lane routine. Each lane is handled as
// two 64-bit words subtracted from math.MaxUint64; since every byte of the
// minuend is 0xFF no borrow crosses byte boundaries.
func subFromMaxLanesSWAR(b []byte) {
	for i := 0; i+LaneWidth <= len(b); i += LaneWidth {
		lo := binary.LittleEndian.Uint64(b[i:])
		hi := binary.LittleEndian.Uint64(b[i+8:])
		binary.LittleEndian.PutUint64(b[i:], math.MaxUint64-lo)
		binary.LittleEndian.PutUint64(b[i+8:], math.MaxUint64-hi)
	}
}
