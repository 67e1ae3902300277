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

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// DispatchLevel represents the instruction set used by the lane routines.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit, two lanes per op).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ErrUnsupportedLevel is returned by SetLevel when the CPU (or the build)
// cannot run the requested dispatch level.
var ErrUnsupportedLevel = errors.New("hwy: dispatch level not supported")

// target bundles a dispatch level with the lane routine implementing it.
type target struct {
	level DispatchLevel
	width int // register width in bytes
	lanes func(b []byte)
}

// scalarTarget is available on every platform and build.
var scalarTarget = target{
	level: DispatchScalar,
	width: LaneWidth,
	lanes: subFromMaxLanesSWAR,
}

// current is the active target. Set by init and SetLevel.
var current target

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		current = scalarTarget
	} else {
		current = availableTargets()[0]
	}
	slog.Debug("lane kernel initialized", "target", current.level.String(), "width", current.width)
}

// CurrentLevel returns the instruction set being used.
func CurrentLevel() DispatchLevel {
	return current.level
}

// CurrentWidth returns the register width in bytes used per instruction.
// For example: 16 for SSE2/NEON/scalar, 32 for AVX2.
func CurrentWidth() int {
	return current.width
}

// CurrentName returns a human-readable name for the current target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return current.level.String()
}

// Levels returns every dispatch level this process can run, best first.
// DispatchScalar is always the last entry.
func Levels() []DispatchLevel {
	targets := availableTargets()
	levels := make([]DispatchLevel, len(targets))
	for i, t := range targets {
		levels[i] = t.level
	}
	return levels
}

// SetLevel switches the lane routines to the given level and returns a
// function restoring the previous one. It is meant for tests and command
// startup; it must not race with running kernels.
func SetLevel(level DispatchLevel) (restore func(), err error) {
	for _, t := range availableTargets() {
		if t.level == level {
			prev := current
			current = t
			slog.Debug("lane kernel switched", "from", prev.level.String(), "to", t.level.String())
			return func() { current = prev }, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLevel, level)
}

// ParseLevel maps a level name ("scalar", "sse2", "avx2", "neon") back to
// its DispatchLevel.
func ParseLevel(name string) (DispatchLevel, error) {
	for _, l := range []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchNEON} {
		if l.String() == name {
			return l, nil
		}
	}
	return DispatchScalar, fmt.Errorf("%w: %q", ErrUnsupportedLevel, name)
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar lane routine is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
