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
	"errors"
	"fmt"
	"strings"
)

// Strategy selects how Negate executes.
type Strategy int

const (
	// Sequential scans every pixel once on the calling goroutine.
	Sequential Strategy = iota

	// Parallel partitions rows across a worker pool.
	Parallel

	// Vectorized processes 16-byte lanes per row on the calling goroutine.
	Vectorized

	// ParallelVectorized partitions rows across a worker pool and
	// processes each row in 16-byte lanes.
	ParallelVectorized
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("negate: unknown strategy")

// Strategies returns all strategies in canonical order.
func Strategies() []Strategy {
	return []Strategy{Sequential, Parallel, Vectorized, ParallelVectorized}
}

// String returns the strategy's flag-friendly name.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	case Vectorized:
		return "vectorized"
	case ParallelVectorized:
		return "parallel-vectorized"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Title returns the strategy's display name for reports.
func (s Strategy) Title() string {
	switch s {
	case Sequential:
		return "Sequential"
	case Parallel:
		return "Parallel"
	case Vectorized:
		return "Vectorized"
	case ParallelVectorized:
		return "Parallel vectorized"
	default:
		return s.String()
	}
}

// Valid reports whether s is one of the four strategies.
func (s Strategy) Valid() bool {
	return s >= Sequential && s <= ParallelVectorized
}

// ParseStrategy maps a name back to its Strategy. Matching ignores case;
// "parallel_vectorized" and "parallelvectorized" are accepted as well.
func ParseStrategy(name string) (Strategy, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	switch norm {
	case "parallel_vectorized", "parallelvectorized":
		norm = ParallelVectorized.String()
	}
	for _, s := range Strategies() {
		if s.String() == norm {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
