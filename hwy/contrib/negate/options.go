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

	"github.com/ajroetker/go-negate/hwy/contrib/workerpool"
)

// Schedule controls how the parallel strategies hand rows to workers.
type Schedule int

const (
	// Static splits the rows into one contiguous chunk per worker.
	Static Schedule = iota

	// Dynamic lets workers grab fixed-size row batches until none remain.
	Dynamic
)

// DefaultBatchRows is the batch size used by the Dynamic schedule when
// none is given.
const DefaultBatchRows = 16

func (s Schedule) String() string {
	switch s {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

type options struct {
	pool      *workerpool.Pool
	workers   int
	schedule  Schedule
	batchRows int
}

// Option configures the parallel strategies. Sequential and Vectorized
// ignore all options.
type Option func(*options)

// WithPool runs parallel strategies on an existing pool instead of a pool
// scoped to the call. A closed pool makes them run on the caller.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithWorkers sets the size of the per-call pool. n <= 0 (the default)
// uses the host's available parallelism. Ignored when WithPool is given.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSchedule selects the row distribution. batchRows applies to Dynamic
// only; batchRows <= 0 uses DefaultBatchRows.
func WithSchedule(s Schedule, batchRows int) Option {
	return func(o *options) {
		o.schedule = s
		o.batchRows = batchRows
	}
}

func buildOptions(opts []Option) options {
	o := options{schedule: Static, batchRows: DefaultBatchRows}
	for _, opt := range opts {
		opt(&o)
	}
	if o.batchRows <= 0 {
		o.batchRows = DefaultBatchRows
	}
	return o
}

// forRows partitions [0, height) across workers and calls fn once per
// range. Each row belongs to exactly one call. Returns after every call
// has finished.
func forRows(height int, o options, fn func(worker, y0, y1 int)) {
	pool := o.pool
	if pool == nil {
		pool = workerpool.New(o.workers)
		defer pool.Close()
	}

	switch o.schedule {
	case Dynamic:
		pool.ParallelForAtomicBatched(height, o.batchRows, fn)
	default:
		pool.ParallelFor(height, fn)
	}
}
