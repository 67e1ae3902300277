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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/ajroetker/go-negate/hwy"
	"github.com/ajroetker/go-negate/hwy/contrib/image"
	"github.com/ajroetker/go-negate/hwy/contrib/negate"
	"github.com/ajroetker/go-negate/hwy/contrib/workerpool"
)

// Result is the outcome of all runs of one strategy.
type Result struct {
	Strategy negate.Strategy
	Output   string
	Elapsed  []time.Duration // one entry per successful run
	Err      error           // first failure; later runs are skipped
}

// Best returns the shortest run, or 0 if none succeeded.
func (r Result) Best() time.Duration {
	if len(r.Elapsed) == 0 {
		return 0
	}
	best := r.Elapsed[0]
	for _, d := range r.Elapsed[1:] {
		best = min(best, d)
	}
	return best
}

// Mean returns the average run, or 0 if none succeeded.
func (r Result) Mean() time.Duration {
	if len(r.Elapsed) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.Elapsed {
		sum += d
	}
	return sum / time.Duration(len(r.Elapsed))
}

// pipeline decodes input, negates it with s and encodes it to output.
// The image is released on every path.
func pipeline(input, output string, s negate.Strategy, opts []negate.Option, encOpts []image.EncodeOption) error {
	img, err := image.Decode(input)
	if err != nil {
		return err
	}
	defer img.Release()

	negate.Negate(img, s, opts...)

	return image.Encode(output, img, encOpts...)
}

// runStrategy times cfg.Runs pipelines of s. Each timing covers decode,
// negate and encode.
func runStrategy(cfg Config, s negate.Strategy, opts []negate.Option, logger *slog.Logger) Result {
	res := Result{Strategy: s, Output: cfg.OutputPath(s)}
	encOpts := []image.EncodeOption{image.WithCompressionLevel(cfg.Compression)}

	for i := range cfg.Runs {
		start := time.Now()
		err := pipeline(cfg.Input, res.Output, s, opts, encOpts)
		elapsed := time.Since(start)
		if err != nil {
			logger.Error("strategy failed", "strategy", s.String(), "run", i+1, "err", err)
			res.Err = err
			return res
		}
		logger.Debug("run finished", "strategy", s.String(), "run", i+1, "elapsed", elapsed)
		res.Elapsed = append(res.Elapsed, elapsed)
	}
	return res
}

// run executes every configured strategy in order and writes the report to
// w. It returns an error naming the failed strategies, if any.
func run(cfg Config, w io.Writer, logger *slog.Logger) error {
	if cfg.Level != levelAuto {
		level, err := hwy.ParseLevel(cfg.Level)
		if err != nil {
			return err
		}
		restore, err := hwy.SetLevel(level)
		if err != nil {
			return err
		}
		defer restore()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := []negate.Option{
		negate.WithWorkers(workers),
		negate.WithSchedule(cfg.Schedule, cfg.BatchRows),
	}
	if cfg.SharedPool {
		pool := workerpool.New(workers)
		defer pool.Close()
		opts = append(opts, negate.WithPool(pool))
	}

	logger.Debug("starting",
		"input", cfg.Input,
		"target", hwy.CurrentName(),
		"workers", workers,
		"schedule", cfg.Schedule.String(),
		"runs", cfg.Runs)
	printHeader(w, cfg, workers)

	var failed []string
	for _, s := range cfg.Strategies {
		res := runStrategy(cfg, s, opts, logger)
		printResult(w, res)
		if res.Err != nil {
			failed = append(failed, s.String())
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d strategies failed: %s", len(failed), len(cfg.Strategies), strings.Join(failed, ", "))
	}
	return nil
}
