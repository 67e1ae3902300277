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
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ajroetker/go-negate/hwy"
	"github.com/ajroetker/go-negate/hwy/contrib/negate"
	"github.com/klauspost/compress/zlib"
)

// levelAuto keeps the dispatch level detected at startup.
const levelAuto = "auto"

// defaultOutputs are the file names written for each strategy.
var defaultOutputs = map[negate.Strategy]string{
	negate.Sequential:         "outputNegative.png",
	negate.Parallel:           "outputNegativeOMP.png",
	negate.Vectorized:         "outputNegativeVect.png",
	negate.ParallelVectorized: "outputNegativeOpenMPVect.png",
}

// Config holds everything negbench needs for one invocation.
type Config struct {
	Input      string
	OutDir     string
	Outputs    map[negate.Strategy]string // file names, joined with OutDir
	Strategies []negate.Strategy

	Workers    int  // 0 uses the host's available parallelism
	SharedPool bool // reuse one pool across all runs instead of one per call
	Schedule   negate.Schedule
	BatchRows  int

	Runs        int    // pipelines per strategy
	Level       string // "auto" or a hwy dispatch level name
	Compression int    // zlib level for the PNG encoder
	Verbose     bool
}

// OutputPath returns the output file for s.
func (c Config) OutputPath(s negate.Strategy) string {
	return filepath.Join(c.OutDir, c.Outputs[s])
}

// Validate reports configuration errors that flag parsing cannot catch.
func (c Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("-input must not be empty"))
	}
	if len(c.Strategies) == 0 {
		errs = append(errs, errors.New("-strategies must name at least one strategy"))
	}
	if c.Runs < 1 {
		errs = append(errs, fmt.Errorf("-runs must be >= 1, got %d", c.Runs))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("-workers must be >= 0, got %d", c.Workers))
	}
	if c.Compression < zlib.HuffmanOnly || c.Compression > zlib.BestCompression {
		errs = append(errs, fmt.Errorf("-compression must be in [%d, %d], got %d", zlib.HuffmanOnly, zlib.BestCompression, c.Compression))
	}
	if c.Level != levelAuto {
		if _, err := hwy.ParseLevel(c.Level); err != nil {
			errs = append(errs, fmt.Errorf("-level: %w", err))
		}
	}
	seen := map[string]negate.Strategy{}
	for _, s := range c.Strategies {
		name := c.Outputs[s]
		if name == "" {
			errs = append(errs, fmt.Errorf("no output file for %s", s))
			continue
		}
		if prev, ok := seen[name]; ok && prev != s {
			errs = append(errs, fmt.Errorf("%s and %s both write %s", prev, s, name))
		}
		seen[name] = s
	}
	return errors.Join(errs...)
}

// strategyList is a flag.Value for a comma-separated list of strategies.
type strategyList []negate.Strategy

func (l *strategyList) String() string {
	names := make([]string, len(*l))
	for i, s := range *l {
		names[i] = s.String()
	}
	return strings.Join(names, ",")
}

func (l *strategyList) Set(value string) error {
	var parsed []negate.Strategy
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := negate.ParseStrategy(part)
		if err != nil {
			return err
		}
		parsed = append(parsed, s)
	}
	*l = parsed
	return nil
}

// scheduleFlag is a flag.Value accepting "static" or "dynamic".
type scheduleFlag negate.Schedule

func (f *scheduleFlag) String() string {
	return negate.Schedule(*f).String()
}

func (f *scheduleFlag) Set(value string) error {
	switch strings.ToLower(value) {
	case "static":
		*f = scheduleFlag(negate.Static)
	case "dynamic":
		*f = scheduleFlag(negate.Dynamic)
	default:
		return fmt.Errorf("unknown schedule %q (want static or dynamic)", value)
	}
	return nil
}

// parseConfig builds a Config from command-line arguments. Usage and
// parse errors go to output.
func parseConfig(args []string, output io.Writer) (Config, error) {
	cfg := Config{
		Outputs:    make(map[negate.Strategy]string, len(defaultOutputs)),
		Strategies: negate.Strategies(),
	}
	for s, name := range defaultOutputs {
		cfg.Outputs[s] = name
	}

	fs := flag.NewFlagSet("negbench", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Input, "input", "input.png", "Input PNG file")
	fs.StringVar(&cfg.OutDir, "outdir", ".", "Directory for the output files")
	outputs := make(map[negate.Strategy]*string, len(defaultOutputs))
	for _, s := range negate.Strategies() {
		outputs[s] = fs.String("out-"+s.String(), defaultOutputs[s], "Output file name for the "+s.String()+" strategy")
	}

	strategies := strategyList(cfg.Strategies)
	fs.Var(&strategies, "strategies", "Comma-separated strategies to run, in order")
	fs.IntVar(&cfg.Workers, "workers", 0, "Worker count for parallel strategies (0 = available parallelism)")
	fs.BoolVar(&cfg.SharedPool, "shared-pool", false, "Reuse one worker pool across all runs")
	schedule := scheduleFlag(negate.Static)
	fs.Var(&schedule, "schedule", "Row distribution for parallel strategies: static or dynamic")
	fs.IntVar(&cfg.BatchRows, "batch", negate.DefaultBatchRows, "Rows per batch for the dynamic schedule")
	fs.IntVar(&cfg.Runs, "runs", 1, "Pipelines per strategy; best and mean are reported")
	levels := make([]string, 0, 4)
	for _, l := range hwy.Levels() {
		levels = append(levels, l.String())
	}
	fs.StringVar(&cfg.Level, "level", levelAuto, "Lane target: auto or one of "+strings.Join(levels, ","))
	fs.IntVar(&cfg.Compression, "compression", zlib.BestSpeed, "zlib level for the output PNGs (-2..9)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	for s, name := range outputs {
		cfg.Outputs[s] = *name
	}
	cfg.Strategies = strategies
	cfg.Schedule = negate.Schedule(schedule)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
