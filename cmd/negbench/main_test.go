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
	"bytes"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ajroetker/go-negate/hwy/contrib/image"
	"github.com/ajroetker/go-negate/hwy/contrib/negate"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeInput encodes img as input.png in dir and returns its path.
func writeInput(t *testing.T, dir string, img *image.RGB) string {
	t.Helper()
	path := filepath.Join(dir, "input.png")
	if err := image.Encode(path, img); err != nil {
		t.Fatalf("Encode input: %v", err)
	}
	return path
}

func testConfig(t *testing.T, args ...string) Config {
	t.Helper()
	cfg, err := parseConfig(args, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig(%v): %v", args, err)
	}
	return cfg
}

// TestRun_BlackToWhiteAndBack covers the end-to-end scenario: a 2x2 black
// image negated by every strategy is white on disk, and negating the
// decoded result again gives back black.
func TestRun_BlackToWhiteAndBack(t *testing.T) {
	dir := t.TempDir()
	black, _ := image.NewRGB(2, 2)
	input := writeInput(t, dir, black)

	cfg := testConfig(t, "-input", input, "-outdir", dir)
	var out bytes.Buffer
	if err := run(cfg, &out, discardLogger()); err != nil {
		t.Fatalf("run: %v\n%s", err, out.String())
	}

	for _, s := range negate.Strategies() {
		path := cfg.OutputPath(s)
		if filepath.Base(path) != defaultOutputs[s] {
			t.Errorf("%s output: got %s, want %s", s, filepath.Base(path), defaultOutputs[s])
		}

		img, err := image.Decode(path)
		if err != nil {
			t.Fatalf("%s: Decode(%s): %v", s, path, err)
		}
		for i, v := range img.Pix() {
			if v != 255 {
				t.Fatalf("%s: byte %d got %d, want 255", s, i, v)
			}
		}

		negate.Negate(img, s)
		if !img.Equal(black) {
			t.Errorf("%s: re-negated image is not black: %v", s, img.Pix())
		}

		if !strings.Contains(out.String(), s.Title()+":") {
			t.Errorf("report is missing %q:\n%s", s.Title(), out.String())
		}
	}
}

func TestRun_OutputsMatchAcrossStrategies(t *testing.T) {
	dir := t.TempDir()
	src, _ := image.NewRGB(37, 11)
	for i := range src.Pix() {
		src.Pix()[i] = byte(i * 7)
	}
	input := writeInput(t, dir, src)

	cfg := testConfig(t, "-input", input, "-outdir", dir, "-workers", "3", "-schedule", "dynamic", "-batch", "2")
	if err := run(cfg, io.Discard, discardLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var first []byte
	for _, s := range negate.Strategies() {
		img, err := image.Decode(cfg.OutputPath(s))
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if first == nil {
			first = img.Pix()
			continue
		}
		if !bytes.Equal(img.Pix(), first) {
			t.Errorf("%s output differs from %s", s, negate.Sequential)
		}
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, "-input", filepath.Join(dir, "missing.png"), "-outdir", dir)

	var out bytes.Buffer
	err := run(cfg, &out, discardLogger())
	if err == nil {
		t.Fatal("run with a missing input should fail")
	}
	if !strings.Contains(err.Error(), "4 of 4") {
		t.Errorf("error: got %q, want all four strategies failed", err)
	}

	// Every strategy was still attempted, and none wrote an output.
	for _, s := range negate.Strategies() {
		if !strings.Contains(out.String(), s.Title()+":\n  FAILED") {
			t.Errorf("report should show %s as failed:\n%s", s, out.String())
		}
		if _, statErr := os.Stat(cfg.OutputPath(s)); !errors.Is(statErr, fs.ErrNotExist) {
			t.Errorf("%s: output should not exist, stat: %v", s, statErr)
		}
	}
}

func TestRun_OneStrategyFailsOthersRun(t *testing.T) {
	dir := t.TempDir()
	img, _ := image.NewRGB(3, 3)
	input := writeInput(t, dir, img)

	cfg := testConfig(t,
		"-input", input,
		"-outdir", dir,
		"-out-vectorized", filepath.Join("no", "such", "dir", "out.png"),
	)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	err := run(cfg, io.Discard, logger)
	if err == nil || !strings.Contains(err.Error(), "1 of 4") || !strings.Contains(err.Error(), "vectorized") {
		t.Fatalf("run: got %v, want vectorized to fail alone", err)
	}
	if !strings.Contains(logs.String(), "strategy failed") {
		t.Errorf("failure should be logged, got:\n%s", logs.String())
	}

	for _, s := range []negate.Strategy{negate.Sequential, negate.Parallel, negate.ParallelVectorized} {
		if _, err := image.Decode(cfg.OutputPath(s)); err != nil {
			t.Errorf("%s should have written its output: %v", s, err)
		}
	}
}

func TestRunStrategy_Runs(t *testing.T) {
	dir := t.TempDir()
	img, _ := image.NewRGB(8, 8)
	input := writeInput(t, dir, img)

	cfg := testConfig(t, "-input", input, "-outdir", dir, "-runs", "3", "-shared-pool")
	res := runStrategy(cfg, negate.ParallelVectorized, nil, discardLogger())
	if res.Err != nil {
		t.Fatalf("runStrategy: %v", res.Err)
	}
	if len(res.Elapsed) != 3 {
		t.Fatalf("Elapsed: got %d runs, want 3", len(res.Elapsed))
	}
	if res.Best() > res.Mean() {
		t.Errorf("Best %v should not exceed Mean %v", res.Best(), res.Mean())
	}

	var out bytes.Buffer
	printResult(&out, res)
	if !strings.Contains(out.String(), "over 3 runs") {
		t.Errorf("report: got %q", out.String())
	}

	// An odd number of negations leaves the image white.
	got, err := image.Decode(res.Output)
	if err != nil {
		t.Fatal(err)
	}
	if r, _, _ := got.At(0, 0); r != 255 {
		t.Errorf("pixel: got %d, want 255", r)
	}
}

func TestRun_ScalarLevel(t *testing.T) {
	dir := t.TempDir()
	img, _ := image.NewRGB(21, 2)
	input := writeInput(t, dir, img)

	cfg := testConfig(t, "-input", input, "-outdir", dir, "-level", "scalar", "-strategies", "vectorized")
	var out bytes.Buffer
	if err := run(cfg, &out, discardLogger()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Lane target: scalar") {
		t.Errorf("header should name the scalar target:\n%s", out.String())
	}
	if strings.Contains(out.String(), negate.Sequential.Title()+":") {
		t.Errorf("only the vectorized strategy should run:\n%s", out.String())
	}
}

func TestResult_Empty(t *testing.T) {
	var r Result
	if r.Best() != 0 || r.Mean() != 0 {
		t.Errorf("empty Result: Best %v, Mean %v, want 0", r.Best(), r.Mean())
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg := testConfig(t)
	if cfg.Input != "input.png" {
		t.Errorf("Input: got %q, want input.png", cfg.Input)
	}
	if cfg.Runs != 1 || cfg.Workers != 0 || cfg.Level != levelAuto || cfg.Schedule != negate.Static {
		t.Errorf("defaults: got %+v", cfg)
	}
	if len(cfg.Strategies) != 4 {
		t.Errorf("Strategies: got %v, want all four", cfg.Strategies)
	}
	for s, name := range defaultOutputs {
		if cfg.Outputs[s] != name {
			t.Errorf("Outputs[%s]: got %q, want %q", s, cfg.Outputs[s], name)
		}
	}
}

func TestParseConfig_Flags(t *testing.T) {
	cfg := testConfig(t,
		"-input", "in.png",
		"-outdir", "out",
		"-strategies", "parallel-vectorized, sequential",
		"-out-sequential", "seq.png",
		"-workers", "2",
		"-runs", "4",
		"-compression", "9",
		"-v",
	)
	if cfg.Input != "in.png" || cfg.Workers != 2 || cfg.Runs != 4 || cfg.Compression != 9 || !cfg.Verbose {
		t.Errorf("parsed: got %+v", cfg)
	}
	want := []negate.Strategy{negate.ParallelVectorized, negate.Sequential}
	if len(cfg.Strategies) != 2 || cfg.Strategies[0] != want[0] || cfg.Strategies[1] != want[1] {
		t.Errorf("Strategies: got %v, want %v", cfg.Strategies, want)
	}
	if got := cfg.OutputPath(negate.Sequential); got != filepath.Join("out", "seq.png") {
		t.Errorf("OutputPath(sequential): got %q", got)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown strategy", []string{"-strategies", "openmp"}},
		{"empty strategies", []string{"-strategies", ","}},
		{"zero runs", []string{"-runs", "0"}},
		{"negative workers", []string{"-workers", "-1"}},
		{"bad compression", []string{"-compression", "11"}},
		{"bad level", []string{"-level", "avx1024"}},
		{"bad schedule", []string{"-schedule", "guided"}},
		{"empty input", []string{"-input", ""}},
		{"duplicate outputs", []string{"-out-parallel", "outputNegative.png"}},
		{"positional", []string{"extra"}},
		{"unknown flag", []string{"-threads", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseConfig(tt.args, io.Discard); err == nil {
				t.Errorf("parseConfig(%v): expected error", tt.args)
			}
		})
	}

	if _, err := parseConfig([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("parseConfig(-h): got %v, want flag.ErrHelp", err)
	}
}
