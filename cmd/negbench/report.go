package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ajroetker/go-negate/hwy"
)

func printHeader(w io.Writer, cfg Config, workers int) {
	fmt.Fprintf(w, "Input: %s\n", cfg.Input)
	fmt.Fprintf(w, "Lane target: %s (%d-byte registers), workers: %d, schedule: %s\n\n",
		hwy.CurrentName(), hwy.CurrentWidth(), workers, cfg.Schedule)
}

// printResult writes one strategy's block: its title, then either the
// elapsed wall-clock seconds or the failure.
func printResult(w io.Writer, res Result) {
	fmt.Fprintf(w, "%s:\n", res.Strategy.Title())
	switch {
	case res.Err != nil:
		fmt.Fprintf(w, "  FAILED: %v\n\n", res.Err)
	case len(res.Elapsed) == 1:
		fmt.Fprintf(w, "  %s  %s s\n\n", res.Output, seconds(res.Elapsed[0]))
	default:
		fmt.Fprintf(w, "  %s  best %s s, mean %s s over %d runs\n\n",
			res.Output, seconds(res.Best()), seconds(res.Mean()), len(res.Elapsed))
	}
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}
