package negate

import (
	"errors"
	"testing"
)

func TestStrategyString(t *testing.T) {
	tests := []struct {
		s     Strategy
		name  string
		title string
	}{
		{Sequential, "sequential", "Sequential"},
		{Parallel, "parallel", "Parallel"},
		{Vectorized, "vectorized", "Vectorized"},
		{ParallelVectorized, "parallel-vectorized", "Parallel vectorized"},
		{Strategy(9), "Strategy(9)", "Strategy(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.name {
			t.Errorf("String(): got %q, want %q", got, tt.name)
		}
		if got := tt.s.Title(); got != tt.title {
			t.Errorf("Title(): got %q, want %q", got, tt.title)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q): got (%v, %v), want %v", s.String(), got, err, s)
		}
	}

	aliases := map[string]Strategy{
		" Sequential ":        Sequential,
		"PARALLEL":            Parallel,
		"parallel_vectorized": ParallelVectorized,
		"ParallelVectorized":  ParallelVectorized,
	}
	for name, want := range aliases {
		got, err := ParseStrategy(name)
		if err != nil || got != want {
			t.Errorf("ParseStrategy(%q): got (%v, %v), want %v", name, got, err, want)
		}
	}

	if _, err := ParseStrategy("openmp"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("ParseStrategy(openmp): got %v, want ErrUnknownStrategy", err)
	}
}

func TestStrategyText(t *testing.T) {
	for _, s := range Strategies() {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", s, err)
		}
		var back Strategy
		if err := back.UnmarshalText(text); err != nil || back != s {
			t.Errorf("UnmarshalText(%q): got (%v, %v), want %v", text, back, err, s)
		}
	}

	if _, err := Strategy(-1).MarshalText(); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("MarshalText(-1): got %v, want ErrUnknownStrategy", err)
	}
	var s Strategy
	if err := s.UnmarshalText([]byte("bogus")); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("UnmarshalText(bogus): got %v, want ErrUnknownStrategy", err)
	}
}

func TestStrategiesOrder(t *testing.T) {
	want := []Strategy{Sequential, Parallel, Vectorized, ParallelVectorized}
	got := Strategies()
	if len(got) != len(want) {
		t.Fatalf("len(Strategies()): got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Strategies()[%d]: got %v, want %v", i, got[i], want[i])
		}
		if !got[i].Valid() {
			t.Errorf("%v should be valid", got[i])
		}
	}
	if Strategy(4).Valid() || Strategy(-1).Valid() {
		t.Error("out-of-range strategies should not be valid")
	}
}

func TestScheduleString(t *testing.T) {
	if Static.String() != "static" || Dynamic.String() != "dynamic" || Schedule(5).String() != "Schedule(5)" {
		t.Errorf("Schedule strings: got %q %q %q", Static, Dynamic, Schedule(5))
	}
}
