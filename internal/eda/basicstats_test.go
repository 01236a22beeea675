package eda

import (
	"math"
	"testing"
)

func TestBasicStatsNumeric(t *testing.T) {
	rows := []string{
		"value,label",
		"1.0,a",
		"2.0,a",
		"3.0,b",
		"4.0,a",
		"5.0,b",
	}
	a, err := New(mustDataset(t, rows), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := a.BasicStats()
	if len(s.Numeric) != 1 {
		t.Fatalf("numeric summaries = %d, want 1", len(s.Numeric))
	}
	v := s.Numeric[0]
	if v.Column != "value" || v.Count != 5 {
		t.Fatalf("summary = %+v", v)
	}
	if math.Abs(v.Mean-3) > 1e-9 {
		t.Fatalf("mean = %v, want 3", v.Mean)
	}
	if math.Abs(v.Std-math.Sqrt(2.5)) > 1e-9 {
		t.Fatalf("std = %v, want %v", v.Std, math.Sqrt(2.5))
	}
	if v.Min != 1 || v.Max != 5 {
		t.Fatalf("bounds = [%v, %v], want [1, 5]", v.Min, v.Max)
	}
	if math.Abs(v.Median-3) > 1e-9 {
		t.Fatalf("median = %v, want 3", v.Median)
	}
	if !(v.Min <= v.Q1 && v.Q1 <= v.Median && v.Median <= v.Q3 && v.Q3 <= v.Max) {
		t.Fatalf("quantiles out of order: %+v", v)
	}
}

func TestBasicStatsCategorical(t *testing.T) {
	a, err := New(mustIris(t), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := a.BasicStats()
	if len(s.Numeric) != 4 {
		t.Fatalf("numeric summaries = %d, want 4", len(s.Numeric))
	}
	if len(s.Categorical) != 1 {
		t.Fatalf("categorical summaries = %d, want 1", len(s.Categorical))
	}
	c := s.Categorical[0]
	if c.Column != "species" || c.Count != 150 || c.Unique != 3 || c.Freq != 50 {
		t.Fatalf("species summary = %+v", c)
	}
	// Ties on count resolve to the lexicographically first value.
	if c.Top != "setosa" {
		t.Fatalf("top = %q, want setosa", c.Top)
	}
}

func TestBasicStatsSkipsNaN(t *testing.T) {
	rows := []string{
		"x,y",
		"1.5,one",
		",two",
		"2.5,three",
	}
	a, err := New(mustDataset(t, rows), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := a.BasicStats()
	if s.Numeric[0].Count != 2 {
		t.Fatalf("count = %d, want 2 after dropping empty cell", s.Numeric[0].Count)
	}
	if math.Abs(s.Numeric[0].Mean-2) > 1e-9 {
		t.Fatalf("mean = %v, want 2", s.Numeric[0].Mean)
	}
}
