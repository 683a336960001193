package table

import (
	"errors"
	"math"
	"testing"
)

func TestMatch_BestCategory(t *testing.T) {
	tbl := mustTable(t, map[string][]float32{
		"dark":   {1, 0},
		"bright": {0, 1},
	})
	match, err := tbl.Match([]float32{1, 0})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if match.Name != "dark" {
		t.Fatalf("Match = %q, want dark", match.Name)
	}
	if match.Score != 1.0 {
		t.Fatalf("Match score = %v, want 1.0", match.Score)
	}
}

func TestMatch_TieBreaksLexicographically(t *testing.T) {
	tbl := mustTable(t, map[string][]float32{
		"dark":   {1, 0},
		"bright": {0, 1},
	})
	// Equidistant from both entries; the tie must resolve to the first name.
	match, err := tbl.Match([]float32{0.7071, 0.7071})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if match.Name != "bright" {
		t.Fatalf("tie resolved to %q, want bright", match.Name)
	}
}

func TestMatch_DimensionMismatch(t *testing.T) {
	tbl := mustTable(t, map[string][]float32{"a": {1, 0}})
	if _, err := tbl.Match([]float32{1, 0, 0}); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMatch_EmptyTable(t *testing.T) {
	tbl, err := New(map[string][]float32{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := tbl.Match([]float32{1}); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}

func TestMatch_NormalizationInvariance(t *testing.T) {
	query := []float32{0.9, 0.1, 0.2}
	unit := mustTable(t, map[string][]float32{
		"first":  {1, 0, 0},
		"second": {0, 1, 0},
	})
	scaled := mustTable(t, map[string][]float32{
		"first":  {25, 0, 0},
		"second": {0, 25, 0},
	})
	a, err := unit.Match(query)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	b, err := scaled.Match(query)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if a.Name != b.Name {
		t.Fatalf("scaling changed selection: %q vs %q", a.Name, b.Name)
	}
	if math.Abs(a.Score-b.Score) > 1e-9 {
		t.Fatalf("scaling changed score: %v vs %v", a.Score, b.Score)
	}
}

func TestMatch_ZeroNormQuery(t *testing.T) {
	tbl := mustTable(t, map[string][]float32{
		"dark":   {1, 0},
		"bright": {0, 1},
	})
	match, err := tbl.Match([]float32{0, 0})
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if match.Score != 0 {
		t.Fatalf("zero-norm query score = %v, want 0", match.Score)
	}
	if match.Name != "bright" {
		t.Fatalf("zero-norm query resolved to %q, want bright", match.Name)
	}
}

func TestMatchN_Ordering(t *testing.T) {
	tbl := mustTable(t, map[string][]float32{
		"dark":   {1, 0},
		"bright": {0, 1},
		"dusk":   {0.9, 0.1},
	})
	matches, err := tbl.MatchN([]float32{1, 0}, 2)
	if err != nil {
		t.Fatalf("MatchN failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("MatchN returned %d matches, want 2", len(matches))
	}
	if matches[0].Name != "dark" || matches[1].Name != "dusk" {
		t.Fatalf("MatchN order = [%q, %q], want [dark, dusk]", matches[0].Name, matches[1].Name)
	}
	if matches[0].Score < matches[1].Score {
		t.Fatalf("MatchN scores out of order: %v < %v", matches[0].Score, matches[1].Score)
	}
}

func TestMatchN_InvalidCount(t *testing.T) {
	tbl := mustTable(t, map[string][]float32{"a": {1}})
	if _, err := tbl.MatchN([]float32{1}, 0); err == nil {
		t.Fatalf("expected error for n=0")
	}
}
