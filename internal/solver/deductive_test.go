package solver

import (
	"context"
	"testing"

	"svw.info/sudokugen/internal/constraint"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

func TestDeductiveSolvesNakedSingles(t *testing.T) {
	// a handful of removals from a full grid always leaves naked singles
	in := mustBoard(t, 3, 3, sampleSolution)
	_ = in.ClearCell(0, 0)
	_ = in.ClearCell(4, 4)
	_ = in.ClearCell(8, 8)
	want := mustBoard(t, 3, 3, sampleSolution)

	sol, _, err := NewDeductive(domain.StrategySingles).Solve(context.Background(), in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Outcome != ports.Unique {
		t.Fatalf("outcome: got %s, want unique", sol.Outcome)
	}
	if !sol.Board.Equal(want) {
		t.Fatalf("solution mismatch")
	}
}

func TestDeductiveFullBoard(t *testing.T) {
	in := mustBoard(t, 3, 3, sampleSolution)
	sol, _, err := NewDeductive(domain.StrategySingles).Solve(context.Background(), in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Outcome != ports.Unique {
		t.Fatalf("outcome: got %s, want unique", sol.Outcome)
	}
}

func TestDeductiveCannotProveAmbiguousGrid(t *testing.T) {
	in := mustBoard(t, 2, 2, ambiguousGrid)
	for _, tier := range []domain.StrategyTier{domain.StrategySingles, domain.StrategyHiddenSingles} {
		sol, _, err := NewDeductive(tier).Solve(context.Background(), in, constraint.NewDefault())
		if err != nil {
			t.Fatalf("Solve(tier=%d): %v", tier, err)
		}
		if sol.Outcome != ports.Ambiguous {
			t.Fatalf("tier %d: got %s, want ambiguous", tier, sol.Outcome)
		}
	}
}

func TestDeductiveDetectsImpossible(t *testing.T) {
	in := mustBoard(t, 2, 2, impossibleGrid)
	sol, _, err := NewDeductive(domain.StrategySingles).Solve(context.Background(), in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Outcome != ports.Impossible {
		t.Fatalf("outcome: got %s, want impossible", sol.Outcome)
	}
}

func TestPlaceHiddenSingle(t *testing.T) {
	// digit 1 fits only at (3,1) within the second row: column 0 and the
	// top-left block already hold a 1, and column 2 holds one further down
	b := mustBoard(t, 2, 2, [][]uint8{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
	})
	s := NewDeductive(domain.StrategyHiddenSingles)
	nodes := 0
	placed, err := s.placeHiddenSingle(b, constraint.NewDefault(), &nodes)
	if err != nil {
		t.Fatalf("placeHiddenSingle: %v", err)
	}
	if !placed {
		t.Fatalf("no hidden single found")
	}
	if v, _ := b.Cell(3, 1); v != 1 {
		t.Fatalf("hidden single placed wrong: (3,1)=%d", v)
	}
}
