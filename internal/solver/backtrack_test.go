package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/sudokugen/internal/constraint"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

func mustBoard(t *testing.T, bw, bh int, rows [][]uint8) *domain.Board {
	t.Helper()
	b, err := domain.NewBoard(bw, bh)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for r, row := range rows {
		for c, v := range row {
			if v == 0 {
				continue
			}
			if err := b.SetCell(c, r, v); err != nil {
				t.Fatalf("SetCell(%d,%d,%d): %v", c, r, v, err)
			}
		}
	}
	return b
}

// A classic, solvable puzzle (0 = empty) and its unique solution.
var samplePuzzle = [][]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = [][]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// Two completions exist: the cleared cells in columns 0 and 2 of the first
// two rows can hold 1/3 either way around.
var ambiguousGrid = [][]uint8{
	{0, 2, 0, 4},
	{0, 4, 0, 2},
	{2, 1, 4, 3},
	{4, 3, 2, 1},
}

// (3,0) admits no digit: 1..3 are in its row, 4 in its column and block.
var impossibleGrid = [][]uint8{
	{1, 2, 3, 0},
	{0, 0, 0, 4},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
}

func TestBacktrackingUniqueSolution(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	in := mustBoard(t, 3, 3, samplePuzzle)
	want := mustBoard(t, 3, 3, sampleSolution)

	sol, st, err := NewBacktracking().Solve(ctx, in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if sol.Outcome != ports.Unique {
		t.Fatalf("outcome: got %s, want unique", sol.Outcome)
	}
	if !sol.Board.Equal(want) {
		t.Fatalf("solution mismatch")
	}
	// input must not be mutated
	if in.CountClues() != mustBoard(t, 3, 3, samplePuzzle).CountClues() {
		t.Fatalf("Solve mutated its input")
	}
}

func TestBacktrackingAmbiguous(t *testing.T) {
	in := mustBoard(t, 2, 2, ambiguousGrid)
	sol, _, err := NewBacktracking().Solve(context.Background(), in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Outcome != ports.Ambiguous {
		t.Fatalf("outcome: got %s, want ambiguous", sol.Outcome)
	}
}

func TestBacktrackingImpossible(t *testing.T) {
	in := mustBoard(t, 2, 2, impossibleGrid)
	sol, _, err := NewBacktracking().Solve(context.Background(), in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Outcome != ports.Impossible {
		t.Fatalf("outcome: got %s, want impossible", sol.Outcome)
	}
}

func TestBacktrackingEmptyBoardAmbiguous(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	in := mustBoard(t, 3, 3, nil)
	sol, _, err := NewBacktracking().Solve(ctx, in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Outcome != ports.Ambiguous {
		t.Fatalf("outcome: got %s, want ambiguous", sol.Outcome)
	}
}
