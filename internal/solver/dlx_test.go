package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudokugen/internal/constraint"
	"svw.info/sudokugen/internal/ports"
)

func TestDLXUniqueSolution(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	in := mustBoard(t, 3, 3, samplePuzzle)
	want := mustBoard(t, 3, 3, sampleSolution)

	sol, st, err := NewDLX().Solve(ctx, in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if sol.Outcome != ports.Unique {
		t.Fatalf("outcome: got %s, want unique", sol.Outcome)
	}
	if !sol.Board.Equal(want) {
		t.Fatalf("solution mismatch")
	}
}

func TestDLXOutcomesAgreeWithBacktracking(t *testing.T) {
	cases := []struct {
		name string
		grid [][]uint8
		want ports.Outcome
	}{
		{"ambiguous", ambiguousGrid, ports.Ambiguous},
		{"impossible", impossibleGrid, ports.Impossible},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := mustBoard(t, 2, 2, tc.grid)
			sol, _, err := NewDLX().Solve(context.Background(), in, constraint.NewDefault())
			if err != nil {
				t.Fatalf("DLX: %v", err)
			}
			if sol.Outcome != tc.want {
				t.Fatalf("DLX outcome: got %s, want %s", sol.Outcome, tc.want)
			}
			bt, _, err := NewBacktracking().Solve(context.Background(), in, constraint.NewDefault())
			if err != nil {
				t.Fatalf("Backtracking: %v", err)
			}
			if bt.Outcome != sol.Outcome {
				t.Fatalf("solvers disagree: dlx=%s backtracking=%s", sol.Outcome, bt.Outcome)
			}
		})
	}
}

func TestDLXRectangularBlocks(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// empty 6x6 with 3x2 blocks has many completions
	in := mustBoard(t, 3, 2, nil)
	sol, _, err := NewDLX().Solve(ctx, in, constraint.NewDefault())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Outcome != ports.Ambiguous {
		t.Fatalf("outcome: got %s, want ambiguous", sol.Outcome)
	}
}

func TestDLXRejectsVariantConstraints(t *testing.T) {
	in := mustBoard(t, 3, 3, nil)
	rules := constraint.Composite{constraint.NewDefault(), constraint.Diagonals{}}
	_, _, err := NewDLX().Solve(context.Background(), in, rules)
	if !errors.Is(err, errDLXConstraint) {
		t.Fatalf("want errDLXConstraint, got %v", err)
	}
}
