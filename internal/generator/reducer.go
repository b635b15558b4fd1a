package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
)

// Reducer removes clues from a full board while the configured solver still
// reports a unique completion. The solver is the difficulty knob: an oracle
// that resolves more deduction patterns tolerates more removals and yields a
// harder, clue-sparse puzzle.
type Reducer struct {
	solver ports.Solver
	rng    *rand.Rand
}

// NewReducer creates a reducer with the given uniqueness oracle and random
// source.
func NewReducer(s ports.Solver, rng *rand.Rand) *Reducer {
	return &Reducer{solver: s, rng: rng}
}

// NewDefaultReducer pairs a full backtracking solver (highest difficulty)
// with a clock-seeded random source.
func NewDefaultReducer() *Reducer {
	return NewReducer(solver.NewBacktracking(), rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Reduce mutates b in place: every cell is visited once in a random order,
// cleared on trial, and restored to its original digit unless the solver
// still finds exactly one completion. A board that cannot be reduced is left
// unchanged; removal is monotonic and every step leaves the board uniquely
// solvable.
func (r *Reducer) Reduce(ctx context.Context, b *domain.Board, c ports.Constraint) error {
	size := b.Size()
	coords := make([]domain.CellCoord, 0, size*size)
	for col := 0; col < size; col++ {
		for row := 0; row < size; row++ {
			coords = append(coords, domain.CellCoord{Col: col, Row: row})
		}
	}
	shuffle(r.rng, coords)

	for _, cc := range coords {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := b.Cell(cc.Col, cc.Row)
		if err != nil {
			return err
		}
		if n == domain.Empty {
			continue
		}
		if err := b.ClearCell(cc.Col, cc.Row); err != nil {
			return err
		}
		sol, _, err := r.solver.Solve(ctx, b, c)
		if err != nil {
			// restore before surfacing the solver failure
			if serr := b.SetCell(cc.Col, cc.Row, n); serr != nil {
				return serr
			}
			return err
		}
		if sol.Outcome != ports.Unique {
			if err := b.SetCell(cc.Col, cc.Row, n); err != nil {
				return err
			}
		}
	}
	return nil
}
