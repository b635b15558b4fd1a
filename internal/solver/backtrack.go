// Package solver provides uniqueness oracles implementing ports.Solver.
// Backtracking and DLX are exhaustive; Deductive is deliberately limited and
// serves as the easy-difficulty oracle for reduction.
package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Backtracking is a straightforward recursive solver that counts completions
// up to two: zero means Impossible, one Unique, two Ambiguous.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func (s *Backtracking) Solve(ctx context.Context, b *domain.Board, c ports.Constraint) (ports.Solution, ports.Stats, error) {
	start := time.Now()
	work := b.Clone()
	size := work.Size()
	nodes := 0
	count := 0
	var first *domain.Board

	var dfs func(col, row int) error
	dfs = func(col, row int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if row == size {
			count++
			if count == 1 {
				first = work.Clone()
			}
			return nil
		}
		nextCol := (col + 1) % size
		nextRow := row
		if nextCol == 0 {
			nextRow++
		}
		v, err := work.Cell(col, row)
		if err != nil {
			return err
		}
		if v != domain.Empty {
			return dfs(nextCol, nextRow)
		}
		for n := uint8(1); int(n) <= size; n++ {
			if count >= 2 {
				return nil
			}
			nodes++
			ok, err := c.IsValidNumber(work, col, row, n)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := work.SetCell(col, row, n); err != nil {
				return err
			}
			if err := dfs(nextCol, nextRow); err != nil {
				return err
			}
			if err := work.ClearCell(col, row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := dfs(0, 0); err != nil {
		return ports.Solution{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	switch {
	case count == 0:
		return ports.Solution{Outcome: ports.Impossible}, st, nil
	case count == 1:
		return ports.Solution{Outcome: ports.Unique, Board: first}, st, nil
	default:
		return ports.Solution{Outcome: ports.Ambiguous}, st, nil
	}
}
