package solver

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Deductive resolves only forced placements, up to the configured strategy
// tier: naked singles (a cell with exactly one admissible digit) and
// optionally hidden singles (a digit with exactly one admissible cell in a
// row, column or block). When no forced move remains on an unfinished board
// it reports Ambiguous - it cannot prove uniqueness beyond its tier.
//
// Hidden-single deduction leans on the row/col/block group structure, so the
// supplied rule set is expected to include the default uniqueness rule.
type Deductive struct {
	max domain.StrategyTier
}

func NewDeductive(max domain.StrategyTier) *Deductive { return &Deductive{max: max} }

func (s *Deductive) Solve(ctx context.Context, b *domain.Board, c ports.Constraint) (ports.Solution, ports.Stats, error) {
	start := time.Now()
	work := b.Clone()
	size := work.Size()
	nodes := 0

	for {
		if err := ctx.Err(); err != nil {
			return ports.Solution{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if work.Full() {
			ok, err := boardConsistent(work, c)
			if err != nil {
				return ports.Solution{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
			if !ok {
				return ports.Solution{Outcome: ports.Impossible}, st, nil
			}
			return ports.Solution{Outcome: ports.Unique, Board: work}, st, nil
		}

		progressed := false
		for row := 0; row < size && !progressed; row++ {
			for col := 0; col < size && !progressed; col++ {
				v, err := work.Cell(col, row)
				if err != nil {
					return ports.Solution{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
				}
				if v != domain.Empty {
					continue
				}
				sole := domain.Empty
				count := 0
				for n := uint8(1); int(n) <= size; n++ {
					nodes++
					ok, err := c.IsValidNumber(work, col, row, n)
					if err != nil {
						return ports.Solution{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
					}
					if ok {
						count++
						sole = n
					}
				}
				if count == 0 {
					st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
					return ports.Solution{Outcome: ports.Impossible}, st, nil
				}
				if count == 1 {
					if err := work.SetCell(col, row, sole); err != nil {
						return ports.Solution{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
					}
					progressed = true
				}
			}
		}

		if !progressed && s.max >= domain.StrategyHiddenSingles {
			placed, err := s.placeHiddenSingle(work, c, &nodes)
			if err != nil {
				return ports.Solution{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			progressed = placed
		}
		if !progressed {
			st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
			return ports.Solution{Outcome: ports.Ambiguous}, st, nil
		}
	}
}

// placeHiddenSingle scans every row, column and block for a digit with
// exactly one admissible empty cell and places the first one found.
func (s *Deductive) placeHiddenSingle(b *domain.Board, c ports.Constraint, nodes *int) (bool, error) {
	for _, group := range groups(b) {
		for n := uint8(1); int(n) <= b.Size(); n++ {
			spot := domain.CellCoord{Col: -1}
			count := 0
			for _, cc := range group {
				v, err := b.Cell(cc.Col, cc.Row)
				if err != nil {
					return false, err
				}
				if v != domain.Empty {
					if v == n {
						count = 2 // digit already present in the group
						break
					}
					continue
				}
				*nodes++
				ok, err := c.IsValidNumber(b, cc.Col, cc.Row, n)
				if err != nil {
					return false, err
				}
				if ok {
					count++
					spot = cc
					if count > 1 {
						break
					}
				}
			}
			if count == 1 {
				if err := b.SetCell(spot.Col, spot.Row, n); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}
	return false, nil
}

// groups enumerates the coordinate sets of every row, column and block.
func groups(b *domain.Board) [][]domain.CellCoord {
	size := b.Size()
	bw, bh := b.BlockWidth(), b.BlockHeight()
	out := make([][]domain.CellCoord, 0, 3*size)
	for row := 0; row < size; row++ {
		g := make([]domain.CellCoord, 0, size)
		for col := 0; col < size; col++ {
			g = append(g, domain.CellCoord{Col: col, Row: row})
		}
		out = append(out, g)
	}
	for col := 0; col < size; col++ {
		g := make([]domain.CellCoord, 0, size)
		for row := 0; row < size; row++ {
			g = append(g, domain.CellCoord{Col: col, Row: row})
		}
		out = append(out, g)
	}
	for startRow := 0; startRow < size; startRow += bh {
		for startCol := 0; startCol < size; startCol += bw {
			g := make([]domain.CellCoord, 0, size)
			for r := startRow; r < startRow+bh; r++ {
				for c := startCol; c < startCol+bw; c++ {
					g = append(g, domain.CellCoord{Col: c, Row: r})
				}
			}
			out = append(out, g)
		}
	}
	return out
}

// boardConsistent re-checks every filled cell against the rest of the grid.
func boardConsistent(b *domain.Board, c ports.Constraint) (bool, error) {
	size := b.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			v, err := b.Cell(col, row)
			if err != nil {
				return false, err
			}
			if v == domain.Empty {
				continue
			}
			ok, err := c.IsValidNumber(b, col, row, v)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}
