package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// FastValidator scans every row, column and block once for duplicate digits.
// It reports the coordinates of the second and later occurrences.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	size := b.Size()
	conf := make([]domain.CellCoord, 0, 8)
	seen := make([]bool, size+1)

	reset := func() {
		for i := range seen {
			seen[i] = false
		}
	}
	mark := func(col, row int) error {
		val, err := b.Cell(col, row)
		if err != nil {
			return err
		}
		if val == domain.Empty {
			return nil
		}
		if seen[val] {
			conf = append(conf, domain.CellCoord{Row: row, Col: col})
		}
		seen[val] = true
		return nil
	}

	// rows
	for row := 0; row < size; row++ {
		reset()
		for col := 0; col < size; col++ {
			if err := mark(col, row); err != nil {
				return false, nil, err
			}
		}
	}
	// cols
	for col := 0; col < size; col++ {
		reset()
		for row := 0; row < size; row++ {
			if err := mark(col, row); err != nil {
				return false, nil, err
			}
		}
	}
	// blocks
	bw, bh := b.BlockWidth(), b.BlockHeight()
	for startRow := 0; startRow < size; startRow += bh {
		for startCol := 0; startCol < size; startCol += bw {
			reset()
			for row := startRow; row < startRow+bh; row++ {
				for col := startCol; col < startCol+bw; col++ {
					if err := mark(col, row); err != nil {
						return false, nil, err
					}
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
