// Package constraint provides rule sets implementing ports.Constraint.
// Default is the classic row/column/block rule; the variants in variants.go
// can be layered on top of it with Composite.
package constraint

import (
	"svw.info/sudokugen/internal/domain"
)

// Default requires each digit to appear at most once per row, column and
// block. This is the ordinary Sudoku rule set.
type Default struct{}

func NewDefault() Default { return Default{} }

func (Default) IsValidNumber(b *domain.Board, col, row int, n uint8) (bool, error) {
	size := b.Size()
	for i := 0; i < size; i++ {
		if i != col {
			v, err := b.Cell(i, row)
			if err != nil {
				return false, err
			}
			if v == n {
				return false, nil
			}
		}
		if i != row {
			v, err := b.Cell(col, i)
			if err != nil {
				return false, err
			}
			if v == n {
				return false, nil
			}
		}
	}
	bw, bh := b.BlockWidth(), b.BlockHeight()
	startCol, startRow := (col/bw)*bw, (row/bh)*bh
	for r := startRow; r < startRow+bh; r++ {
		for c := startCol; c < startCol+bw; c++ {
			if c == col && r == row {
				continue
			}
			v, err := b.Cell(c, r)
			if err != nil {
				return false, err
			}
			if v == n {
				return false, nil
			}
		}
	}
	return true, nil
}
