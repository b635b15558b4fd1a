package constraint

import (
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Diagonals additionally requires both main diagonals to hold each digit at
// most once. Cells off the diagonals are unrestricted by this rule.
type Diagonals struct{}

func (Diagonals) IsValidNumber(b *domain.Board, col, row int, n uint8) (bool, error) {
	size := b.Size()
	if col == row {
		for i := 0; i < size; i++ {
			if i == col {
				continue
			}
			v, err := b.Cell(i, i)
			if err != nil {
				return false, err
			}
			if v == n {
				return false, nil
			}
		}
	}
	if col+row == size-1 {
		for i := 0; i < size; i++ {
			if i == col {
				continue
			}
			v, err := b.Cell(i, size-1-i)
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

// KingsMove forbids the same digit on cells one king's move apart (the eight
// surrounding cells; the orthogonal ones are already covered when composed
// with Default, the rule stands on its own regardless).
type KingsMove struct{}

var kingOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (KingsMove) IsValidNumber(b *domain.Board, col, row int, n uint8) (bool, error) {
	return neighborsFree(b, col, row, n, kingOffsets[:])
}

// KnightsMove forbids the same digit on cells a chess knight's move apart.
type KnightsMove struct{}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {2, -1}, {2, 1},
	{-1, -2}, {-1, 2}, {1, -2}, {1, 2},
}

func (KnightsMove) IsValidNumber(b *domain.Board, col, row int, n uint8) (bool, error) {
	return neighborsFree(b, col, row, n, knightOffsets[:])
}

func neighborsFree(b *domain.Board, col, row int, n uint8, offsets [][2]int) (bool, error) {
	size := b.Size()
	for _, o := range offsets {
		c, r := col+o[0], row+o[1]
		if c < 0 || c >= size || r < 0 || r >= size {
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
	return true, nil
}

// AdjacentConsecutive forbids consecutive digits on orthogonally adjacent
// cells.
type AdjacentConsecutive struct{}

var orthOffsets = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

func (AdjacentConsecutive) IsValidNumber(b *domain.Board, col, row int, n uint8) (bool, error) {
	size := b.Size()
	for _, o := range orthOffsets {
		c, r := col+o[0], row+o[1]
		if c < 0 || c >= size || r < 0 || r >= size {
			continue
		}
		v, err := b.Cell(c, r)
		if err != nil {
			return false, err
		}
		if v == domain.Empty {
			continue
		}
		if v == n+1 || v+1 == n {
			return false, nil
		}
	}
	return true, nil
}

// Composite is the conjunction of several constraints. A placement is valid
// only if every member accepts it.
type Composite []ports.Constraint

func (cs Composite) IsValidNumber(b *domain.Board, col, row int, n uint8) (bool, error) {
	for _, c := range cs {
		ok, err := c.IsValidNumber(b, col, row, n)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}
