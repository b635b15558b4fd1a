package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a board is requested with a zero
	// block width or height.
	ErrInvalidDimensions = errors.New("block width and height must be positive")

	// ErrUnsatisfiable is returned when no full grid exists for a constraint.
	ErrUnsatisfiable = errors.New("no grid satisfies the constraint")

	ErrOutOfRange    = errors.New("cell coordinate out of range")
	ErrInvalidNumber = errors.New("number out of range")
)

// Empty marks a cell with no digit.
const Empty uint8 = 0

// MaxSize caps the grid edge. Dimensions arrive from the network, and without
// a bound a small JSON body can demand a multi-gigabyte allocation or wrap the
// size*size product past an integer overflow.
const MaxSize = 64

// Board is a square grid of size blockWidth*blockHeight, subdivided into
// rectangular blocks of blockWidth columns and blockHeight rows. Cells hold
// Empty or a digit in 1..Size.
//
// Board knows nothing about placement rules; rule checks live behind
// ports.Constraint.
type Board struct {
	blockWidth  int
	blockHeight int
	size        int
	cells       []uint8
}

// NewBoard creates an empty board. A zero or negative dimension, or a grid
// edge beyond MaxSize, yields ErrInvalidDimensions.
func NewBoard(blockWidth, blockHeight int) (*Board, error) {
	if blockWidth <= 0 || blockHeight <= 0 {
		return nil, ErrInvalidDimensions
	}
	// reject each factor before multiplying so the product cannot overflow
	if blockWidth > MaxSize || blockHeight > MaxSize || blockWidth*blockHeight > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d blocks give a grid edge beyond %d", ErrInvalidDimensions, blockWidth, blockHeight, MaxSize)
	}
	size := blockWidth * blockHeight
	return &Board{
		blockWidth:  blockWidth,
		blockHeight: blockHeight,
		size:        size,
		cells:       make([]uint8, size*size),
	}, nil
}

func (b *Board) Size() int        { return b.size }
func (b *Board) BlockWidth() int  { return b.blockWidth }
func (b *Board) BlockHeight() int { return b.blockHeight }

func (b *Board) index(col, row int) (int, error) {
	if col < 0 || col >= b.size || row < 0 || row >= b.size {
		return 0, fmt.Errorf("%w: col=%d row=%d size=%d", ErrOutOfRange, col, row, b.size)
	}
	return row*b.size + col, nil
}

// Cell returns the digit at (col, row), or Empty.
func (b *Board) Cell(col, row int) (uint8, error) {
	i, err := b.index(col, row)
	if err != nil {
		return Empty, err
	}
	return b.cells[i], nil
}

// SetCell writes a digit in 1..Size at (col, row).
func (b *Board) SetCell(col, row int, n uint8) error {
	i, err := b.index(col, row)
	if err != nil {
		return err
	}
	if n < 1 || int(n) > b.size {
		return fmt.Errorf("%w: %d (size=%d)", ErrInvalidNumber, n, b.size)
	}
	b.cells[i] = n
	return nil
}

// ClearCell empties (col, row).
func (b *Board) ClearCell(col, row int) error {
	i, err := b.index(col, row)
	if err != nil {
		return err
	}
	b.cells[i] = Empty
	return nil
}

// CountClues returns the number of non-empty cells.
func (b *Board) CountClues() int {
	n := 0
	for _, v := range b.cells {
		if v != Empty {
			n++
		}
	}
	return n
}

// Full reports whether every cell holds a digit.
func (b *Board) Full() bool {
	return b.CountClues() == b.size*b.size
}

// Clone returns a deep copy that shares no state with the receiver.
func (b *Board) Clone() *Board {
	out := &Board{
		blockWidth:  b.blockWidth,
		blockHeight: b.blockHeight,
		size:        b.size,
		cells:       make([]uint8, len(b.cells)),
	}
	copy(out.cells, b.cells)
	return out
}

// Equal reports whether two boards have the same geometry and contents.
func (b *Board) Equal(o *Board) bool {
	if o == nil || b.blockWidth != o.blockWidth || b.blockHeight != o.blockHeight {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

type boardJSON struct {
	BlockWidth  int     `json:"blockWidth"`
	BlockHeight int     `json:"blockHeight"`
	Cells       []uint8 `json:"cells"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(boardJSON{
		BlockWidth:  b.blockWidth,
		BlockHeight: b.blockHeight,
		Cells:       b.cells,
	})
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	nb, err := NewBoard(raw.BlockWidth, raw.BlockHeight)
	if err != nil {
		return err
	}
	if len(raw.Cells) != len(nb.cells) {
		return fmt.Errorf("board: expected %d cells, got %d", len(nb.cells), len(raw.Cells))
	}
	for _, v := range raw.Cells {
		if int(v) > nb.size {
			return fmt.Errorf("%w: %d (size=%d)", ErrInvalidNumber, v, nb.size)
		}
	}
	copy(nb.cells, raw.Cells)
	*b = *nb
	return nil
}
