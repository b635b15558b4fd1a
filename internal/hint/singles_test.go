package hint

import (
	"context"
	"testing"

	"svw.info/sudokugen/internal/constraint"
	"svw.info/sudokugen/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	b, _ := domain.NewBoard(2, 2)
	full := [][]uint8{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	for r, row := range full {
		for c, v := range row {
			_ = b.SetCell(c, r, v)
		}
	}
	_ = b.ClearCell(2, 1)

	h := NewSingles(constraint.NewDefault())
	got, found, err := h.Hint(context.Background(), b, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if !found {
		t.Fatalf("no hint found")
	}
	if len(got.Cells) != 1 || got.Cells[0] != (domain.CellCoord{Row: 1, Col: 2}) {
		t.Fatalf("wrong cell: %+v", got.Cells)
	}
	if got.Strategy != domain.StrategySingles {
		t.Fatalf("wrong strategy: %v", got.Strategy)
	}
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	b, _ := domain.NewBoard(3, 3)
	h := NewSingles(constraint.NewDefault())
	_, found, err := h.Hint(context.Background(), b, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint: %v", err)
	}
	if found {
		t.Fatalf("hint on empty board")
	}
}
