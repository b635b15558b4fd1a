package validator

import (
	"context"
	"testing"

	"svw.info/sudokugen/internal/domain"
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

func TestValidateAcceptsSolvedGrid(t *testing.T) {
	b := mustBoard(t, 2, 2, [][]uint8{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	ok, conf, err := New().Validate(context.Background(), b)
	if err != nil || !ok {
		t.Fatalf("valid grid rejected: ok=%v conf=%v err=%v", ok, conf, err)
	}
}

func TestValidateIgnoresEmptyCells(t *testing.T) {
	b := mustBoard(t, 2, 2, [][]uint8{
		{1, 0, 0, 0},
		{0, 0, 0, 2},
	})
	ok, conf, err := New().Validate(context.Background(), b)
	if err != nil || !ok {
		t.Fatalf("partial grid rejected: ok=%v conf=%v err=%v", ok, conf, err)
	}
}

func TestValidateFindsConflicts(t *testing.T) {
	cases := []struct {
		name string
		rows [][]uint8
	}{
		{"row duplicate", [][]uint8{{1, 0, 0, 1}}},
		{"col duplicate", [][]uint8{{1}, {}, {}, {1}}},
		{"block duplicate", [][]uint8{{1, 0}, {0, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := mustBoard(t, 2, 2, tc.rows)
			ok, conf, err := New().Validate(context.Background(), b)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if ok || len(conf) == 0 {
				t.Fatalf("conflict missed: ok=%v conf=%v", ok, conf)
			}
		})
	}
}
