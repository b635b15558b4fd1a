package hint

import (
	"context"
	"fmt"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Singles implements a minimal Hinter that suggests naked singles, judged by
// the configured rule set.
type Singles struct {
	Constraint ports.Constraint
}

func NewSingles(c ports.Constraint) *Singles { return &Singles{Constraint: c} }

// Hint returns the first found naked single if the max tier allows it.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	size := b.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if err := ctx.Err(); err != nil {
				return domain.Hint{}, false, err
			}
			v, err := b.Cell(col, row)
			if err != nil {
				return domain.Hint{}, false, err
			}
			if v != domain.Empty {
				continue
			}
			n, sole, err := h.soleCandidate(b, col, row)
			if err != nil {
				return domain.Hint{}, false, err
			}
			if sole {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", n),
					Cells:    []domain.CellCoord{{Row: row, Col: col}},
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func (h *Singles) soleCandidate(b *domain.Board, col, row int) (uint8, bool, error) {
	var last uint8
	count := 0
	for n := uint8(1); int(n) <= b.Size(); n++ {
		ok, err := h.Constraint.IsValidNumber(b, col, row, n)
		if err != nil {
			return 0, false, err
		}
		if ok {
			count++
			last = n
			if count > 1 {
				return 0, false, nil
			}
		}
	}
	return last, count == 1, nil
}
