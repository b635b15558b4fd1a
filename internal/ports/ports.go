package ports

import (
	"context"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Constraint answers whether placing n at (col, row) keeps the board
// consistent with a rule set, given current contents. Implementations must be
// deterministic and side-effect free; the cell under test is ignored so a
// filled cell can be re-checked against the rest of the grid.
type Constraint interface {
	IsValidNumber(b *domain.Board, col, row int, n uint8) (bool, error)
}

// Outcome is the ternary result of a solving attempt.
type Outcome int

const (
	Impossible Outcome = iota // no valid completion exists
	Unique                    // exactly one valid completion exists
	Ambiguous                 // two or more valid completions exist
)

func (o Outcome) String() string {
	switch o {
	case Impossible:
		return "impossible"
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	}
	return "unknown"
}

// Solution carries an Outcome and, for Unique, the completed board.
type Solution struct {
	Outcome Outcome
	Board   *domain.Board
}

// Solver is the uniqueness oracle. Solve must not mutate b.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board, c Constraint) (Solution, Stats, error)
}

// Generator fills an empty board of the given block dimensions into one
// complete rule-valid grid.
type Generator interface {
	Generate(ctx context.Context, blockWidth, blockHeight int, c Constraint) (*domain.Board, error)
}

// Reducer strips clues from a full board in place while the configured solver
// still reports a unique completion.
type Reducer interface {
	Reduce(ctx context.Context, b *domain.Board, c Constraint) error
}

// Validator performs fast whole-grid duplicate checks (row/col/block).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
