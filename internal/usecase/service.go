package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
)

// Service wires the core generation pipeline to the service ports. The
// reducer's solving oracle is chosen per difficulty: weak deduction-only
// oracles reject most removals and leave easy clue-dense puzzles, the full
// oracle strips as far as uniqueness allows.
type Service struct {
	Constraint ports.Constraint
	Solver     ports.Solver // full-strength oracle, also used by Solve
	Validator  ports.Validator
	Hinter     ports.Hinter
	Storage    ports.Storage
	Log        logrus.FieldLogger
}

func NewService(c ports.Constraint, s ports.Solver, v ports.Validator, h ports.Hinter, st ports.Storage, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{Constraint: c, Solver: s, Validator: v, Hinter: h, Storage: st, Log: log}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) solverFor(d domain.Difficulty) ports.Solver {
	switch d {
	case domain.Easy:
		return solver.NewDeductive(domain.StrategySingles)
	case domain.Medium:
		return solver.NewDeductive(domain.StrategyHiddenSingles)
	default:
		return u.Solver
	}
}

// Generate builds a full grid for the given block dimensions, carves clues
// under the difficulty's oracle, and returns the puzzle together with its
// solution. A zero seed is replaced with the clock.
func (u *Service) Generate(ctx context.Context, seed int64, blockWidth, blockHeight int, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Constraint == nil || u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	start := time.Now()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	gen := generator.New(rng)
	full, err := gen.Generate(ctx, blockWidth, blockHeight, u.Constraint)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	board := full.Clone()
	red := generator.NewReducer(u.solverFor(d), rng)
	if err := red.Reduce(ctx, board, u.Constraint); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	p := &domain.Puzzle{
		ID:         uuid.New().String(),
		Seed:       seed,
		Difficulty: d,
		Board:      board,
		Solution:   full,
		CreatedAt:  time.Now().UnixNano(),
	}
	st := ports.Stats{Duration: time.Since(start)}
	u.Log.WithFields(logrus.Fields{
		"id":         p.ID,
		"seed":       seed,
		"size":       full.Size(),
		"difficulty": d,
		"clues":      board.CountClues(),
		"dur":        st.Duration.Round(time.Millisecond),
	}).Debug("puzzle generated")
	return p, st, nil
}

func (u *Service) Solve(ctx context.Context, b *domain.Board) (ports.Solution, ports.Stats, error) {
	if u.Solver == nil || u.Constraint == nil {
		return ports.Solution{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b, u.Constraint)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
