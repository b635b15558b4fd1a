// Package generator fills empty boards into complete rule-valid grids and
// strips clues back out while a solving oracle still reports a unique
// completion. The two halves share nothing beyond the shuffle helper; the
// reducer consumes the generator's output but is wired independently.
package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Generator produces complete grids via randomized backtracking. The random
// source decides candidate order at every cell, so repeated calls yield
// different grids; a seeded source makes runs reproducible.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator using the given random source.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewDefault creates a generator seeded from the system clock.
func NewDefault() *Generator {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Generate returns a fully filled board of size blockWidth*blockHeight that
// the constraint accepts at every cell. It fails with
// domain.ErrInvalidDimensions before any search when either dimension is
// zero, and with domain.ErrUnsatisfiable when the exhaustive search finds no
// completion.
func (g *Generator) Generate(ctx context.Context, blockWidth, blockHeight int, c ports.Constraint) (*domain.Board, error) {
	b, err := domain.NewBoard(blockWidth, blockHeight)
	if err != nil {
		return nil, err
	}
	done, err := g.fill(ctx, b, c, 0, 0)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, domain.ErrUnsatisfiable
	}
	return b, nil
}

// fill runs depth-first over cells in row-major order, column varying
// fastest. Candidates are visited in shuffled order; the first completion
// wins. A false return is the internal backtracking signal, only the top
// level turns it into an error.
func (g *Generator) fill(ctx context.Context, b *domain.Board, c ports.Constraint, col, row int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	size := b.Size()
	if row == size {
		return true, nil
	}
	nextCol := (col + 1) % size
	nextRow := row
	if nextCol == 0 {
		nextRow++
	}

	nums := digits(size)
	shuffle(g.rng, nums)
	for _, n := range nums {
		ok, err := c.IsValidNumber(b, col, row, n)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		if err := b.SetCell(col, row, n); err != nil {
			return false, err
		}
		done, err := g.fill(ctx, b, c, nextCol, nextRow)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
		if err := b.ClearCell(col, row); err != nil {
			return false, err
		}
	}
	return false, nil
}
