package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudokugen/internal/constraint"
	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// DLX implements Algorithm X / Dancing Links over the exact-cover encoding of
// the default rule set, for any block geometry of size N = blockWidth *
// blockHeight: 4N² constraint columns (cell, row-digit, col-digit,
// block-digit) and N³ candidate rows (r, c, v).
//
// The encoding bakes in the row/col/block rules, so DLX only accepts
// constraint.Default; variant rule sets must go through Backtracking.
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

var errDLXConstraint = errors.New("dlx: only the default rule set is supported")

// node/column structures (classic dancing links)
type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // identifies the (r,c,v) candidate
}

type dlxColumn struct {
	dlxNode
	size   int
	name   int
	active bool // whether this constraint column is currently uncovered
}

type dlxMatrix struct {
	size        int
	blockWidth  int
	blockHeight int
	cols        []*dlxColumn
	rowHead     []*dlxNode
	sol         []*dlxNode
	givens      int   // rows preselected via applyGiven
	firstRows   []int // candidate rows of the first completion found, givens first
	nodes       int
	activeCnt   int
}

func newDLXMatrix(size, blockWidth, blockHeight int) *dlxMatrix {
	nCells := size * size
	nCols := 4 * nCells
	nRows := nCells * size
	d := &dlxMatrix{
		size:        size,
		blockWidth:  blockWidth,
		blockHeight: blockHeight,
		cols:        make([]*dlxColumn, nCols),
		rowHead:     make([]*dlxNode, nRows),
		sol:         make([]*dlxNode, nRows),
	}
	for i := 0; i < nCols; i++ {
		c := &dlxColumn{name: i, active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = nCols

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			for v := 1; v <= size; v++ {
				row := d.rowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range d.rowColumns(r, c, v) {
					col := d.cols[colID]
					n := &dlxNode{col: col, rowIdx: row}
					// vertical insert at the bottom of the column
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					// horizontal ring for the 4 nodes of the row
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func (d *dlxMatrix) rowIndex(r, c, v int) int {
	return (r*d.size+c)*d.size + (v - 1)
}

func (d *dlxMatrix) rowColumns(r, c, v int) [4]int {
	nCells := d.size * d.size
	cell := r*d.size + c
	rowN := nCells + r*d.size + (v - 1)
	colN := 2*nCells + c*d.size + (v - 1)
	blocksPerRow := d.size / d.blockWidth
	block := (r/d.blockHeight)*blocksPerRow + c/d.blockWidth
	blockN := 3*nCells + block*d.size + (v - 1)
	return [4]int{cell, rowN, colN, blockN}
}

func (d *dlxMatrix) decodeRow(row int) (r, c, v int) {
	cell := row / d.size
	v = (row % d.size) + 1
	r = cell / d.size
	c = cell % d.size
	return
}

func (d *dlxMatrix) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size.
func (d *dlxMatrix) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlxMatrix) search(ctx context.Context, k, wantCount int, found *int) bool {
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	// all constraints covered → solution
	if d.activeCnt == 0 {
		(*found)++
		if *found == 1 {
			d.firstRows = d.firstRows[:d.givens]
			for i := 0; i < k; i++ {
				d.firstRows = append(d.firstRows, d.sol[i].rowIdx)
			}
		}
		return *found >= wantCount
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

// applyGiven selects the candidate row for a given digit and covers its
// columns, as if chosen at the top of the search.
func (d *dlxMatrix) applyGiven(r, c, v int) error {
	head := d.rowHead[d.rowIndex(r, c, v)]
	if head == nil {
		return errors.New("dlx: invalid row mapping")
	}
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
	// givens are fixed before the search, so they are part of every solution
	d.firstRows = append(d.firstRows, head.rowIdx)
	d.givens++
	return nil
}

func (s *DLX) Solve(ctx context.Context, b *domain.Board, c ports.Constraint) (ports.Solution, ports.Stats, error) {
	start := time.Now()
	if _, ok := c.(constraint.Default); !ok {
		return ports.Solution{}, ports.Stats{}, errDLXConstraint
	}
	size := b.Size()
	d := newDLXMatrix(size, b.BlockWidth(), b.BlockHeight())
	for r := 0; r < size; r++ {
		for cc := 0; cc < size; cc++ {
			v, err := b.Cell(cc, r)
			if err != nil {
				return ports.Solution{}, ports.Stats{}, err
			}
			if v == domain.Empty {
				continue
			}
			if err := d.applyGiven(r, cc, int(v)); err != nil {
				return ports.Solution{}, ports.Stats{}, fmt.Errorf("given at col=%d row=%d: %w", cc, r, err)
			}
		}
	}
	// conflicting givens leave an empty-but-uncoverable column; the search
	// then reports no solution, which is the right outcome.

	found := 0
	_ = d.search(ctx, 0, 2, &found)
	if err := ctx.Err(); err != nil {
		return ports.Solution{}, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, err
	}
	st := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
	switch {
	case found == 0:
		return ports.Solution{Outcome: ports.Impossible}, st, nil
	case found >= 2:
		return ports.Solution{Outcome: ports.Ambiguous}, st, nil
	}

	out := b.Clone()
	for _, rx := range d.firstRows {
		r, cc, v := d.decodeRow(rx)
		if err := out.SetCell(cc, r, uint8(v)); err != nil {
			return ports.Solution{}, st, err
		}
	}
	return ports.Solution{Outcome: ports.Unique, Board: out}, st, nil
}
