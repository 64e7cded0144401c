package model

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	glyphAlive = '#'
	glyphDead  = ' '

	// textAlive and textDead are used by ParseBoard and String
	textAlive = '#'
	textDead  = '.'
)

// Coord addresses a single cell by row and column
type Coord struct {
	Row int
	Col int
}

// Board is a fixed-size grid of binary cells, row 0 is the topmost row
type Board struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewBoard creates a board of dead cells with the specified dimensions
func NewBoard(rows, cols int) *Board {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("model: invalid board dimensions %dx%d", rows, cols))
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: newCells(rows, cols),
	}
}

// newCells allocates the rows over a single backing slice
func newCells(rows, cols int) [][]bool {
	cells := make([][]bool, rows)
	b := make([]bool, rows*cols)
	for i := range cells {
		start := cols * i
		cells[i] = b[start : start+cols : start+cols]
	}
	return cells
}

// ParseBoard builds a board from text lines where '#' is alive and anything else is dead.
// All lines must have the same non-zero length.
func ParseBoard(lines ...string) *Board {
	if len(lines) == 0 {
		panic("model: ParseBoard needs at least one line")
	}
	b := NewBoard(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != b.cols {
			panic(fmt.Sprintf("model: ParseBoard line %d has length %d, want %d", r, len(line), b.cols))
		}
		for c := range line {
			b.cells[r][c] = line[c] == textAlive
		}
	}
	return b
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns
func (b *Board) Cols() int {
	return b.cols
}

// At returns the state of a cell, out-of-range coordinates panic
func (b *Board) At(r, c int) bool {
	return b.cells[r][c]
}

// Set sets a cell to alive (true) or dead (false)
func (b *Board) Set(r, c int, alive bool) {
	b.cells[r][c] = alive
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	n := NewBoard(b.rows, b.cols)
	n.CopyFrom(b)
	return n
}

// CopyFrom overwrites every cell with the state of src, the dimensions must match
func (b *Board) CopyFrom(src *Board) {
	if src.rows != b.rows || src.cols != b.cols {
		panic(fmt.Sprintf("model: CopyFrom %dx%d into %dx%d", src.rows, src.cols, b.rows, b.cols))
	}
	for r := range b.cells {
		copy(b.cells[r], src.cells[r])
	}
}

// Equal reports whether both boards have the same dimensions and cell states
func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountAlive returns the total number of living cells
func (b *Board) CountAlive() (count int) {
	for r := range b.cells {
		for _, alive := range b.cells[r] {
			if alive {
				count++
			}
		}
	}
	return
}

// Randomize sets every cell alive independently with the given probability
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = rng.Float64() < density
		}
	}
}

// String renders the board as lines of '#' and '.'
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for r := range b.cells {
		for _, alive := range b.cells[r] {
			if alive {
				sb.WriteByte(textAlive)
			} else {
				sb.WriteByte(textDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func glyph(alive bool) byte {
	if alive {
		return glyphAlive
	}
	return glyphDead
}
