package model

import (
	"math/rand"
	"sort"
)

// Pattern is a small set of live cells relative to its top-left corner
type Pattern []Coord

var (
	glider = Pattern{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	blinker = Pattern{{0, 0}, {0, 1}, {0, 2}}
	block   = Pattern{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
)

// Seeders maps seed names to the functions that populate a cleared board
var Seeders = map[string]func(b *Board, rng *rand.Rand, density float64){
	"random": func(b *Board, rng *rand.Rand, density float64) {
		b.Randomize(density, rng)
	},
	"glider": func(b *Board, _ *rand.Rand, _ float64) {
		b.Place(glider, 1, 1)
	},
	// two gliders side by side, the way the classic demo starts
	"gliders": func(b *Board, _ *rand.Rand, _ float64) {
		b.Place(glider, b.rows*4/15, b.cols/14)
		b.Place(glider, b.rows*4/15, b.cols/14+5)
	},
	"blinker": func(b *Board, _ *rand.Rand, _ float64) {
		b.Place(blinker, b.rows/2, b.cols/2-1)
	},
	"block": func(b *Board, _ *rand.Rand, _ float64) {
		b.Place(block, b.rows/2-1, b.cols/2-1)
	},
}

// SeederNames returns the sorted seed names
func SeederNames() []string {
	names := make([]string, 0, len(Seeders))
	for k := range Seeders {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Place sets the cells of p alive with its corner at (r, c), cells outside the board are dropped
func (b *Board) Place(p Pattern, r, c int) {
	for _, q := range p {
		y, x := r+q.Row, c+q.Col
		if y < 0 || x < 0 || y >= b.rows || x >= b.cols {
			continue
		}
		b.cells[y][x] = true
	}
}
