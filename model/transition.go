package model

import (
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/deltalife/rules"
)

// Delta lists the cells that changed during one tick in row-major order
type Delta []Coord

// Equal reports whether both deltas hold the same coordinates in the same order
func (d Delta) Equal(o Delta) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if d[i] != o[i] {
			return false
		}
	}
	return true
}

// Tick advances b by one generation and returns the changed cells
func Tick(b *Board, wrapRows, wrapCols bool) Delta {
	s := Stepper{WrapRows: wrapRows, WrapCols: wrapCols}
	return s.Tick(b)
}

// Stepper advances boards under a fixed edge policy.
// The zero value is ready to use and evaluates sequentially.
type Stepper struct {
	WrapRows bool
	WrapCols bool

	// Workers > 1 evaluates row bands concurrently
	Workers int

	pool *BoardPool
}

// NewStepper creates a stepper with its own snapshot pool
func NewStepper(wrapRows, wrapCols bool, workers int) *Stepper {
	return &Stepper{
		WrapRows: wrapRows,
		WrapCols: wrapCols,
		Workers:  workers,
		pool:     NewBoardPool(),
	}
}

// Tick advances b by one generation.
// Neighbor counts are read from a snapshot taken before any cell is written.
func (s *Stepper) Tick(b *Board) Delta {
	var prev *Board
	if s.pool != nil {
		prev = s.pool.Get(b)
		defer s.pool.Put(prev)
	} else {
		prev = b.Clone()
	}

	if s.Workers <= 1 || b.rows < 2 {
		return s.band(prev, b, 0, b.rows, nil)
	}
	return s.parallel(prev, b)
}

// band evaluates rows [start, end) of prev, writes changes into next and appends them to delta
func (s *Stepper) band(prev, next *Board, start, end int, delta Delta) Delta {
	for r := start; r < end; r++ {
		for c := 0; c < prev.cols; c++ {
			was := prev.cells[r][c]
			alive := rules.ApplyConwayRules(Weight(prev, r, c, s.WrapRows, s.WrapCols), was)
			if alive != was {
				delta = append(delta, Coord{Row: r, Col: c})
				next.cells[r][c] = alive
			}
		}
	}
	return delta
}

// parallel splits the rows into bands, each band writes only its own rows
func (s *Stepper) parallel(prev, next *Board) Delta {
	var (
		eg          errgroup.Group
		workers     = min(s.Workers, prev.rows)
		rowsPerBand = (prev.rows + workers - 1) / workers
		deltas      = make([]Delta, workers)
	)

	for i := range workers {
		var (
			startRow = i * rowsPerBand
			endRow   = min(startRow+rowsPerBand, prev.rows)
		)
		if startRow >= prev.rows {
			break
		}

		eg.Go(func() error {
			deltas[i] = s.band(prev, next, startRow, endRow, nil)
			return nil
		})
	}
	// stdout carries the frames, so errors go to the stderr logger
	if err := eg.Wait(); err != nil {
		log.Printf("[Stepper.parallel] error in parallel processing: %v", err)
	}

	size := 0
	for _, d := range deltas {
		size += len(d)
	}
	if size == 0 {
		return nil
	}
	delta := make(Delta, 0, size)
	for _, d := range deltas {
		delta = append(delta, d...)
	}
	return delta
}
