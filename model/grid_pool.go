package model

import "sync"

// BoardPool recycles snapshot boards between ticks
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a board from the pool holding a copy of src
func (p *BoardPool) Get(src *Board) *Board {
	b := p.pool.Get().(*Board)
	if b.rows != src.rows || b.cols != src.cols {
		b.rows, b.cols = src.rows, src.cols
		b.cells = newCells(src.rows, src.cols)
	}
	b.CopyFrom(src)
	return b
}

// Put returns a board to the pool
func (p *BoardPool) Put(b *Board) {
	p.pool.Put(b)
}
