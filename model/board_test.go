package model

import (
	"math/rand"
	"testing"
)

func TestNewBoardPanicsOnEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 5}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewBoard(%d, %d) did not panic", dims[0], dims[1])
				}
			}()
			NewBoard(dims[0], dims[1])
		}()
	}
}

func TestBoardSetAtClone(t *testing.T) {
	b := NewBoard(3, 4)
	if b.Rows() != 3 || b.Cols() != 4 {
		t.Fatalf("dimensions = %dx%d, want 3x4", b.Rows(), b.Cols())
	}
	b.Set(2, 3, true)
	if !b.At(2, 3) || b.At(0, 0) {
		t.Fatalf("unexpected cell states:\n%s", b)
	}

	c := b.Clone()
	if !c.Equal(b) {
		t.Fatalf("clone differs:\n%s\nvs\n%s", c, b)
	}
	c.Set(0, 0, true)
	if b.At(0, 0) {
		t.Fatal("writing the clone changed the original")
	}
	if c.Equal(b) {
		t.Fatal("Equal ignored a differing cell")
	}
}

func TestParseBoardString(t *testing.T) {
	lines := []string{
		".#.",
		"##.",
	}
	b := ParseBoard(lines...)
	if got, want := b.String(), ".#.\n##.\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if got := b.CountAlive(); got != 3 {
		t.Fatalf("CountAlive() = %d, want 3", got)
	}
}

func TestRandomizeIsDeterministicPerSeed(t *testing.T) {
	a, b := NewBoard(20, 20), NewBoard(20, 20)
	a.Randomize(0.2, rand.New(rand.NewSource(7)))
	b.Randomize(0.2, rand.New(rand.NewSource(7)))
	if !a.Equal(b) {
		t.Fatal("same seed produced different boards")
	}
	if n := a.CountAlive(); n == 0 || n == 400 {
		t.Fatalf("CountAlive() = %d, want a partially alive board", n)
	}
}

func TestPlaceDropsOutOfRangeCells(t *testing.T) {
	b := NewBoard(2, 2)
	b.Place(block, 1, 1)
	if got, want := b.String(), "..\n.#\n"; got != want {
		t.Fatalf("board = %q, want %q", got, want)
	}
}

func TestSeeders(t *testing.T) {
	for _, name := range SeederNames() {
		t.Run(name, func(t *testing.T) {
			b := NewBoard(30, 70)
			Seeders[name](b, rand.New(rand.NewSource(1)), 0.15)
			if b.CountAlive() == 0 {
				t.Fatalf("%s left the board empty", name)
			}
		})
	}
}

func TestBoardPoolCopiesSource(t *testing.T) {
	p := NewBoardPool()
	src := ParseBoard("#.", ".#")
	got := p.Get(src)
	if !got.Equal(src) {
		t.Fatalf("pooled board = %q, want %q", got, src)
	}
	p.Put(got)

	other := ParseBoard("###")
	if got := p.Get(other); !got.Equal(other) {
		t.Fatalf("pooled board after resize = %q, want %q", got, other)
	}
}
