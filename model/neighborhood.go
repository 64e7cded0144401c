package model

// AxisTriple returns the (x-1, x, x+1) indices for coordinate x on an axis of the given length.
//
// With wrap the outer indices are taken modulo length. Without wrap an
// out-of-range index collapses to x itself, so boundary cells see their own
// row or column twice.
func AxisTriple(length, x int, wrap bool) [3]int {
	if wrap {
		return [3]int{(x - 1 + length) % length, x, (x + 1) % length}
	}
	return [3]int{max(x-1, 0), x, min(x+1, length-1)}
}

// Weight counts the living neighbors of (r, c).
// Every position of the 3x3 product of the row and column triples is visited,
// positions equal to (r, c) are skipped and duplicates count once per visit.
func Weight(b *Board, r, c int, wrapRows, wrapCols bool) int {
	rows := AxisTriple(b.rows, r, wrapRows)
	cols := AxisTriple(b.cols, c, wrapCols)

	count := 0
	for _, i := range rows {
		for _, j := range cols {
			if i == r && j == c {
				continue
			}
			if b.cells[i][j] {
				count++
			}
		}
	}
	return count
}
