package rules

// MaxNeighbors is the largest neighbor count a cell can have.
const MaxNeighbors = 8

/*
ApplyConwayRules applies the B3/S23 rule to determine the next state of a cell.

Birth on exactly 3 live neighbors, survival on 2 or 3, death otherwise.
A count of 2 leaves the cell as it was.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors == 3:
		return true
	case neighbors < 2 || neighbors > 3:
		return false
	default:
		return alive
	}
}
