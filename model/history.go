package model

// RepeatDetector remembers the two most recent deltas to detect still lifes and period-2 oscillators.
// Longer cycles are not detected.
type RepeatDetector struct {
	prev  Delta
	prev2 Delta
	seen  int // observed deltas, capped at 2
}

// Observe records delta and reports whether it repeats one of the two previous deltas
func (d *RepeatDetector) Observe(delta Delta) bool {
	if d.seen >= 1 && delta.Equal(d.prev) {
		return true
	}
	if d.seen >= 2 && delta.Equal(d.prev2) {
		return true
	}
	d.prev2 = d.prev
	d.prev = append(Delta(nil), delta...)
	d.seen = min(d.seen+1, 2)
	return false
}
