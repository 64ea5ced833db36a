package namegen

// ListStats holds aggregated statistics for a single NameList.
type ListStats struct {
	Entries     int     // The number of entries in the list.
	ZeroWeight  int     // The number of entries that can never be drawn.
	TotalWeight float64 // The sum of all weights.
	MaxWeight   float64 // The largest single weight.
}

// Stats returns a snapshot of statistics for the list. It is a pure
// aggregation over the current entries and never fails; a list whose weights
// would not survive sampling still has well-defined stats.
func (l *NameList[S]) Stats() ListStats {
	stats := ListStats{Entries: len(l.weights)}
	for _, w := range l.weights {
		stats.TotalWeight += w
		if w == 0 {
			stats.ZeroWeight++
		}
		if w > stats.MaxWeight {
			stats.MaxWeight = w
		}
	}
	return stats
}
