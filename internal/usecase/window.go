package usecase

// ComputeWindow returns the half-open ordinal range [start, end) of games a
// category still has to import. lastOrdinal is how many games into the
// canonical gid-ordered sequence the category already is (0 for an empty
// table), totalGames the number of persisted games, requested an optional
// batch size (<= 0 means everything outstanding). The end is clamped so the
// window never reaches past the persisted games.
func ComputeWindow(lastOrdinal, totalGames, requested int) (int, int) {
	if lastOrdinal < 0 {
		lastOrdinal = 0
	}
	if totalGames < 0 {
		totalGames = 0
	}

	start := lastOrdinal
	end := totalGames
	if requested > 0 {
		end = lastOrdinal + requested
		if end > totalGames {
			end = totalGames
		}
	}
	if end < start {
		end = start
	}

	return start, end
}
