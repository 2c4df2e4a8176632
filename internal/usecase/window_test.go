package usecase

import "testing"

func TestComputeWindow(t *testing.T) {
	cases := []struct {
		name        string
		lastOrdinal int
		totalGames  int
		requested   int
		wantStart   int
		wantEnd     int
	}{
		{name: "fresh category takes everything", lastOrdinal: 0, totalGames: 82, requested: 0, wantStart: 0, wantEnd: 82},
		{name: "resumes after the last imported game", lastOrdinal: 40, totalGames: 82, requested: 0, wantStart: 40, wantEnd: 82},
		{name: "requested batch bounds the window", lastOrdinal: 40, totalGames: 82, requested: 10, wantStart: 40, wantEnd: 50},
		{name: "requested batch clamps to persisted games", lastOrdinal: 80, totalGames: 82, requested: 10, wantStart: 80, wantEnd: 82},
		{name: "caught up yields an empty window", lastOrdinal: 82, totalGames: 82, requested: 0, wantStart: 82, wantEnd: 82},
		{name: "caught up with a batch still yields empty", lastOrdinal: 82, totalGames: 82, requested: 5, wantStart: 82, wantEnd: 82},
		{name: "no games persisted", lastOrdinal: 0, totalGames: 0, requested: 3, wantStart: 0, wantEnd: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := ComputeWindow(tc.lastOrdinal, tc.totalGames, tc.requested)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("got [%d,%d), want [%d,%d)", start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}
