package game

import (
	"fmt"
	"time"
)

// EndType describes how a game finished.
type EndType string

const (
	EndRegulation EndType = "regulation"
	EndOvertime   EndType = "overtime"
	EndShootout   EndType = "shootout"
)

// Game is one played game. Rows are append-only; the insertion-ordered gid
// sequence is the canonical processing order for every stat import.
type Game struct {
	ID         int64
	Date       time.Time
	AwayTeamID int64
	AwayGoals  int
	HomeTeamID int64
	HomeGoals  int
	End        EndType
}

func (g Game) Validate() error {
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if g.AwayTeamID <= 0 || g.HomeTeamID <= 0 {
		return fmt.Errorf("game team ids are required")
	}
	if g.AwayTeamID == g.HomeTeamID {
		return fmt.Errorf("game cannot have the same team on both sides")
	}
	switch g.End {
	case EndRegulation, EndOvertime, EndShootout:
	default:
		return fmt.Errorf("invalid game end type: %s", g.End)
	}

	return nil
}

// Ref is the per-game fetch target shared by every stat importer: surrogate
// id, date and team links plus the home abbreviation that parameterizes the
// boxscore URL.
type Ref struct {
	GameID     int64
	Date       time.Time
	AwayTeamID int64
	HomeTeamID int64
	HomeAbbr   string
}

// BoxscorePath derives the per-game page path: date digits, a literal zero
// and the home team code.
func (r Ref) BoxscorePath() string {
	return fmt.Sprintf("/boxscores/%s0%s.html", r.Date.Format("20060102"), r.HomeAbbr)
}
