package stats

import "fmt"

// Category identifies one per-game stat table. The value doubles as the
// table name in the store.
type Category string

const (
	CategoryTeamBasic      Category = "team_stat"
	CategoryTeamAdvanced   Category = "team_stat_advanced"
	CategorySkaterBasic    Category = "skater_stat"
	CategorySkaterAdvanced Category = "skater_stat_advanced"
	CategoryGoalieBasic    Category = "goalie_stat"
)

var AllCategories = []Category{
	CategoryTeamBasic,
	CategoryTeamAdvanced,
	CategorySkaterBasic,
	CategorySkaterAdvanced,
	CategoryGoalieBasic,
}

func ParseCategory(raw string) (Category, error) {
	switch raw {
	case "team", string(CategoryTeamBasic):
		return CategoryTeamBasic, nil
	case "team-advanced", string(CategoryTeamAdvanced):
		return CategoryTeamAdvanced, nil
	case "skater", string(CategorySkaterBasic):
		return CategorySkaterBasic, nil
	case "skater-advanced", string(CategorySkaterAdvanced):
		return CategorySkaterAdvanced, nil
	case "goalie", string(CategoryGoalieBasic):
		return CategoryGoalieBasic, nil
	default:
		return "", fmt.Errorf("unknown stat category %q", raw)
	}
}

// TeamStat is one team's basic line for one game, taken from the totals row
// of the side's skater table.
type TeamStat struct {
	TeamID      int64
	GameID      int64
	Goals       int
	Assists     int
	Points      int
	PIM         int
	EVGoals     int
	PPGoals     int
	SHGoals     int
	Shots       int
	ShootingPct float64
}

// TeamStatAdvanced is one team's all-situations possession line for one game.
type TeamStatAdvanced struct {
	TeamID        int64
	GameID        int64
	SATFor        int
	SATAgainst    int
	CorsiForPct   float64
	OZoneStartPct float64
	Hits          int
	Blocks        int
}

// SkaterStat is one skater's basic line for one game. TOI is stored in
// seconds.
type SkaterStat struct {
	PlayerID    int64
	TeamID      int64
	GameID      int64
	Goals       int
	Assists     int
	Points      int
	PlusMinus   int
	PIM         int
	EVGoals     int
	PPGoals     int
	SHGoals     int
	GWGoals     int
	EVAssists   int
	PPAssists   int
	SHAssists   int
	Shots       int
	ShootingPct float64
	Shifts      int
	TOISeconds  int
}

// SkaterStatAdvanced is one skater's all-situations possession line for one
// game.
type SkaterStatAdvanced struct {
	PlayerID      int64
	TeamID        int64
	GameID        int64
	ICF           int
	SATFor        int
	SATAgainst    int
	CorsiForPct   float64
	CorsiRelPct   float64
	OZoneStarts   int
	DZoneStarts   int
	OZoneStartPct float64
	Hits          int
	Blocks        int
}

// GoalieStat is one goalie's line for one game. Decision is "W", "L", "O" or
// the "ND" sentinel when the source recorded none. EmptyNet carries the
// folded empty-net pseudo-row.
type GoalieStat struct {
	PlayerID     int64
	TeamID       int64
	GameID       int64
	Decision     string
	GoalsAgainst int
	ShotsAgainst int
	Saves        int
	SavePct      float64
	Shutouts     int
	PIM          int
	TOISeconds   int
	EmptyNet     bool
	EmptyNetGA   int
}

// DecisionNone is stored when the source leaves the goalie decision blank.
const DecisionNone = "ND"
