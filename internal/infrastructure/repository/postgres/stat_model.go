package postgres

import "github.com/pucklab/icesync/internal/domain/stats"

type teamStatInsertModel struct {
	TeamID      int64   `db:"tid"`
	GameID      int64   `db:"gid"`
	Goals       int     `db:"g"`
	Assists     int     `db:"a"`
	Points      int     `db:"pts"`
	PIM         int     `db:"pim"`
	EVGoals     int     `db:"evg"`
	PPGoals     int     `db:"ppg"`
	SHGoals     int     `db:"shg"`
	Shots       int     `db:"sog"`
	ShootingPct float64 `db:"sp"`
}

type teamStatAdvancedInsertModel struct {
	TeamID        int64   `db:"tid"`
	GameID        int64   `db:"gid"`
	SATFor        int     `db:"satf"`
	SATAgainst    int     `db:"sata"`
	CorsiForPct   float64 `db:"cfp"`
	OZoneStartPct float64 `db:"ozsp"`
	Hits          int     `db:"hit"`
	Blocks        int     `db:"blk"`
}

type skaterStatInsertModel struct {
	PlayerID    int64   `db:"pid"`
	TeamID      int64   `db:"tid"`
	GameID      int64   `db:"gid"`
	Goals       int     `db:"g"`
	Assists     int     `db:"a"`
	Points      int     `db:"pts"`
	PlusMinus   int     `db:"pm"`
	PIM         int     `db:"pim"`
	EVGoals     int     `db:"evg"`
	PPGoals     int     `db:"ppg"`
	SHGoals     int     `db:"shg"`
	GWGoals     int     `db:"gwg"`
	EVAssists   int     `db:"esa"`
	PPAssists   int     `db:"ppa"`
	SHAssists   int     `db:"sha"`
	Shots       int     `db:"sog"`
	ShootingPct float64 `db:"sp"`
	Shifts      int     `db:"shft"`
	TOISeconds  int     `db:"toi"`
}

type skaterStatAdvancedInsertModel struct {
	PlayerID      int64   `db:"pid"`
	TeamID        int64   `db:"tid"`
	GameID        int64   `db:"gid"`
	ICF           int     `db:"icf"`
	SATFor        int     `db:"satf"`
	SATAgainst    int     `db:"sata"`
	CorsiForPct   float64 `db:"cfp"`
	CorsiRelPct   float64 `db:"crel"`
	OZoneStarts   int     `db:"zso"`
	DZoneStarts   int     `db:"dzs"`
	OZoneStartPct float64 `db:"ozsp"`
	Hits          int     `db:"hit"`
	Blocks        int     `db:"blk"`
}

type goalieStatInsertModel struct {
	PlayerID     int64   `db:"pid"`
	TeamID       int64   `db:"tid"`
	GameID       int64   `db:"gid"`
	Decision     string  `db:"dec"`
	GoalsAgainst int     `db:"ga"`
	ShotsAgainst int     `db:"sa"`
	Saves        int     `db:"sv"`
	SavePct      float64 `db:"svp"`
	Shutouts     int     `db:"so"`
	PIM          int     `db:"pim"`
	TOISeconds   int     `db:"toi"`
	EmptyNet     bool    `db:"en"`
	EmptyNetGA   int     `db:"enga"`
}

func teamStatToInsertModel(row stats.TeamStat) teamStatInsertModel {
	return teamStatInsertModel{
		TeamID: row.TeamID, GameID: row.GameID,
		Goals: row.Goals, Assists: row.Assists, Points: row.Points,
		PIM: row.PIM, EVGoals: row.EVGoals, PPGoals: row.PPGoals,
		SHGoals: row.SHGoals, Shots: row.Shots, ShootingPct: row.ShootingPct,
	}
}

func teamStatAdvancedToInsertModel(row stats.TeamStatAdvanced) teamStatAdvancedInsertModel {
	return teamStatAdvancedInsertModel{
		TeamID: row.TeamID, GameID: row.GameID,
		SATFor: row.SATFor, SATAgainst: row.SATAgainst,
		CorsiForPct: row.CorsiForPct, OZoneStartPct: row.OZoneStartPct,
		Hits: row.Hits, Blocks: row.Blocks,
	}
}

func skaterStatToInsertModel(row stats.SkaterStat) skaterStatInsertModel {
	return skaterStatInsertModel{
		PlayerID: row.PlayerID, TeamID: row.TeamID, GameID: row.GameID,
		Goals: row.Goals, Assists: row.Assists, Points: row.Points,
		PlusMinus: row.PlusMinus, PIM: row.PIM,
		EVGoals: row.EVGoals, PPGoals: row.PPGoals, SHGoals: row.SHGoals,
		GWGoals: row.GWGoals, EVAssists: row.EVAssists, PPAssists: row.PPAssists,
		SHAssists: row.SHAssists, Shots: row.Shots, ShootingPct: row.ShootingPct,
		Shifts: row.Shifts, TOISeconds: row.TOISeconds,
	}
}

func skaterStatAdvancedToInsertModel(row stats.SkaterStatAdvanced) skaterStatAdvancedInsertModel {
	return skaterStatAdvancedInsertModel{
		PlayerID: row.PlayerID, TeamID: row.TeamID, GameID: row.GameID,
		ICF: row.ICF, SATFor: row.SATFor, SATAgainst: row.SATAgainst,
		CorsiForPct: row.CorsiForPct, CorsiRelPct: row.CorsiRelPct,
		OZoneStarts: row.OZoneStarts, DZoneStarts: row.DZoneStarts,
		OZoneStartPct: row.OZoneStartPct, Hits: row.Hits, Blocks: row.Blocks,
	}
}

func goalieStatToInsertModel(row stats.GoalieStat) goalieStatInsertModel {
	return goalieStatInsertModel{
		PlayerID: row.PlayerID, TeamID: row.TeamID, GameID: row.GameID,
		Decision: row.Decision, GoalsAgainst: row.GoalsAgainst,
		ShotsAgainst: row.ShotsAgainst, Saves: row.Saves, SavePct: row.SavePct,
		Shutouts: row.Shutouts, PIM: row.PIM, TOISeconds: row.TOISeconds,
		EmptyNet: row.EmptyNet, EmptyNetGA: row.EmptyNetGA,
	}
}
