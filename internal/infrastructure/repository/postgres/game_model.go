package postgres

import (
	"time"

	"github.com/pucklab/icesync/internal/domain/game"
)

type gameRefTableModel struct {
	GameID     int64     `db:"gid"`
	Date       time.Time `db:"date"`
	AwayTeamID int64     `db:"atid"`
	HomeTeamID int64     `db:"htid"`
	HomeAbbr   string    `db:"abbr"`
}

type gameInsertModel struct {
	Date       time.Time `db:"date"`
	AwayTeamID int64     `db:"atid"`
	AwayGoals  int       `db:"atg"`
	HomeTeamID int64     `db:"htid"`
	HomeGoals  int       `db:"htg"`
	End        string    `db:"end_type"`
}

func gameRefFromRow(row gameRefTableModel) game.Ref {
	return game.Ref{
		GameID:     row.GameID,
		Date:       row.Date,
		AwayTeamID: row.AwayTeamID,
		HomeTeamID: row.HomeTeamID,
		HomeAbbr:   row.HomeAbbr,
	}
}
