package postgres

import "github.com/pucklab/icesync/internal/domain/player"

type playerTableModel struct {
	ID     int64  `db:"pid"`
	Name   string `db:"name"`
	Pos    string `db:"pos"`
	TeamID int64  `db:"tid"`
}

type playerInsertModel struct {
	Name   string `db:"name"`
	Pos    string `db:"pos"`
	TeamID int64  `db:"tid"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{ID: row.ID, Name: row.Name, Pos: row.Pos, TeamID: row.TeamID}
}
