package postgres

import "github.com/pucklab/icesync/internal/domain/team"

type teamTableModel struct {
	ID   int64  `db:"tid"`
	Name string `db:"name"`
	Abbr string `db:"abbr"`
}

type teamInsertModel struct {
	Name string `db:"name"`
	Abbr string `db:"abbr"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{ID: row.ID, Name: row.Name, Abbr: row.Abbr}
}
