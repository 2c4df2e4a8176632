package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pucklab/icesync/internal/domain/player"
	qb "github.com/pucklab/icesync/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("pid", "name", "pos", "tid").From("player")
}

func (r *PlayerRepository) ListByName(ctx context.Context, name string) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.Eq("name", name)).
		OrderBy("pid").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players by name query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players by name: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

// Insert commits immediately, independent of any batch the caller is
// assembling.
func (r *PlayerRepository) Insert(ctx context.Context, p player.Player) (int64, error) {
	query, args, err := qb.InsertModel("player",
		playerInsertModel{Name: p.Name, Pos: p.Pos, TeamID: p.TeamID},
		"RETURNING pid")
	if err != nil {
		return 0, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert player %s: %w", p.Name, err)
	}
	return id, nil
}

func (r *PlayerRepository) InsertAll(ctx context.Context, players []player.Player) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx insert players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range players {
		query, args, err := qb.InsertModel("player",
			playerInsertModel{Name: p.Name, Pos: p.Pos, TeamID: p.TeamID}, "")
		if err != nil {
			return 0, fmt.Errorf("build insert player query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("insert player %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert players tx: %w", err)
	}
	return len(players), nil
}
