package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pucklab/icesync/internal/domain/game"
	qb "github.com/pucklab/icesync/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListRefs(ctx context.Context) ([]game.Ref, error) {
	query, args, err := qb.Select("g.gid", "g.date", "g.atid", "g.htid", "t.abbr").
		From("game g").
		Join("team t ON t.tid = g.htid").
		OrderBy("g.gid").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list game refs query: %w", err)
	}

	var rows []gameRefTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list game refs: %w", err)
	}

	out := make([]game.Ref, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameRefFromRow(row))
	}
	return out, nil
}

func (r *GameRepository) LastDate(ctx context.Context) (time.Time, bool, error) {
	query, args, err := qb.Select("date").
		From("game").
		OrderBy("date DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("build last game date query: %w", err)
	}

	var date time.Time
	if err := r.db.GetContext(ctx, &date, query, args...); err != nil {
		if isNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("last game date: %w", err)
	}
	return date, true, nil
}

func (r *GameRepository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("game").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count games query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return count, nil
}

// OrdinalOf ranks the gid within the gid-ordered sequence, 1-based. Gids are
// opaque and may carry gaps, so the rank comes from a window function rather
// than the gid value itself.
func (r *GameRepository) OrdinalOf(ctx context.Context, gameID int64) (int, bool, error) {
	query, args, err := qb.Select("ranked.row_num").
		From("(SELECT gid, ROW_NUMBER() OVER (ORDER BY gid) AS row_num FROM game) ranked").
		Where(qb.Eq("ranked.gid", gameID)).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build game ordinal query: %w", err)
	}

	var ordinal int
	if err := r.db.GetContext(ctx, &ordinal, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("game ordinal: %w", err)
	}
	return ordinal, true, nil
}

func (r *GameRepository) InsertAll(ctx context.Context, games []game.Game) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx insert games: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, g := range games {
		query, args, err := qb.InsertModel("game", gameInsertModel{
			Date:       g.Date,
			AwayTeamID: g.AwayTeamID,
			AwayGoals:  g.AwayGoals,
			HomeTeamID: g.HomeTeamID,
			HomeGoals:  g.HomeGoals,
			End:        string(g.End),
		}, "")
		if err != nil {
			return 0, fmt.Errorf("build insert game query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("insert game on %s: %w", g.Date.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert games tx: %w", err)
	}
	return len(games), nil
}
