package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pucklab/icesync/internal/domain/stats"
	qb "github.com/pucklab/icesync/internal/platform/querybuilder"
)

// StatRepository persists all five stat categories. The category value is
// the table name; only known categories ever reach a query.
type StatRepository struct {
	db *sqlx.DB
}

func NewStatRepository(db *sqlx.DB) *StatRepository {
	return &StatRepository{db: db}
}

func validCategory(category stats.Category) error {
	for _, known := range stats.AllCategories {
		if category == known {
			return nil
		}
	}
	return fmt.Errorf("unknown stat category %q", category)
}

func (r *StatRepository) LastGameID(ctx context.Context, category stats.Category) (int64, bool, error) {
	if err := validCategory(category); err != nil {
		return 0, false, err
	}

	query, args, err := qb.Select("gid").
		From(string(category)).
		OrderBy("gid DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return 0, false, fmt.Errorf("build last game id query: %w", err)
	}

	var gid int64
	if err := r.db.GetContext(ctx, &gid, query, args...); err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("last game id for %s: %w", category, err)
	}
	return gid, true, nil
}

// insertBatch writes every model in one transaction.
func (r *StatRepository) insertBatch(ctx context.Context, table string, models []any) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx insert %s: %w", table, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, model := range models {
		query, args, err := qb.InsertModel(table, model, "")
		if err != nil {
			return 0, fmt.Errorf("build insert %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("insert %s row: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert %s tx: %w", table, err)
	}
	return len(models), nil
}

func (r *StatRepository) InsertTeamStats(ctx context.Context, rows []stats.TeamStat) (int, error) {
	models := make([]any, 0, len(rows))
	for _, row := range rows {
		models = append(models, teamStatToInsertModel(row))
	}
	return r.insertBatch(ctx, string(stats.CategoryTeamBasic), models)
}

func (r *StatRepository) InsertTeamStatsAdvanced(ctx context.Context, rows []stats.TeamStatAdvanced) (int, error) {
	models := make([]any, 0, len(rows))
	for _, row := range rows {
		models = append(models, teamStatAdvancedToInsertModel(row))
	}
	return r.insertBatch(ctx, string(stats.CategoryTeamAdvanced), models)
}

func (r *StatRepository) InsertSkaterStats(ctx context.Context, rows []stats.SkaterStat) (int, error) {
	models := make([]any, 0, len(rows))
	for _, row := range rows {
		models = append(models, skaterStatToInsertModel(row))
	}
	return r.insertBatch(ctx, string(stats.CategorySkaterBasic), models)
}

func (r *StatRepository) InsertSkaterStatsAdvanced(ctx context.Context, rows []stats.SkaterStatAdvanced) (int, error) {
	models := make([]any, 0, len(rows))
	for _, row := range rows {
		models = append(models, skaterStatAdvancedToInsertModel(row))
	}
	return r.insertBatch(ctx, string(stats.CategorySkaterAdvanced), models)
}

func (r *StatRepository) InsertGoalieStats(ctx context.Context, rows []stats.GoalieStat) (int, error) {
	models := make([]any, 0, len(rows))
	for _, row := range rows {
		models = append(models, goalieStatToInsertModel(row))
	}
	return r.insertBatch(ctx, string(stats.CategoryGoalieBasic), models)
}
