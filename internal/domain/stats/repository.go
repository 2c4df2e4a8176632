package stats

import "context"

// Repository describes stat persistence needs from use cases.
//
// Every insert method is the transactional loader of its category: one
// transaction per call, all rows or none, committed row count returned.
// Nothing enforces uniqueness on (gid, tid[, pid]); idempotency rests on the
// window calculator being consulted before every import.
type Repository interface {
	// LastGameID returns the highest gid present in the category's table,
	// false when the table is empty.
	LastGameID(ctx context.Context, category Category) (int64, bool, error)

	InsertTeamStats(ctx context.Context, rows []TeamStat) (int, error)
	InsertTeamStatsAdvanced(ctx context.Context, rows []TeamStatAdvanced) (int, error)
	InsertSkaterStats(ctx context.Context, rows []SkaterStat) (int, error)
	InsertSkaterStatsAdvanced(ctx context.Context, rows []SkaterStatAdvanced) (int, error)
	InsertGoalieStats(ctx context.Context, rows []GoalieStat) (int, error)
}
