package game

import (
	"context"
	"time"
)

// Repository describes game persistence needs from use cases.
type Repository interface {
	// ListRefs returns every persisted game in gid order with the home team
	// abbreviation joined in.
	ListRefs(ctx context.Context) ([]Ref, error)
	// LastDate returns the most recent persisted game date, false when the
	// table is empty.
	LastDate(ctx context.Context) (time.Time, bool, error)
	// Count returns the number of persisted games.
	Count(ctx context.Context) (int, error)
	// OrdinalOf converts a gid into its 1-based rank within the gid-ordered
	// sequence, false when the gid is not persisted.
	OrdinalOf(ctx context.Context, gameID int64) (int, bool, error)
	// InsertAll appends games inside one transaction.
	InsertAll(ctx context.Context, games []Game) (int, error)
}
