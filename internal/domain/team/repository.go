package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByAbbr(ctx context.Context, abbr string) (Team, bool, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	InsertAll(ctx context.Context, teams []Team) (int, error)
}
