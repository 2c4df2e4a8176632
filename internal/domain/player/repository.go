package player

import "context"

// Repository describes player persistence needs from use cases.
//
// Insert commits in its own short transaction: resolving a name during a stat
// import may durably create a player even if the import later fails, which is
// an accepted trade-off (a re-run finds the player already resolved).
type Repository interface {
	ListByName(ctx context.Context, name string) ([]Player, error)
	Insert(ctx context.Context, p Player) (int64, error)
	InsertAll(ctx context.Context, players []Player) (int, error)
}
