package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pucklab/icesync/internal/domain/game"
)

// GameRepository keeps games in insertion order, which doubles as gid order.
// It needs the team repository to join home abbreviations into refs.
type GameRepository struct {
	mu    sync.RWMutex
	seq   int64
	games []game.Game
	teams *TeamRepository
}

func NewGameRepository(teams *TeamRepository) *GameRepository {
	return &GameRepository{teams: teams}
}

func (r *GameRepository) ListRefs(ctx context.Context) ([]game.Ref, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Ref, 0, len(r.games))
	for _, g := range r.games {
		home, _, err := r.teams.GetByID(ctx, g.HomeTeamID)
		if err != nil {
			return nil, err
		}
		out = append(out, game.Ref{
			GameID:     g.ID,
			Date:       g.Date,
			AwayTeamID: g.AwayTeamID,
			HomeTeamID: g.HomeTeamID,
			HomeAbbr:   home.Abbr,
		})
	}
	return out, nil
}

func (r *GameRepository) LastDate(_ context.Context) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.games) == 0 {
		return time.Time{}, false, nil
	}
	last := r.games[0].Date
	for _, g := range r.games[1:] {
		if g.Date.After(last) {
			last = g.Date
		}
	}
	return last, true, nil
}

func (r *GameRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.games), nil
}

func (r *GameRepository) OrdinalOf(_ context.Context, gameID int64) (int, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for idx, g := range r.games {
		if g.ID == gameID {
			return idx + 1, true, nil
		}
	}
	return 0, false, nil
}

func (r *GameRepository) InsertAll(_ context.Context, games []game.Game) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range games {
		r.seq++
		g.ID = r.seq
		r.games = append(r.games, g)
	}
	return len(games), nil
}

// All returns every stored game in gid order.
func (r *GameRepository) All() []game.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	out = append(out, r.games...)
	return out
}
