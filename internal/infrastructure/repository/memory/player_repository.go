package memory

import (
	"context"
	"sync"

	"github.com/pucklab/icesync/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	seq     int64
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{}
	for _, p := range players {
		r.seq++
		p.ID = r.seq
		r.players = append(r.players, p)
	}
	return r
}

func (r *PlayerRepository) ListByName(_ context.Context, name string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []player.Player
	for _, p := range r.players {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlayerRepository) Insert(_ context.Context, p player.Player) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	p.ID = r.seq
	r.players = append(r.players, p)
	return p.ID, nil
}

func (r *PlayerRepository) InsertAll(_ context.Context, players []player.Player) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range players {
		r.seq++
		p.ID = r.seq
		r.players = append(r.players, p)
	}
	return len(players), nil
}

// All returns every stored player in insertion order.
func (r *PlayerRepository) All() []player.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)
	return out
}
