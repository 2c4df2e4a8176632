package memory

import (
	"context"
	"sync"

	"github.com/pucklab/icesync/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	seq   int64
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{}
	for _, t := range teams {
		r.seq++
		t.ID = r.seq
		r.teams = append(r.teams, t)
	}
	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)
	return out, nil
}

func (r *TeamRepository) GetByAbbr(_ context.Context, abbr string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teams {
		if t.Abbr == abbr {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teams {
		if t.ID == id {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) InsertAll(_ context.Context, teams []team.Team) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range teams {
		r.seq++
		t.ID = r.seq
		r.teams = append(r.teams, t)
	}
	return len(teams), nil
}
