package memory

import (
	"context"
	"sync"

	"github.com/pucklab/icesync/internal/domain/stats"
)

// StatRepository holds all five stat categories. FailNext arms a one-shot
// insert failure so service tests can exercise batch rollback behavior.
type StatRepository struct {
	mu sync.RWMutex

	TeamStats           []stats.TeamStat
	TeamStatsAdvanced   []stats.TeamStatAdvanced
	SkaterStats         []stats.SkaterStat
	SkaterStatsAdvanced []stats.SkaterStatAdvanced
	GoalieStats         []stats.GoalieStat

	nextErr error
}

func NewStatRepository() *StatRepository {
	return &StatRepository{}
}

// FailNext makes the next insert call return err without storing anything.
func (r *StatRepository) FailNext(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextErr = err
}

func (r *StatRepository) takeErr() error {
	err := r.nextErr
	r.nextErr = nil
	return err
}

func (r *StatRepository) LastGameID(_ context.Context, category stats.Category) (int64, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last int64
	switch category {
	case stats.CategoryTeamBasic:
		for _, row := range r.TeamStats {
			if row.GameID > last {
				last = row.GameID
			}
		}
	case stats.CategoryTeamAdvanced:
		for _, row := range r.TeamStatsAdvanced {
			if row.GameID > last {
				last = row.GameID
			}
		}
	case stats.CategorySkaterBasic:
		for _, row := range r.SkaterStats {
			if row.GameID > last {
				last = row.GameID
			}
		}
	case stats.CategorySkaterAdvanced:
		for _, row := range r.SkaterStatsAdvanced {
			if row.GameID > last {
				last = row.GameID
			}
		}
	case stats.CategoryGoalieBasic:
		for _, row := range r.GoalieStats {
			if row.GameID > last {
				last = row.GameID
			}
		}
	}
	return last, last > 0, nil
}

func (r *StatRepository) InsertTeamStats(_ context.Context, rows []stats.TeamStat) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.takeErr(); err != nil {
		return 0, err
	}
	r.TeamStats = append(r.TeamStats, rows...)
	return len(rows), nil
}

func (r *StatRepository) InsertTeamStatsAdvanced(_ context.Context, rows []stats.TeamStatAdvanced) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.takeErr(); err != nil {
		return 0, err
	}
	r.TeamStatsAdvanced = append(r.TeamStatsAdvanced, rows...)
	return len(rows), nil
}

func (r *StatRepository) InsertSkaterStats(_ context.Context, rows []stats.SkaterStat) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.takeErr(); err != nil {
		return 0, err
	}
	r.SkaterStats = append(r.SkaterStats, rows...)
	return len(rows), nil
}

func (r *StatRepository) InsertSkaterStatsAdvanced(_ context.Context, rows []stats.SkaterStatAdvanced) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.takeErr(); err != nil {
		return 0, err
	}
	r.SkaterStatsAdvanced = append(r.SkaterStatsAdvanced, rows...)
	return len(rows), nil
}

func (r *StatRepository) InsertGoalieStats(_ context.Context, rows []stats.GoalieStat) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.takeErr(); err != nil {
		return 0, err
	}
	r.GoalieStats = append(r.GoalieStats, rows...)
	return len(rows), nil
}
