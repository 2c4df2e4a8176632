package usecase

import (
	"fmt"

	"github.com/pucklab/icesync/internal/domain/stats"
)

// cellReader walks a normalized row and converts cells one by one, keeping
// the first conversion error. Callers check Err once at the end instead of
// after every field.
type cellReader struct {
	cells []string
	err   error
}

func (r *cellReader) Int(idx int) int {
	if r.err != nil {
		return 0
	}
	value, err := parseIntCell(r.cells[idx])
	if err != nil {
		r.err = err
	}
	return value
}

func (r *cellReader) Float(idx int) float64 {
	if r.err != nil {
		return 0
	}
	value, err := parseFloatCell(r.cells[idx])
	if err != nil {
		r.err = err
	}
	return value
}

func (r *cellReader) TOI(idx int) int {
	if r.err != nil {
		return 0
	}
	value, err := parseTOICell(r.cells[idx])
	if err != nil {
		r.err = err
	}
	return value
}

func (r *cellReader) Err() error {
	if r.err != nil {
		return fmt.Errorf("%w: %v", ErrDataShape, r.err)
	}
	return nil
}

func buildTeamStat(cells []string, teamID, gameID int64) (stats.TeamStat, error) {
	if len(cells) != teamBasicMetrics {
		return stats.TeamStat{}, fmt.Errorf("%w: team totals row has %d cells", ErrDataShape, len(cells))
	}

	r := cellReader{cells: cells}
	row := stats.TeamStat{
		TeamID:      teamID,
		GameID:      gameID,
		Goals:       r.Int(0),
		Assists:     r.Int(1),
		Points:      r.Int(2),
		PIM:         r.Int(3),
		EVGoals:     r.Int(4),
		PPGoals:     r.Int(5),
		SHGoals:     r.Int(6),
		Shots:       r.Int(7),
		ShootingPct: r.Float(8),
	}
	if err := r.Err(); err != nil {
		return stats.TeamStat{}, err
	}
	return row, nil
}

func buildTeamStatAdvanced(cells []string, teamID, gameID int64) (stats.TeamStatAdvanced, error) {
	if len(cells) != teamAdvancedMetrics {
		return stats.TeamStatAdvanced{}, fmt.Errorf("%w: team advanced totals row has %d cells", ErrDataShape, len(cells))
	}

	r := cellReader{cells: cells}
	row := stats.TeamStatAdvanced{
		TeamID:        teamID,
		GameID:        gameID,
		SATFor:        r.Int(0),
		SATAgainst:    r.Int(1),
		CorsiForPct:   r.Float(2),
		OZoneStartPct: r.Float(3),
		Hits:          r.Int(4),
		Blocks:        r.Int(5),
	}
	if err := r.Err(); err != nil {
		return stats.TeamStatAdvanced{}, err
	}
	return row, nil
}

func buildSkaterStat(cells []string, playerID, teamID, gameID int64) (stats.SkaterStat, error) {
	if len(cells) != len(skaterBasicHeader) {
		return stats.SkaterStat{}, fmt.Errorf("%w: skater row has %d cells", ErrDataShape, len(cells))
	}

	r := cellReader{cells: cells}
	row := stats.SkaterStat{
		PlayerID:    playerID,
		TeamID:      teamID,
		GameID:      gameID,
		Goals:       r.Int(1),
		Assists:     r.Int(2),
		Points:      r.Int(3),
		PlusMinus:   r.Int(4),
		PIM:         r.Int(5),
		EVGoals:     r.Int(6),
		PPGoals:     r.Int(7),
		SHGoals:     r.Int(8),
		GWGoals:     r.Int(9),
		EVAssists:   r.Int(10),
		PPAssists:   r.Int(11),
		SHAssists:   r.Int(12),
		Shots:       r.Int(13),
		ShootingPct: r.Float(14),
		Shifts:      r.Int(15),
		TOISeconds:  r.TOI(16),
	}
	if err := r.Err(); err != nil {
		return stats.SkaterStat{}, err
	}
	return row, nil
}

func buildSkaterStatAdvanced(cells []string, playerID, teamID, gameID int64) (stats.SkaterStatAdvanced, error) {
	if len(cells) != len(skaterAdvancedHeader) {
		return stats.SkaterStatAdvanced{}, fmt.Errorf("%w: skater advanced row has %d cells", ErrDataShape, len(cells))
	}

	r := cellReader{cells: cells}
	row := stats.SkaterStatAdvanced{
		PlayerID:      playerID,
		TeamID:        teamID,
		GameID:        gameID,
		ICF:           r.Int(1),
		SATFor:        r.Int(2),
		SATAgainst:    r.Int(3),
		CorsiForPct:   r.Float(4),
		CorsiRelPct:   r.Float(5),
		OZoneStarts:   r.Int(6),
		DZoneStarts:   r.Int(7),
		OZoneStartPct: r.Float(8),
		Hits:          r.Int(9),
		Blocks:        r.Int(10),
	}
	if err := r.Err(); err != nil {
		return stats.SkaterStatAdvanced{}, err
	}
	return row, nil
}

func buildGoalieStat(line goalieLine, playerID, teamID, gameID int64) (stats.GoalieStat, error) {
	if len(line.cells) != len(goalieBasicHeader) {
		return stats.GoalieStat{}, fmt.Errorf("%w: goalie row has %d cells", ErrDataShape, len(line.cells))
	}

	decision := line.cells[1]
	if decision == "" {
		decision = stats.DecisionNone
	}

	r := cellReader{cells: line.cells}
	row := stats.GoalieStat{
		PlayerID:     playerID,
		TeamID:       teamID,
		GameID:       gameID,
		Decision:     decision,
		GoalsAgainst: r.Int(2),
		ShotsAgainst: r.Int(3),
		Saves:        r.Int(4),
		SavePct:      r.Float(5),
		Shutouts:     r.Int(6),
		PIM:          r.Int(7),
		TOISeconds:   r.TOI(8),
		EmptyNet:     line.emptyNet,
		EmptyNetGA:   line.emptyNetGA,
	}
	if err := r.Err(); err != nil {
		return stats.GoalieStat{}, err
	}
	return row, nil
}
