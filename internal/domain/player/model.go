package player

import "fmt"

// Player is one roster entry. A skater who changes teams gets a new row for
// the new team; the old row keeps its team id so historical stats stay valid.
type Player struct {
	ID     int64
	Name   string
	Pos    string
	TeamID int64
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Pos == "" {
		return fmt.Errorf("player position is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}

	return nil
}
