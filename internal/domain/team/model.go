package team

import "fmt"

// Team is one NHL franchise. Rows are created once by the catalog seed and
// never modified afterwards.
type Team struct {
	ID   int64
	Name string
	Abbr string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.Abbr) != 3 {
		return fmt.Errorf("team abbreviation must be 3 letters, got %q", t.Abbr)
	}

	return nil
}
