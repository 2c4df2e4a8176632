package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pucklab/icesync/internal/domain/player"
	"github.com/pucklab/icesync/internal/domain/team"
	"github.com/pucklab/icesync/internal/platform/logging"
)

const rosterTableMatch = "Scoring Regular Season"

// captainMarker is appended to the captain's name on roster pages.
var captainMarker = regexp.MustCompile(`\s*\(\s*C\s*\)\s*`)

// ResolverService maps natural keys to surrogate ids: team abbreviations to
// team ids, player names to player ids. Unknown players are created on the
// fly from the team's roster page; a known player showing up on a new team
// gets a fresh row so historical stat rows keep the team they were earned
// with.
type ResolverService struct {
	teams   team.Repository
	players player.Repository
	fetcher TableFetcher
	log     *logging.Logger
}

func NewResolverService(teams team.Repository, players player.Repository, fetcher TableFetcher, log *logging.Logger) *ResolverService {
	return &ResolverService{teams: teams, players: players, fetcher: fetcher, log: log}
}

// ResolveTeam returns the team persisted under abbr. Teams are seeded up
// front, so a miss is a resolution failure, never a trigger to create one.
func (s *ResolverService) ResolveTeam(ctx context.Context, abbr string) (team.Team, error) {
	found, ok, err := s.teams.GetByAbbr(ctx, abbr)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by abbreviation: %w", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: no team with abbreviation %q", ErrResolution, abbr)
	}
	return found, nil
}

// ResolveOrCreatePlayer returns the id of name on teamID, creating the row
// from the team's roster page when the name is new or the player has moved
// to teamID since last seen. Creation commits on its own, outside any
// transaction the caller holds.
func (s *ResolverService) ResolveOrCreatePlayer(ctx context.Context, teamID int64, name string) (int64, error) {
	ctx, span := startSpan(ctx, "ResolverService.ResolveOrCreatePlayer")
	defer span.End()

	name = strings.TrimSpace(captainMarker.ReplaceAllString(name, " "))

	known, err := s.players.ListByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("list players by name: %w", err)
	}
	for _, p := range known {
		if p.TeamID == teamID {
			return p.ID, nil
		}
	}

	if len(known) > 0 {
		s.log.InfoContext(ctx, "player changed teams, creating a new record",
			"player", name, "teamID", teamID)
	}

	created, err := s.createFromRoster(ctx, teamID, name)
	if err != nil {
		return 0, err
	}
	return created, nil
}

// createFromRoster scrapes the team's roster page, locates name and inserts
// a new player row with the listed position.
func (s *ResolverService) createFromRoster(ctx context.Context, teamID int64, name string) (int64, error) {
	found, ok, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("get team by id: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("%w: no team with id %d", ErrResolution, teamID)
	}

	roster, err := s.fetchRoster(ctx, found)
	if err != nil {
		return 0, err
	}

	for _, entry := range roster {
		if entry.Name != name {
			continue
		}
		entry.TeamID = teamID
		id, err := s.players.Insert(ctx, entry)
		if err != nil {
			return 0, fmt.Errorf("insert player: %w", err)
		}
		s.log.InfoContext(ctx, "created player", "player", name, "team", found.Abbr)
		return id, nil
	}

	return 0, fmt.Errorf("%w: player %q not on the %s roster", ErrResolution, name, found.Abbr)
}

// fetchRoster pulls one team's scoring table and reduces it to name and
// position entries.
func (s *ResolverService) fetchRoster(ctx context.Context, t team.Team) ([]player.Player, error) {
	tables, err := s.fetcher.FetchTables(ctx, fmt.Sprintf("/teams/%s/", t.Abbr), rosterTableMatch)
	if err != nil {
		return nil, fmt.Errorf("fetch roster for %s: %w", t.Abbr, err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no roster table for %s", ErrDataShape, t.Abbr)
	}

	table := tables[0]
	header := table.CollapsedHeader()
	nameIdx, posIdx := -1, -1
	for idx, column := range header {
		switch column {
		case "Player":
			nameIdx = idx
		case "Pos":
			posIdx = idx
		}
	}
	if nameIdx < 0 || posIdx < 0 {
		return nil, fmt.Errorf("%w: roster header %v lacks Player/Pos columns", ErrDataShape, header)
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("%w: roster table for %s has no rows", ErrDataShape, t.Abbr)
	}

	// The last row aggregates the whole roster.
	body := table.Rows[:len(table.Rows)-1]
	roster := make([]player.Player, 0, len(body))
	for _, row := range body {
		if len(row) <= nameIdx || len(row) <= posIdx {
			continue
		}
		name := strings.TrimSpace(captainMarker.ReplaceAllString(row[nameIdx], " "))
		if name == "" {
			continue
		}
		roster = append(roster, player.Player{
			Name:   name,
			Pos:    strings.TrimSpace(row[posIdx]),
			TeamID: t.ID,
		})
	}

	return roster, nil
}

// ImportRosters seeds the player table from every team's roster page. Used
// once after the teams are in place; later arrivals are created lazily by
// ResolveOrCreatePlayer.
func (s *ResolverService) ImportRosters(ctx context.Context) (int, error) {
	ctx, span := startSpan(ctx, "ResolverService.ImportRosters")
	defer span.End()

	teams, err := s.teams.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		return 0, fmt.Errorf("%w: no teams seeded", ErrNotFound)
	}

	var players []player.Player
	for idx, t := range teams {
		s.log.InfoContext(ctx, "scraping roster",
			"team", t.Abbr, "progress", fmt.Sprintf("%d/%d", idx+1, len(teams)))
		roster, err := s.fetchRoster(ctx, t)
		if err != nil {
			return 0, err
		}
		players = append(players, roster...)
	}

	imported, err := s.players.InsertAll(ctx, players)
	if err != nil {
		return 0, fmt.Errorf("insert players: %w", err)
	}
	s.log.InfoContext(ctx, "imported players", "count", imported)
	return imported, nil
}
