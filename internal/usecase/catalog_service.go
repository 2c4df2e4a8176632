package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pucklab/icesync/internal/domain/game"
	"github.com/pucklab/icesync/internal/domain/team"
	"github.com/pucklab/icesync/internal/platform/logging"
)

const scheduleDateLayout = "2006-01-02"

// Schedule table layout: date, visitor, visitor goals, home, home goals and
// the end-of-game marker column.
const (
	scheduleColDate = iota
	scheduleColVisitor
	scheduleColAwayGoals
	scheduleColHome
	scheduleColHomeGoals
	scheduleColEnd
	scheduleMinColumns
)

// CatalogService maintains the two catalogs everything else hangs off: the
// static team table and the append-only game table. Games are imported from
// the season schedule page, played games only, strictly after the latest
// date already persisted.
type CatalogService struct {
	teams   team.Repository
	games   game.Repository
	fetcher TableFetcher
	season  int
	log     *logging.Logger
}

func NewCatalogService(teams team.Repository, games game.Repository, fetcher TableFetcher, season int, log *logging.Logger) *CatalogService {
	return &CatalogService{teams: teams, games: games, fetcher: fetcher, season: season, log: log}
}

// ImportTeams seeds the team table from the static franchise list. Seeding
// twice is a no-op.
func (s *CatalogService) ImportTeams(ctx context.Context) (int, error) {
	ctx, span := startSpan(ctx, "CatalogService.ImportTeams")
	defer span.End()

	existing, err := s.teams.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list teams: %w", err)
	}
	if len(existing) > 0 {
		s.log.InfoContext(ctx, "teams already seeded", "count", len(existing))
		return 0, nil
	}

	imported, err := s.teams.InsertAll(ctx, team.All())
	if err != nil {
		return 0, fmt.Errorf("insert teams: %w", err)
	}
	s.log.InfoContext(ctx, "imported teams", "count", imported)
	return imported, nil
}

// ImportGames scrapes the season schedule and appends every played game
// newer than the last persisted date, in schedule order. All rows commit in
// one transaction.
func (s *CatalogService) ImportGames(ctx context.Context) (int, error) {
	ctx, span := startSpan(ctx, "CatalogService.ImportGames")
	defer span.End()

	tables, err := s.fetcher.FetchTables(ctx, s.schedulePath(), "")
	if err != nil {
		return 0, fmt.Errorf("fetch schedule: %w", err)
	}
	if len(tables) == 0 {
		return 0, fmt.Errorf("%w: schedule page has no tables", ErrDataShape)
	}

	schedule := tables[0]
	header := schedule.CollapsedHeader()
	if len(header) == 0 || header[0] != "Date" {
		return 0, fmt.Errorf("%w: schedule header %v does not start with Date", ErrDataShape, header)
	}

	lastDate, havePrior, err := s.games.LastDate(ctx)
	if err != nil {
		return 0, fmt.Errorf("last game date: %w", err)
	}

	var games []game.Game
	for _, row := range schedule.Rows {
		if len(row) < scheduleMinColumns {
			return 0, fmt.Errorf("%w: schedule row %v has %d columns", ErrDataShape, row, len(row))
		}
		// An empty home score means the game has not been played yet.
		if strings.TrimSpace(row[scheduleColHomeGoals]) == "" {
			continue
		}

		g, err := s.parseScheduleRow(ctx, row)
		if err != nil {
			return 0, err
		}
		if havePrior && !g.Date.After(lastDate) {
			continue
		}
		games = append(games, g)
	}

	if len(games) == 0 {
		s.log.InfoContext(ctx, "no new games to import")
		return 0, nil
	}

	imported, err := s.games.InsertAll(ctx, games)
	if err != nil {
		return 0, fmt.Errorf("insert games: %w", err)
	}
	s.log.InfoContext(ctx, "imported games", "count", imported)
	return imported, nil
}

// GameRefs returns every persisted game in gid order with the home team
// abbreviation joined in, ready for per-game page fetches.
func (s *CatalogService) GameRefs(ctx context.Context) ([]game.Ref, error) {
	refs, err := s.games.ListRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list game refs: %w", err)
	}
	return refs, nil
}

func (s *CatalogService) parseScheduleRow(ctx context.Context, row []string) (game.Game, error) {
	date, err := time.Parse(scheduleDateLayout, strings.TrimSpace(row[scheduleColDate]))
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: schedule date %q: %v", ErrDataShape, row[scheduleColDate], err)
	}

	away, err := s.teamByName(ctx, row[scheduleColVisitor])
	if err != nil {
		return game.Game{}, err
	}
	home, err := s.teamByName(ctx, row[scheduleColHome])
	if err != nil {
		return game.Game{}, err
	}

	awayGoals, err := parseIntCell(row[scheduleColAwayGoals])
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrDataShape, err)
	}
	homeGoals, err := parseIntCell(row[scheduleColHomeGoals])
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrDataShape, err)
	}

	end, err := parseEndType(row[scheduleColEnd])
	if err != nil {
		return game.Game{}, err
	}

	g := game.Game{
		Date:       date,
		AwayTeamID: away.ID,
		AwayGoals:  awayGoals,
		HomeTeamID: home.ID,
		HomeGoals:  homeGoals,
		End:        end,
	}
	if err := g.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return g, nil
}

// teamByName resolves a full franchise name as rendered on the schedule page
// to its persisted row.
func (s *CatalogService) teamByName(ctx context.Context, name string) (team.Team, error) {
	name = strings.TrimSpace(name)
	abbr, ok := team.Abbreviations[name]
	if !ok {
		return team.Team{}, fmt.Errorf("%w: unknown team name %q", ErrResolution, name)
	}
	found, ok, err := s.teams.GetByAbbr(ctx, abbr)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by abbreviation: %w", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team %q not seeded", ErrResolution, abbr)
	}
	return found, nil
}

func (s *CatalogService) schedulePath() string {
	return fmt.Sprintf("/leagues/NHL_%d_games.html", s.season)
}

// parseEndType maps the schedule's end-of-game marker: blank for regulation,
// OT for overtime, SO for a shootout.
func parseEndType(cell string) (game.EndType, error) {
	switch strings.TrimSpace(cell) {
	case "":
		return game.EndRegulation, nil
	case "OT":
		return game.EndOvertime, nil
	case "SO":
		return game.EndShootout, nil
	default:
		return "", fmt.Errorf("%w: unknown end-of-game marker %q", ErrDataShape, cell)
	}
}
