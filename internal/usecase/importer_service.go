package usecase

import (
	"context"
	"fmt"

	"github.com/pucklab/icesync/external/hockeyref"
	"github.com/pucklab/icesync/internal/domain/game"
	"github.com/pucklab/icesync/internal/domain/stats"
	"github.com/pucklab/icesync/internal/platform/logging"
)

// Boxscore pages render their tables at fixed positions.
const (
	tableAwaySkaters  = 2
	tableAwayGoalies  = 3
	tableHomeSkaters  = 4
	tableHomeGoalies  = 5
	tableAwayAdvanced = 6
	tableHomeAdvanced = 7
	boxscoreMinTables = 8
)

// ImporterService runs one incremental pass per stat category: work out the
// window of games the category has not seen, fetch each game's boxscore,
// normalize the relevant tables and append the typed rows in a single batch.
// Any failure aborts the whole pass before the batch insert, so a category
// either advances by whole games or not at all.
type ImporterService struct {
	games    game.Repository
	stats    stats.Repository
	resolver *ResolverService
	fetcher  TableFetcher
	log      *logging.Logger
}

func NewImporterService(games game.Repository, stats stats.Repository, resolver *ResolverService, fetcher TableFetcher, log *logging.Logger) *ImporterService {
	return &ImporterService{games: games, stats: stats, resolver: resolver, fetcher: fetcher, log: log}
}

// Import synchronizes one category. numGames bounds the pass to that many
// games past the category's high-water mark; zero or negative means catch up
// completely. Returns the number of rows appended.
func (s *ImporterService) Import(ctx context.Context, category stats.Category, numGames int) (int, error) {
	ctx, span := startSpan(ctx, "ImporterService.Import")
	defer span.End()

	start, end, err := s.window(ctx, category, numGames)
	if err != nil {
		return 0, err
	}
	if start == end {
		s.log.InfoContext(ctx, "category is up to date", "category", category)
		return 0, nil
	}

	refs, err := s.games.ListRefs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list game refs: %w", err)
	}
	if end > len(refs) {
		return 0, fmt.Errorf("%w: window [%d,%d) exceeds %d persisted games", ErrNotFound, start, end, len(refs))
	}
	window := refs[start:end]
	s.log.InfoContext(ctx, "importing category window",
		"category", category, "games", len(window), "start", start, "end", end)

	switch category {
	case stats.CategoryTeamBasic:
		return s.importTeamStats(ctx, window)
	case stats.CategoryTeamAdvanced:
		return s.importTeamStatsAdvanced(ctx, window)
	case stats.CategorySkaterBasic:
		return s.importSkaterStats(ctx, window)
	case stats.CategorySkaterAdvanced:
		return s.importSkaterStatsAdvanced(ctx, window)
	case stats.CategoryGoalieBasic:
		return s.importGoalieStats(ctx, window)
	default:
		return 0, fmt.Errorf("%w: unknown stat category %q", ErrInvalidInput, category)
	}
}

// ImportAll runs every category in declaration order with the same bound.
func (s *ImporterService) ImportAll(ctx context.Context, numGames int) (int, error) {
	total := 0
	for _, category := range stats.AllCategories {
		imported, err := s.Import(ctx, category, numGames)
		if err != nil {
			return total, fmt.Errorf("import %s: %w", category, err)
		}
		total += imported
	}
	return total, nil
}

// window translates the category's high-water gid into the half-open ordinal
// range of games still to import.
func (s *ImporterService) window(ctx context.Context, category stats.Category, requested int) (int, int, error) {
	lastOrdinal := 0
	lastGID, ok, err := s.stats.LastGameID(ctx, category)
	if err != nil {
		return 0, 0, fmt.Errorf("last imported game for %s: %w", category, err)
	}
	if ok {
		rank, found, err := s.games.OrdinalOf(ctx, lastGID)
		if err != nil {
			return 0, 0, fmt.Errorf("ordinal of game %d: %w", lastGID, err)
		}
		if !found {
			return 0, 0, fmt.Errorf("%w: game %d referenced by %s is not persisted", ErrNotFound, lastGID, category)
		}
		lastOrdinal = rank
	}

	total, err := s.games.Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count games: %w", err)
	}

	start, end := ComputeWindow(lastOrdinal, total, requested)
	return start, end, nil
}

// fetchBoxscore pulls one game's page and asserts the fixed table layout is
// present.
func (s *ImporterService) fetchBoxscore(ctx context.Context, ref game.Ref) ([]hockeyref.Table, error) {
	tables, err := s.fetcher.FetchTables(ctx, ref.BoxscorePath(), "")
	if err != nil {
		return nil, fmt.Errorf("fetch boxscore for game %d: %w", ref.GameID, err)
	}
	if len(tables) < boxscoreMinTables {
		return nil, fmt.Errorf("%w: boxscore for game %d has %d tables", ErrDataShape, ref.GameID, len(tables))
	}
	return tables, nil
}

func (s *ImporterService) importTeamStats(ctx context.Context, refs []game.Ref) (int, error) {
	var rows []stats.TeamStat
	for idx, ref := range refs {
		s.logProgress(ctx, stats.CategoryTeamBasic, idx, len(refs), ref)
		tables, err := s.fetchBoxscore(ctx, ref)
		if err != nil {
			return 0, err
		}

		for _, side := range sides(ref) {
			cells, err := normalizeTeamTotals(tables[side.skaterTable], teamBasicMetrics)
			if err != nil {
				return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
			}
			row, err := buildTeamStat(cells, side.teamID, ref.GameID)
			if err != nil {
				return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
			}
			rows = append(rows, row)
		}
	}

	imported, err := s.stats.InsertTeamStats(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("insert team stats: %w", err)
	}
	return imported, nil
}

func (s *ImporterService) importTeamStatsAdvanced(ctx context.Context, refs []game.Ref) (int, error) {
	var rows []stats.TeamStatAdvanced
	for idx, ref := range refs {
		s.logProgress(ctx, stats.CategoryTeamAdvanced, idx, len(refs), ref)
		tables, err := s.fetchBoxscore(ctx, ref)
		if err != nil {
			return 0, err
		}

		for _, side := range sides(ref) {
			cells, err := normalizeTeamTotals(tables[side.advancedTable], teamAdvancedMetrics)
			if err != nil {
				return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
			}
			row, err := buildTeamStatAdvanced(cells, side.teamID, ref.GameID)
			if err != nil {
				return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
			}
			rows = append(rows, row)
		}
	}

	imported, err := s.stats.InsertTeamStatsAdvanced(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("insert advanced team stats: %w", err)
	}
	return imported, nil
}

func (s *ImporterService) importSkaterStats(ctx context.Context, refs []game.Ref) (int, error) {
	var rows []stats.SkaterStat
	for idx, ref := range refs {
		s.logProgress(ctx, stats.CategorySkaterBasic, idx, len(refs), ref)
		tables, err := s.fetchBoxscore(ctx, ref)
		if err != nil {
			return 0, err
		}

		for _, side := range sides(ref) {
			cleaned, err := normalizePlayerTable(tables[side.skaterTable], skaterBasicHeader)
			if err != nil {
				return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
			}
			for _, cells := range cleaned.rows {
				playerID, err := s.resolver.ResolveOrCreatePlayer(ctx, side.teamID, cells[0])
				if err != nil {
					return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
				}
				row, err := buildSkaterStat(cells, playerID, side.teamID, ref.GameID)
				if err != nil {
					return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
				}
				rows = append(rows, row)
			}
		}
	}

	imported, err := s.stats.InsertSkaterStats(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("insert skater stats: %w", err)
	}
	return imported, nil
}

func (s *ImporterService) importSkaterStatsAdvanced(ctx context.Context, refs []game.Ref) (int, error) {
	var rows []stats.SkaterStatAdvanced
	for idx, ref := range refs {
		s.logProgress(ctx, stats.CategorySkaterAdvanced, idx, len(refs), ref)
		tables, err := s.fetchBoxscore(ctx, ref)
		if err != nil {
			return 0, err
		}

		for _, side := range sides(ref) {
			cleaned, err := normalizePlayerTable(tables[side.advancedTable], skaterAdvancedHeader)
			if err != nil {
				return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
			}
			for _, cells := range cleaned.rows {
				playerID, err := s.resolver.ResolveOrCreatePlayer(ctx, side.teamID, cells[0])
				if err != nil {
					return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
				}
				row, err := buildSkaterStatAdvanced(cells, playerID, side.teamID, ref.GameID)
				if err != nil {
					return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
				}
				rows = append(rows, row)
			}
		}
	}

	imported, err := s.stats.InsertSkaterStatsAdvanced(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("insert advanced skater stats: %w", err)
	}
	return imported, nil
}

func (s *ImporterService) importGoalieStats(ctx context.Context, refs []game.Ref) (int, error) {
	var rows []stats.GoalieStat
	for idx, ref := range refs {
		s.logProgress(ctx, stats.CategoryGoalieBasic, idx, len(refs), ref)
		tables, err := s.fetchBoxscore(ctx, ref)
		if err != nil {
			return 0, err
		}

		for _, side := range sides(ref) {
			lines, err := normalizeGoalieTable(tables[side.goalieTable])
			if err != nil {
				return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
			}
			for _, line := range lines {
				playerID, err := s.resolver.ResolveOrCreatePlayer(ctx, side.teamID, line.cells[0])
				if err != nil {
					return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
				}
				row, err := buildGoalieStat(line, playerID, side.teamID, ref.GameID)
				if err != nil {
					return 0, fmt.Errorf("game %d: %w", ref.GameID, err)
				}
				rows = append(rows, row)
			}
		}
	}

	imported, err := s.stats.InsertGoalieStats(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("insert goalie stats: %w", err)
	}
	return imported, nil
}

func (s *ImporterService) logProgress(ctx context.Context, category stats.Category, idx, total int, ref game.Ref) {
	s.log.InfoContext(ctx, "scraping game stats",
		"category", category,
		"progress", fmt.Sprintf("%d/%d", idx+1, total),
		"game", ref.GameID,
		"path", ref.BoxscorePath())
}

// side pairs one team of a game with its table positions on the boxscore
// page. Away rows are emitted before home rows.
type side struct {
	teamID        int64
	skaterTable   int
	goalieTable   int
	advancedTable int
}

func sides(ref game.Ref) [2]side {
	return [2]side{
		{teamID: ref.AwayTeamID, skaterTable: tableAwaySkaters, goalieTable: tableAwayGoalies, advancedTable: tableAwayAdvanced},
		{teamID: ref.HomeTeamID, skaterTable: tableHomeSkaters, goalieTable: tableHomeGoalies, advancedTable: tableHomeAdvanced},
	}
}
