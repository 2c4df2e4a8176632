package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pucklab/icesync/internal/domain/game"
	"github.com/pucklab/icesync/internal/domain/player"
	"github.com/pucklab/icesync/internal/domain/stats"
	"github.com/pucklab/icesync/internal/domain/team"
)

func TestTeamRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepository([]team.Team{
		{Name: "Buffalo Sabres", Abbr: "BUF"},
		{Name: "Toronto Maple Leafs", Abbr: "TOR"},
	})

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, int64(1), listed[0].ID)

	found, ok, err := repo.GetByAbbr(ctx, "TOR")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), found.ID)

	_, ok, err = repo.GetByID(ctx, 99)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPlayerRepositoryAssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository(nil)

	id, err := repo.Insert(ctx, player.Player{Name: "Tage Thompson", Pos: "C", TeamID: 1})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	// Same name on another team is a separate record.
	id, err = repo.Insert(ctx, player.Player{Name: "Tage Thompson", Pos: "C", TeamID: 2})
	require.NoError(t, err)
	require.Equal(t, int64(2), id)

	matches, err := repo.ListByName(ctx, "Tage Thompson")
	require.NoError(t, err)
	require.Len(t, matches, 2)
}

func TestGameRepositoryOrdinals(t *testing.T) {
	ctx := context.Background()
	teams := NewTeamRepository([]team.Team{
		{Name: "Buffalo Sabres", Abbr: "BUF"},
		{Name: "Toronto Maple Leafs", Abbr: "TOR"},
	})
	repo := NewGameRepository(teams)

	date := time.Date(2023, 10, 11, 0, 0, 0, 0, time.UTC)
	_, err := repo.InsertAll(ctx, []game.Game{
		{Date: date, AwayTeamID: 1, HomeTeamID: 2, End: game.EndRegulation},
		{Date: date.AddDate(0, 0, 1), AwayTeamID: 2, HomeTeamID: 1, End: game.EndOvertime},
	})
	require.NoError(t, err)

	ordinal, ok, err := repo.OrdinalOf(ctx, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, ordinal)

	_, ok, err = repo.OrdinalOf(ctx, 42)
	require.NoError(t, err)
	require.False(t, ok)

	last, ok, err := repo.LastDate(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, date.AddDate(0, 0, 1), last)

	refs, err := repo.ListRefs(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	require.Equal(t, "TOR", refs[0].HomeAbbr)
	require.Equal(t, "BUF", refs[1].HomeAbbr)
}

func TestStatRepositoryLastGameID(t *testing.T) {
	ctx := context.Background()
	repo := NewStatRepository()

	_, ok, err := repo.LastGameID(ctx, stats.CategoryTeamBasic)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = repo.InsertTeamStats(ctx, []stats.TeamStat{
		{TeamID: 1, GameID: 3},
		{TeamID: 2, GameID: 3},
		{TeamID: 1, GameID: 7},
	})
	require.NoError(t, err)

	last, ok, err := repo.LastGameID(ctx, stats.CategoryTeamBasic)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(7), last)

	// Categories do not bleed into each other.
	_, ok, err = repo.LastGameID(ctx, stats.CategoryGoalieBasic)
	require.NoError(t, err)
	require.False(t, ok)
}
