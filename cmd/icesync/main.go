package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pucklab/icesync/internal/app"
	"github.com/pucklab/icesync/internal/config"
	"github.com/pucklab/icesync/internal/domain/stats"
	"github.com/pucklab/icesync/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		application *app.App
		logger      *logging.Logger
	)

	root := &cobra.Command{
		Use:           "icesync",
		Short:         "Incremental NHL statistics synchronization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger = logging.NewJSON(cfg.LogLevel)
			application, err = app.New(cfg, logger)
			if err != nil {
				return err
			}
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if logger != nil {
				_ = logger.Sync()
			}
			if application != nil {
				return application.Close()
			}
			return nil
		},
	}

	root.AddCommand(
		newTeamsCmd(&application),
		newGamesCmd(&application),
		newRostersCmd(&application),
		newStatsCmd(&application),
	)

	return root
}

func newTeamsCmd(application **app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Seed the team table with the league's franchises",
		RunE: func(cmd *cobra.Command, _ []string) error {
			imported, err := (*application).Catalog.ImportTeams(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("imported %d teams\n", imported)
			return nil
		},
	}
}

func newGamesCmd(application **app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "Append newly played games from the season schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			imported, err := (*application).Catalog.ImportGames(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("imported %d games\n", imported)
			return nil
		},
	}
}

func newRostersCmd(application **app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "rosters",
		Short: "Seed the player table from every team's roster page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			imported, err := (*application).Resolver.ImportRosters(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("imported %d players\n", imported)
			return nil
		},
	}
}

func newStatsCmd(application **app.App) *cobra.Command {
	var numGames int

	cmd := &cobra.Command{
		Use:   "stats <team|team-advanced|skater|skater-advanced|goalie|all>",
		Short: "Import per-game stats for one category, or all of them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "all" {
				imported, err := (*application).Importer.ImportAll(cmd.Context(), numGames)
				if err != nil {
					return err
				}
				cmd.Printf("imported %d stat rows\n", imported)
				return nil
			}

			category, err := stats.ParseCategory(args[0])
			if err != nil {
				return err
			}
			imported, err := (*application).Importer.Import(cmd.Context(), category, numGames)
			if err != nil {
				return err
			}
			cmd.Printf("imported %d %s rows\n", imported, category)
			return nil
		},
	}

	cmd.Flags().IntVarP(&numGames, "games", "n", 0, "bound the run to this many games past the category's last import (0 = catch up)")
	return cmd
}
