package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/pucklab/icesync/external/hockeyref"
	"github.com/pucklab/icesync/internal/config"
	"github.com/pucklab/icesync/internal/infrastructure/repository/postgres"
	"github.com/pucklab/icesync/internal/platform/logging"
	"github.com/pucklab/icesync/internal/usecase"
)

// App wires repositories, the page client and the sync services onto one
// database handle.
type App struct {
	cfg config.Config
	log *logging.Logger
	db  *sqlx.DB

	Catalog  *usecase.CatalogService
	Resolver *usecase.ResolverService
	Importer *usecase.ImporterService
}

func New(cfg config.Config, log *logging.Logger) (*App, error) {
	db, err := otelsqlx.Connect("postgres", cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	client := hockeyref.NewClient(hockeyref.ClientConfig{
		BaseURL:         cfg.SourceBaseURL,
		Timeout:         cfg.FetchTimeout,
		MaxRetries:      cfg.FetchMaxRetries,
		RequestInterval: cfg.FetchDelay,
		Logger:          log,
	})

	teamRepo := postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	statRepo := postgres.NewStatRepository(db)

	resolver := usecase.NewResolverService(teamRepo, playerRepo, client, log)
	catalog := usecase.NewCatalogService(teamRepo, gameRepo, client, cfg.Season, log)
	importer := usecase.NewImporterService(gameRepo, statRepo, resolver, client, log)

	return &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		Catalog:  catalog,
		Resolver: resolver,
		Importer: importer,
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}
