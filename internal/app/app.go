package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/neocamp/partidas-futebol/internal/config"
	"github.com/neocamp/partidas-futebol/internal/infrastructure/repository/postgres"
	"github.com/neocamp/partidas-futebol/internal/interfaces/httpapi"
	"github.com/neocamp/partidas-futebol/internal/platform/logging"
	"github.com/neocamp/partidas-futebol/internal/usecase"
)

// App owns the HTTP server and the resources it depends on.
type App struct {
	Server *http.Server

	db     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := connectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SeedOnStart {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	clubRepo := postgres.NewClubRepository(db)
	stadiumRepo := postgres.NewStadiumRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	clubSvc := usecase.NewClubService(clubRepo, logger)
	stadiumSvc := usecase.NewStadiumService(stadiumRepo, logger)
	matchSvc := usecase.NewMatchService(clubRepo, stadiumRepo, matchRepo, logger)
	matchQuerySvc := usecase.NewMatchQueryService(clubRepo, stadiumRepo, matchRepo, logger)

	handler := httpapi.NewHandler(clubSvc, stadiumSvc, matchSvc, matchQuerySvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		db.Close()
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{Server: server, db: db, logger: logger}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

func connectDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.ConnectContext(ctx, "postgres", cfg.DBURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
