package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/ioscahub/matchhub/internal/config"
	"github.com/ioscahub/matchhub/internal/domain/matchdata"
	cacherepo "github.com/ioscahub/matchhub/internal/infrastructure/repository/cache"
	"github.com/ioscahub/matchhub/internal/infrastructure/repository/memory"
	"github.com/ioscahub/matchhub/internal/infrastructure/repository/postgres"
	"github.com/ioscahub/matchhub/internal/interfaces/httpapi"
	basecache "github.com/ioscahub/matchhub/internal/platform/cache"
	"github.com/ioscahub/matchhub/internal/platform/logging"
	"github.com/ioscahub/matchhub/internal/usecase"
)

// Application holds the wired HTTP server plus the services cmd/api needs
// outside of the request path, such as the startup warm pass.
type Application struct {
	Server *http.Server
	Warm   *usecase.WarmService
}

// New wires repositories, services, and the HTTP router into a ready-to-run
// application. When no database URL is configured it falls back to a seeded
// in-memory match store, which is enough for local development and the demo
// deployment.
func New(cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}

	matchRepo, err := newMatchRepository(cfg, logger)
	if err != nil {
		return nil, err
	}

	matchViewSvc := usecase.NewMatchViewService(matchRepo, logger)
	ingestSvc := usecase.NewIngestService(matchRepo, logger)
	warmSvc := usecase.NewWarmService(matchRepo, cfg.WarmWorkerCount, logger)

	handler := httpapi.NewHandler(matchViewSvc, ingestSvc, warmSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &Application{Server: server, Warm: warmSvc}, nil
}

func newMatchRepository(cfg config.Config, logger *logging.Logger) (matchdata.Repository, error) {
	if cfg.DBURL == "" {
		logger.Info("DATABASE_URL not set, using seeded in-memory match store")
		return memory.NewMatchRepository(memory.SeedMatches()), nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("connected to postgres", "db_name", dbNameFromURL(cfg.DBURL))

	var repo matchdata.Repository = postgres.NewMatchRepository(db, cfg.GuildID)
	if cfg.CacheEnabled {
		repo = cacherepo.NewMatchRepository(repo, basecache.NewStore(cfg.CacheTTL))
		logger.Info("match read cache enabled", "ttl", cfg.CacheTTL.String())
	}
	return repo, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if name := dbNameFromURL(cfg.DBURL); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	return otelsqlx.Connect("postgres", cfg.DBURL, opts...)
}
