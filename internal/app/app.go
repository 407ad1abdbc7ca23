package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/team-manager/internal/config"
	"github.com/riskibarqy/team-manager/internal/domain/lineup"
	"github.com/riskibarqy/team-manager/internal/domain/player"
	"github.com/riskibarqy/team-manager/internal/domain/poll"
	"github.com/riskibarqy/team-manager/internal/domain/season"
	"github.com/riskibarqy/team-manager/internal/domain/team"
	"github.com/riskibarqy/team-manager/internal/infrastructure/leaderboardcache"
	cacherepo "github.com/riskibarqy/team-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/team-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/team-manager/internal/interfaces/httpapi"
	"github.com/riskibarqy/team-manager/internal/platform/cache"
	idgen "github.com/riskibarqy/team-manager/internal/platform/id"
	"github.com/riskibarqy/team-manager/internal/platform/logging"
	"github.com/riskibarqy/team-manager/internal/usecase"
)

// App owns the HTTP server and the connections behind it.
type App struct {
	Server  *http.Server
	closers []func() error
}

type repositories struct {
	teams   team.Repository
	players player.Repository
	seasons season.Repository
	lineups lineup.Repository
	polls   poll.Repository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{}
	var checks []httpapi.HealthCheck

	repos, err := a.openRepositories(cfg, logger, &checks)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	var boardsCache usecase.LeaderboardCache
	if cfg.RedisURL != "" {
		redisCache, err := leaderboardcache.New(leaderboardcache.Config{
			URL:            cfg.RedisURL,
			TTL:            cfg.LeaderboardCacheTTL,
			KeyPrefix:      cfg.ServiceName + ":",
			Logger:         logger,
			CircuitBreaker: cfg.RedisCircuit,
		})
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("build leaderboard cache: %w", err)
		}
		a.closers = append(a.closers, redisCache.Close)
		checks = append(checks, httpapi.HealthCheck{Name: "redis", Check: redisCache.Ping})
		boardsCache = redisCache
		logger.Info("leaderboard cache enabled", "ttl", cfg.LeaderboardCacheTTL.String())
	}

	var statsStore *cache.Store
	if cfg.CacheEnabled {
		statsStore = cache.NewStore(cfg.CacheTTL)
	}

	statsSvc := usecase.NewStatsService(repos.teams, repos.players, repos.seasons, statsStore, boardsCache, logger)
	lineupSvc := usecase.NewLineupService(repos.teams, repos.players, repos.lineups, idgen.NewUUIDGenerator(), logger)
	overviewSvc := usecase.NewTeamOverviewService(statsSvc, cfg.OverviewMaxWorkers, logger)
	pollSvc := usecase.NewPollService(repos.teams, repos.polls)

	handler := httpapi.NewHandler(lineupSvc, statsSvc, overviewSvc, pollSvc, checks, logger)
	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return a, nil
}

func (a *App) openRepositories(cfg config.Config, logger *logging.Logger, checks *[]httpapi.HealthCheck) (repositories, error) {
	var repos repositories
	if cfg.UsesPostgres() {
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		a.closers = append(a.closers, db.Close)
		*checks = append(*checks, httpapi.HealthCheck{Name: "postgres", Check: db.PingContext})

		repos = repositories{
			teams:   postgres.NewTeamRepository(db),
			players: postgres.NewPlayerRepository(db),
			seasons: postgres.NewSeasonRepository(db),
			lineups: postgres.NewLineupRepository(db),
			polls:   postgres.NewPollRepository(db),
		}
		logger.Info("using postgres repositories", "db", dbNameFromURL(cfg.DBURL))
	} else {
		repos = repositories{
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			seasons: memory.NewSeasonRepository(memory.SeedSeasons()),
			lineups: memory.NewLineupRepository(),
			polls:   memory.NewPollRepository(memory.SeedPolls()),
		}
		logger.Warn("DB_URL is empty, serving in-memory seed data")
	}

	if !cfg.CacheEnabled {
		return repos, nil
	}
	store := cache.NewStore(cfg.CacheTTL)
	return repositories{
		teams:   cacherepo.NewTeamRepository(repos.teams, store),
		players: cacherepo.NewPlayerRepository(repos.players, store),
		seasons: cacherepo.NewSeasonRepository(repos.seasons, store),
		lineups: cacherepo.NewLineupRepository(repos.lineups, store),
		polls:   cacherepo.NewPollRepository(repos.polls, store),
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := DatabaseURL(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ReadTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// DatabaseURL is DB_URL with the driver flags from cfg applied.
func DatabaseURL(cfg config.Config) string {
	return normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
}

// Close releases connections in reverse order of creation.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
