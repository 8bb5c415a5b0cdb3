package app

import (
	"context"
	"net/http"
	"time"

	"protein-tracker/internal/config"
	"protein-tracker/internal/db"
	consumptiondomain "protein-tracker/internal/domain/consumption"
	fooddomain "protein-tracker/internal/domain/food"
	goaldomain "protein-tracker/internal/domain/goal"
	mealsdomain "protein-tracker/internal/domain/meals"
	progressdomain "protein-tracker/internal/domain/progress"
	sessiondomain "protein-tracker/internal/domain/session"
	"protein-tracker/internal/repository/inmemory"
	consumptionrepo "protein-tracker/internal/repository/postgres/consumption"
	foodrepo "protein-tracker/internal/repository/postgres/food"
	goalrepo "protein-tracker/internal/repository/postgres/goal"
	mealsrepo "protein-tracker/internal/repository/postgres/meals"
	redisrepo "protein-tracker/internal/repository/redis"
	"protein-tracker/internal/transport/httpserver"
	"protein-tracker/internal/transport/httpserver/handler"
	"protein-tracker/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const sessionSweepInterval = 10 * time.Minute

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	redis      *goredis.Client
	stop       context.CancelFunc
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	a := &App{cfg: cfg, db: dbConn, log: log}

	if cfg.DB.AutoMigrate {
		log.Info("app: running migrations")
		if err := db.Migrate(dbConn, log); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	log.Info("app: initializing session store")
	store, err := a.sessionStore()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	log.Info("app: initializing router")
	router := NewHandler(cfg, dbConn, store, log)

	log.Info("app: initializing http server")
	a.httpServer = httpserver.New(cfg, router)

	return a, nil
}

// NewHandler wires repositories, services and handlers into the HTTP router.
func NewHandler(cfg config.Config, dbConn *gorm.DB, store sessiondomain.Store, log logger.Logger) http.Handler {
	foods := fooddomain.NewService(foodrepo.NewPostgres(dbConn))
	goals := goaldomain.NewService(goalrepo.NewPostgres(dbConn)).WithCache(inmemory.NewGoalCache(), cfg.GoalCacheTTL)
	consumed := consumptionrepo.NewPostgres(dbConn)

	handlers := handler.New(handler.Services{
		Foods:       foods,
		Meals:       mealsdomain.NewService(mealsrepo.NewPostgres(dbConn), foods),
		Consumption: consumptiondomain.NewService(consumed),
		Goals:       goals,
		Progress:    progressdomain.NewService(consumed, goals),
	}, cfg.DefaultTimezone, log)

	sessions := sessiondomain.NewService(store, cfg.Session.TTL)
	return httpserver.NewRouter(cfg, handlers, sessions, log)
}

func (a *App) sessionStore() (sessiondomain.Store, error) {
	if a.cfg.Redis.URL != "" {
		client, err := redisrepo.NewClient(a.cfg.Redis, a.log)
		if err != nil {
			return nil, err
		}
		a.redis = client
		return redisrepo.NewSessionStore(client, a.cfg.Redis.KeyPrefix), nil
	}

	a.log.Warn("app: REDIS_URL not set, sessions are kept in memory")
	store := inmemory.NewSessionStore()
	ctx, cancel := context.WithCancel(context.Background())
	a.stop = cancel
	go sweepSessions(ctx, store, a.log)
	return store, nil
}

func sweepSessions(ctx context.Context, store *inmemory.SessionStore, log logger.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(); removed > 0 {
				log.Debug("session: swept expired", "count", removed)
			}
		}
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.stop != nil {
		a.stop()
	}

	var firstErr error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			firstErr = err
		}
	}
	if a.db != nil {
		sqlDB, err := a.db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
