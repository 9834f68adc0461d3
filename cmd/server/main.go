package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jobboardhq/jobboard/internal/api"
	"github.com/jobboardhq/jobboard/internal/app"
	"github.com/jobboardhq/jobboard/internal/cache"
	"github.com/jobboardhq/jobboard/internal/database"
	"github.com/jobboardhq/jobboard/internal/scheduler"
	"github.com/jobboardhq/jobboard/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "", "additional directory to search for config.yaml")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(ctx context.Context, configPath string) error {
	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}

	cfg, err := app.LoadConfig(paths...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := app.ConfigureLogging(cfg.Server.LogLevel); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	log := logger.WithModule("server")

	db, err := database.Open(databaseConfig(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer closeDatabase(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	store, err := newCacheStore(cfg, db)
	if err != nil {
		return err
	}

	router, err := api.NewRouter(db, store, cfg)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	if cfg.Scheduler.Enabled {
		warmup, err := newWarmup(cfg)
		if err != nil {
			return err
		}
		warmup.Start()
		defer warmup.Stop()
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func databaseConfig(cfg *app.Config) database.Config {
	dbCfg := database.Config{
		Driver: cfg.Database.Driver,
		Path:   cfg.Database.Path,
		DSN:    cfg.Database.DSN,
	}

	switch strings.ToLower(cfg.Database.Driver) {
	case "postgres", "postgresql":
		dbCfg.Host = cfg.Database.Postgres.Host
		dbCfg.Port = cfg.Database.Postgres.Port
		dbCfg.Name = cfg.Database.Postgres.Database
		dbCfg.User = cfg.Database.Postgres.Username
		dbCfg.Password = cfg.Database.Postgres.Password
	case "mysql":
		dbCfg.Host = cfg.Database.MySQL.Host
		dbCfg.Port = cfg.Database.MySQL.Port
		dbCfg.Name = cfg.Database.MySQL.Database
		dbCfg.User = cfg.Database.MySQL.Username
		dbCfg.Password = cfg.Database.MySQL.Password
	}

	return dbCfg
}

func newCacheStore(cfg *app.Config, db *gorm.DB) (cache.Store, error) {
	switch strings.ToLower(cfg.Cache.Backend) {
	case "", "memory":
		return cache.NewMemory(), nil
	case "database":
		return cache.NewDatabaseStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Cache.Backend)
	}
}

func newWarmup(cfg *app.Config) (*scheduler.Warmup, error) {
	baseURL := cfg.Scheduler.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	}

	var opts []scheduler.Option
	if cfg.Scheduler.Spec != "" {
		opts = append(opts, scheduler.WithSpec(cfg.Scheduler.Spec))
	}
	if len(cfg.Scheduler.Targets) > 0 {
		opts = append(opts, scheduler.WithTargets(cfg.Scheduler.Targets))
	}

	warmup, err := scheduler.NewWarmup(baseURL, cfg.Scheduler.Timezone, opts...)
	if err != nil {
		return nil, fmt.Errorf("init warm-up scheduler: %w", err)
	}
	return warmup, nil
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
