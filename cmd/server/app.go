package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/netip"

	apiMiddleware "github.com/phrazzld/podcast-api/internal/api/middleware"
	"github.com/phrazzld/podcast-api/internal/config"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
	"github.com/phrazzld/podcast-api/internal/platform/sqlstore"
	"github.com/phrazzld/podcast-api/internal/service"
	"github.com/phrazzld/podcast-api/internal/service/auth"
	"github.com/phrazzld/podcast-api/internal/store"
)

// runtimeDeps are the process-level dependencies every command needs.
type runtimeDeps struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
}

// bootstrap loads configuration, sets up logging and opens the database.
func bootstrap(ctx context.Context, configFile string) (*runtimeDeps, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	db, err := sqlstore.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &runtimeDeps{config: cfg, logger: log, db: db}, nil
}

func (d *runtimeDeps) close() {
	if err := d.db.Close(); err != nil {
		d.logger.Error("error closing database connection", "error", err)
	}
}

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	trustedProxies []netip.Prefix

	userStore    store.UserStore
	podcastStore store.PodcastStore
	episodeStore store.EpisodeStore

	tokenService   auth.TokenService
	accountService service.AccountService
	catalogService service.CatalogService
}

// newApplication wires stores and services on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.trustedProxies, err = apiMiddleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("failed to parse trusted proxies: %w", err)
	}

	app.tokenService, err = auth.NewTokenService(auth.Options{PrivateKey: cfg.Auth.PrivateKey})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	app.userStore = sqlstore.NewUserStore(db, logger)
	app.podcastStore = sqlstore.NewPodcastStore(db, logger)
	app.episodeStore = sqlstore.NewEpisodeStore(db, logger)

	app.accountService = service.NewAccountService(
		app.userStore,
		app.tokenService,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		auth.NewBcryptVerifier(),
		logger,
	)
	app.catalogService = service.NewCatalogService(app.podcastStore, app.episodeStore, logger)

	logger.Info("application initialized", "bcrypt_cost", cfg.Auth.BcryptCost)
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
