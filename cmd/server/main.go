// @title           SVG Vault API
// @version         1.0
// @description     Per-user SVG library: projects, uploads, previews, forks and usage analytics.
// @host            localhost:8080
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"svg-vault/internal/api"
	"svg-vault/internal/auth"
	"svg-vault/internal/cache"
	"svg-vault/internal/config"
	"svg-vault/internal/database"
	"svg-vault/internal/database/migrations"
	"svg-vault/internal/mail"
	"svg-vault/internal/storage"
	"svg-vault/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	_ "svg-vault/docs"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger every command uses.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

var rootCmd = &cobra.Command{
	Use:          "svg-vault",
	Short:        "SVG Vault API server",
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pool, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		db := stdlib.OpenDBFromPool(pool)
		defer db.Close()
		if err := migrations.CheckStatus(db); err != nil {
			if errors.Is(err, migrations.ErrNeedsMigration) {
				return fmt.Errorf("%w: run `svg-vault migrate up` first", err)
			}
			return fmt.Errorf("checking schema: %w", err)
		}
		logger.Info("connected to database")

		buckets, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		logger.Info("storage ready", "type", cfg.Storage.Type, "avatars", cfg.Storage.Buckets.Avatars, "svgs", cfg.Storage.Buckets.SVGs)

		var rdb *redis.Client
		if cfg.Redis.Addr != "" {
			rdb = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			defer rdb.Close()
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, queries will not be cached until it is back", "addr", cfg.Redis.Addr, "error", err)
			}
		} else {
			logger.Info("redis not configured, query cache disabled")
		}

		sender, err := mail.New(cfg.Mail, logger)
		if err != nil {
			return fmt.Errorf("creating mail sender: %w", err)
		}

		hub := websocket.NewHub(logger)
		go hub.Run(ctx)

		store := database.NewStore(pool, hub)
		provider, err := auth.NewProvider(store, sender, auth.Options{
			Secret:          cfg.JWT.Secret,
			AccessTTL:       cfg.JWT.AccessTTL,
			RefreshTTL:      cfg.JWT.RefreshTTL,
			CodeTTL:         cfg.OTP.TTL,
			MaxCodeAttempts: cfg.OTP.MaxAttempts,
		}, logger)
		if err != nil {
			return fmt.Errorf("creating auth provider: %w", err)
		}

		server := api.NewServer(api.Deps{
			Config:   cfg,
			Store:    store,
			Provider: provider,
			Buckets:  buckets,
			Cache:    cache.New(rdb, cfg.Cache.TTL, hub, logger),
			Hub:      hub,
			Logger:   logger,
		})

		httpServer := &http.Server{
			Addr:         cfg.HTTP.Addr,
			Handler:      server.Routes(),
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("starting server", "addr", cfg.HTTP.Addr)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving http: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	},
}

// migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		pool, err := connect(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		db := stdlib.OpenDBFromPool(pool)
		defer db.Close()
		if err := migrations.Up(db); err != nil {
			return err
		}

		logger.Info("database schema is up to date")
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the schema matches this binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}

		pool, err := connect(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		db := stdlib.OpenDBFromPool(pool)
		defer db.Close()
		if err := migrations.CheckStatus(db); err != nil {
			return err
		}

		fmt.Println("Database schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}
