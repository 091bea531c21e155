package api

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"svg-vault/internal/auth"
	"svg-vault/internal/cache"
	"svg-vault/internal/config"
	"svg-vault/internal/database"
	"svg-vault/internal/database/migrations"
	"svg-vault/internal/storage"
	"svg-vault/internal/websocket"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testSecret = "api_test_secret"

var (
	testServer  *Server
	testRouter  http.Handler
	testSender  *capturingSender
	testConfig  *config.Config
	testConnStr string
	testLogger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// capturingSender keeps the last code mailed to each address.
type capturingSender struct {
	mu    sync.Mutex
	codes map[string]string
}

func (s *capturingSender) SendCode(_ context.Context, to, code string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[to] = code
	return nil
}

func (s *capturingSender) last(to string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[to]
}

func newTestConfig(storagePath string) *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: testSecret, AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour},
		Storage: config.StorageConfig{
			Type:          "local",
			Path:          storagePath,
			PublicBaseURL: "http://localhost:8080/files",
			Buckets:       config.BucketsConfig{Avatars: "avatars", SVGs: "svg-files"},
		},
		Cache:  config.CacheConfig{TTL: time.Minute},
		Upload: config.UploadConfig{MaxSVGBytes: 5 << 20, MaxAvatarBytes: 5 << 20, Concurrency: 4},
		OTP:    config.OTPConfig{TTL: 10 * time.Minute, MaxAttempts: 5},
	}
}

func newTestProvider(store *database.Store, sender auth.CodeSender) *auth.Provider {
	provider, err := auth.NewProvider(store, sender, auth.Options{
		Secret:          testSecret,
		AccessTTL:       time.Hour,
		RefreshTTL:      24 * time.Hour,
		CodeTTL:         10 * time.Minute,
		MaxCodeAttempts: 5,
	}, testLogger)
	if err != nil {
		log.Fatalf("could not create provider: %s", err)
	}
	return provider
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_api_db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		log.Fatalf("Could not start postgres: %s", err)
	}

	testConnStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("Could not get connection string: %s", err)
	}

	pool, err := pgxpool.New(ctx, testConnStr)
	if err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	if err := migrations.Up(stdlib.OpenDBFromPool(pool)); err != nil {
		log.Fatalf("Could not apply migrations: %s", err)
	}

	tempDir, err := os.MkdirTemp("", "api-storage-test")
	if err != nil {
		log.Fatalf("Could not create temp dir: %s", err)
	}

	mr, err := miniredis.Run()
	if err != nil {
		log.Fatalf("Could not start miniredis: %s", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	testConfig = newTestConfig(tempDir)
	buckets, err := storage.Open(ctx, testConfig.Storage)
	if err != nil {
		log.Fatalf("Could not open storage: %s", err)
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	hub := websocket.NewHub(testLogger)
	go hub.Run(hubCtx)

	store := database.NewStore(pool, hub)
	testSender = &capturingSender{codes: map[string]string{}}

	testServer = NewServer(Deps{
		Config:   testConfig,
		Store:    store,
		Provider: newTestProvider(store, testSender),
		Buckets:  buckets,
		Cache:    cache.New(rdb, testConfig.Cache.TTL, hub, testLogger),
		Hub:      hub,
		Logger:   testLogger,
	})
	testRouter = testServer.Routes()

	code := m.Run()

	stopHub()
	rdb.Close()
	mr.Close()
	pool.Close()
	os.RemoveAll(tempDir)
	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("Could not terminate postgres: %s", err)
	}
	os.Exit(code)
}
