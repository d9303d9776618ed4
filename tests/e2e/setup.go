//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"room-reservation/cmd/bootstrap"
	"room-reservation/cmd/bootstrap/components"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/infra/db"
	"room-reservation/internal/pkg/config"
	"room-reservation/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "campus"
	pgPassword = "campus-e2e"
	pgPort     = nat.Port("5432/tcp")
)

// One container per test binary; each suite gets its own database in it.
var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgStartErr  error
)

type pgEndpoint struct {
	Host string
	Port nat.Port
}

func (e pgEndpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.Host, e.Port.Port(), database)
}

// environment is everything a suite needs: the running app and direct DB access.
type environment struct {
	Pool      *pgxpool.Pool
	Router    *gin.Engine
	Config    config.Config
	RoomCache *middleware.ResponseCache
}

func newEnvironment(t *testing.T) environment {
	t.Helper()
	gin.SetMode(gin.TestMode)

	endpoint := postgresEndpoint(t)
	dbCfg := createSuiteDatabase(t, endpoint)

	pool, _, err := db.Connect(context.Background(), dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(pool.Close)

	require.NoError(t, applyMigrations(pool), "マイグレーションの適用に失敗")

	env := environment{Pool: pool}
	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config {
				cfg := config.NewTestConfig()
				cfg.DB = dbCfg
				return cfg
			},
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&env.Router, &env.Config, &env.RoomCache),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	slog.Info("E2E環境の準備が完了しました", "database", dbCfg.DBName, "host", endpoint.Host, "port", endpoint.Port.Port())
	return env
}

// postgresEndpoint starts the shared container on first use.
func postgresEndpoint(t *testing.T) pgEndpoint {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgStartErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
					"TZ":                "Asia/Jakarta",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// durability is irrelevant for throwaway data
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
					"-c", "log_statement=none",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return pgEndpoint{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "room-reservation-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgStartErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)

	return pgEndpoint{Host: host, Port: port}
}

// createSuiteDatabase creates a uniquely named database and drops it when the
// suite ends. CREATE DATABASE is retried because the template may still be
// in use by a concurrent suite.
func createSuiteDatabase(t *testing.T, endpoint pgEndpoint) config.DBConfig {
	t.Helper()
	name := "reservation_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, endpoint.dsn("postgres"))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		drop, err := pgxpool.New(ctx, endpoint.dsn("postgres"))
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer drop.Close()
		if _, err := drop.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     endpoint.Host,
		Port:     endpoint.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Jakarta",
		MaxConns: 10,
	}
}

// applyMigrations runs every file of the migrations directory in name order,
// the same set cmd/migrate hands to atlas.
func applyMigrations(pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		body, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// migrationsDir walks up from the package directory to the module root.
func migrationsDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		if filepath.Dir(dir) == dir {
			return "", fmt.Errorf("go.mod not found above %s", wd)
		}
	}
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Cache  *middleware.ResponseCache
}

func (s *SharedSuite) SetupSuite() {
	env := newEnvironment(s.T())
	s.DB = env.Pool
	s.Router = env.Router
	s.Config = env.Config
	s.Cache = env.RoomCache
}

// SetupSubTest gives every s.Run an empty database and a cold room cache.
// Fixture rows never pass through the room handlers, so the cache would not
// notice them otherwise.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データベースの初期化に失敗")
	s.Cache.Flush()
}
