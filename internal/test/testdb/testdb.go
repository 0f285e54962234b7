// Package testdb opens migrated and seeded in-memory databases for tests.
package testdb

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/database"
)

var seq atomic.Int64

// Config returns a sqlite configuration with a database name unique to t
func Config(t testing.TB) *config.Config {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.Default()
	cfg.EnvType = "SERVER"
	cfg.DBDriver = config.DriverSQLite
	cfg.DBPath = fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))
	cfg.JWTSecretKey = "test-secret"
	cfg.LogDir = ""
	return cfg
}

// New opens a fresh database, migrates it and seeds the default roles.
// The pool is closed when the test ends.
func New(t testing.TB) (*database.ConnectionPool, *config.Config) {
	t.Helper()

	cfg := Config(t)
	pool, err := database.NewConnectionPool(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })

	require.NoError(t, database.Migrate(pool.DB, config.MigrationAuto))
	require.NoError(t, database.SeedRoles(context.Background(), pool.DB))
	return pool, cfg
}
