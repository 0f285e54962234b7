package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/database"
	"github.com/A-Basit02/Disaster-Management-App/internal/test/testdb"
)

func TestSeedRolesIsIdempotent(t *testing.T) {
	pool, _ := testdb.New(t)

	require.NoError(t, database.SeedRoles(context.Background(), pool.DB))
	require.NoError(t, database.SeedRoles(context.Background(), pool.DB))

	var roles []models.Role
	require.NoError(t, pool.DB.Order("id").Find(&roles).Error)
	require.Len(t, roles, len(models.DefaultRoles))
	for i, r := range roles {
		assert.Equal(t, models.DefaultRoles[i].Name, r.Name)
		assert.NotEmpty(t, r.Description)
	}
}

func TestMigrateDropRecreatesSchema(t *testing.T) {
	pool, _ := testdb.New(t)
	require.NoError(t, pool.DB.Create(&models.Shelter{ShelterName: "Gym", Capacity: 10, IsActive: true}).Error)

	require.NoError(t, database.Migrate(pool.DB, config.MigrationDrop))

	var count int64
	require.NoError(t, pool.DB.Model(&models.Shelter{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.True(t, pool.DB.Migrator().HasTable("user_roles"))

	assert.Error(t, database.Migrate(pool.DB, "wipe"))
}

func TestConnectionPoolHealth(t *testing.T) {
	pool, _ := testdb.New(t)

	assert.NoError(t, pool.HealthCheck(context.Background()))
	stats, err := pool.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats["max_open_connections"])

	err = pool.WithTransaction(context.Background(), func(tx *gorm.DB) error {
		return tx.Create(&models.Notification{Title: "t", Message: "m", IsActive: true}).Error
	})
	require.NoError(t, err)
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := database.NewConnectionPool(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

// TestMySQLIntegration runs only when TEST_MYSQL_HOST names a reachable server.
func TestMySQLIntegration(t *testing.T) {
	if os.Getenv("TEST_MYSQL_HOST") == "" {
		t.Skip("TEST_MYSQL_HOST not set")
	}

	cfg := config.Default()
	cfg.DBDriver = config.DriverMySQL
	cfg.DBHost = os.Getenv("TEST_MYSQL_HOST")
	cfg.DBPort = os.Getenv("TEST_MYSQL_PORT")
	cfg.DBUser = os.Getenv("TEST_MYSQL_USER")
	cfg.DBPassword = os.Getenv("TEST_MYSQL_PASSWORD")
	cfg.DBName = os.Getenv("TEST_MYSQL_DATABASE")
	if cfg.DBPort == "" {
		cfg.DBPort = "3306"
	}

	pool, err := database.NewConnectionPool(cfg)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, database.Migrate(pool.DB, config.MigrationAuto))
	require.NoError(t, database.SeedRoles(context.Background(), pool.DB))
	assert.NoError(t, pool.HealthCheck(context.Background()))
}
