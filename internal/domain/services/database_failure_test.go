package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestStoreFailuresBecomeDatabaseErrors(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()

	t.Run("query", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))

		_, err := services.NewShelterService(db, cfg).ListAll(ctx)
		require.Error(t, err)
		assert.True(t, code.Is(err, code.ErrDatabase))
		assert.Equal(t, 500, code.From(err).Status())
		assert.NotContains(t, code.From(err).Message, "connection reset")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("transaction", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		_, err := services.NewResourceService(db, cfg).CreateDistribution(ctx, services.CreateDistributionInput{
			ResourceID: 1, ShelterID: 1, QuantityDistributed: 1,
		})
		require.Error(t, err)
		assert.True(t, code.Is(err, code.ErrDatabase))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
