package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/internal/test/testdb"
)

type fixture struct {
	ctx  context.Context
	db   *gorm.DB
	cfg  *config.Config
	auth services.InterfaceAuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	pool, cfg := testdb.New(t)
	return &fixture{
		ctx:  context.Background(),
		db:   pool.DB,
		cfg:  cfg,
		auth: services.NewAuthService(pool.DB, cfg, services.NewJWTService(cfg)),
	}
}

func (f *fixture) roleID(t *testing.T, name models.RoleName) uint {
	t.Helper()
	var role models.Role
	require.NoError(t, f.db.Where("role_name = ?", name).Take(&role).Error)
	return role.ID
}

// user registers an account holding the given role
func (f *fixture) user(t *testing.T, email string, role models.RoleName) models.UserProfile {
	t.Helper()
	id := f.roleID(t, role)
	res, err := f.auth.Register(f.ctx, services.RegisterInput{
		Name:     "User " + email,
		Email:    email,
		Password: "secret123",
		RoleID:   &id,
	})
	require.NoError(t, err)
	return res.User
}

func (f *fixture) report(t *testing.T, userID uint, disasterType string) *models.EmergencyReport {
	t.Helper()
	r, err := services.NewEmergencyService(f.db, f.cfg).Create(f.ctx, userID, services.CreateReportInput{
		DisasterType: disasterType,
		LocationDesc: "Main street",
	})
	require.NoError(t, err)
	return r
}

func (f *fixture) reportStatus(t *testing.T, id uint) models.ReportStatus {
	t.Helper()
	var r models.EmergencyReport
	require.NoError(t, f.db.Take(&r, id).Error)
	return r.Status
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }
func boolPtr(b bool) *bool    { return &b }
