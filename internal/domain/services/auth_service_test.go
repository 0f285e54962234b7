package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
)

func TestRegister_DefaultsToCitizen(t *testing.T) {
	f := newFixture(t)

	res, err := f.auth.Register(f.ctx, services.RegisterInput{
		Name:        "  Amina  ",
		Email:       "  Amina@Example.COM ",
		Password:    "secret123",
		PhoneNumber: strPtr("0300"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "amina@example.com", res.User.Email)
	assert.Equal(t, "Amina", res.User.Name)
	assert.Equal(t, []string{"Citizen"}, res.User.Roles)

	var stored models.User
	require.NoError(t, f.db.Take(&stored, res.User.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	f := newFixture(t)
	f.user(t, "dup@example.com", models.RoleCitizen)

	_, err := f.auth.Register(f.ctx, services.RegisterInput{
		Name: "Other", Email: "DUP@example.com", Password: "x",
	})
	require.Error(t, err)
	assert.True(t, code.Is(err, code.ErrUserAlreadyExist))
	assert.Equal(t, 409, code.From(err).Status())

	var count int64
	require.NoError(t, f.db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "no second row")
}

func TestRegister_RoleResolution(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(f.ctx, services.RegisterInput{
		Name: "A", Email: "a@example.com", Password: "x", RoleID: uintPtr(999),
	})
	require.Error(t, err)
	assert.Equal(t, "Role with ID 999 does not exist", code.From(err).Message)
	assert.Equal(t, 400, code.From(err).Status())

	// without Citizen the lowest id role is used
	require.NoError(t, f.db.Where("role_name = ?", models.RoleCitizen).Delete(&models.Role{}).Error)
	res, err := f.auth.Register(f.ctx, services.RegisterInput{Name: "B", Email: "b@example.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rescue Worker"}, res.User.Roles)

	// with no roles at all registration is a server error
	require.NoError(t, f.db.Exec("DELETE FROM user_roles").Error)
	require.NoError(t, f.db.Exec("DELETE FROM roles").Error)
	_, err = f.auth.Register(f.ctx, services.RegisterInput{Name: "C", Email: "c@example.com", Password: "x"})
	require.Error(t, err)
	assert.True(t, code.Is(err, code.ErrRolesMissing))
	assert.Equal(t, 500, code.From(err).Status())
}

func TestRegister_RequiresFields(t *testing.T) {
	f := newFixture(t)
	_, err := f.auth.Register(f.ctx, services.RegisterInput{Name: "A", Email: " ", Password: "x"})
	assert.True(t, code.Is(err, code.ErrValidation))
}

func TestLogin_IdenticalFailures(t *testing.T) {
	f := newFixture(t)
	f.user(t, "worker@example.com", models.RoleRescueWorker)

	_, wrongPass := f.auth.Login(f.ctx, "worker@example.com", "nope")
	_, unknown := f.auth.Login(f.ctx, "ghost@example.com", "secret123")
	require.Error(t, wrongPass)
	require.Error(t, unknown)
	assert.Equal(t, code.From(wrongPass).Message, code.From(unknown).Message)
	assert.Equal(t, code.From(wrongPass).Code, code.From(unknown).Code)
	assert.Equal(t, 401, code.From(unknown).Status())

	res, err := f.auth.Login(f.ctx, "WORKER@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rescue Worker"}, res.User.Roles)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "gov@example.com", models.RoleGovernment)

	res, err := f.auth.Login(f.ctx, "gov@example.com", "secret123")
	require.NoError(t, err)

	user, err := f.auth.Authenticate(f.ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, user.ID)
	assert.True(t, user.RoleSet().Can(models.CapManageNotifications))

	_, err = f.auth.Authenticate(f.ctx, "not-a-token")
	assert.True(t, code.Is(err, code.ErrTokenInvalid))

	// a deleted user's token no longer authenticates
	require.NoError(t, f.db.Exec("DELETE FROM user_roles WHERE user_id = ?", u.ID).Error)
	require.NoError(t, f.db.Delete(&models.User{}, u.ID).Error)
	_, err = f.auth.Authenticate(f.ctx, res.Token)
	assert.True(t, code.Is(err, code.ErrTokenInvalid))
	assert.Equal(t, 403, code.From(err).Status())
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "ngo@example.com", models.RoleNGO)

	p, err := f.auth.GetProfile(f.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"NGO"}, p.Roles)

	_, err = f.auth.GetProfile(f.ctx, 4242)
	assert.True(t, code.Is(err, code.ErrUserNotFound))
}
