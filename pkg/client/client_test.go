package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Basit02/Disaster-Management-App/internal/app/routes"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/test/testdb"
	"github.com/A-Basit02/Disaster-Management-App/pkg/client"
)

type env struct {
	url   string
	roles map[models.RoleName]uint
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pool, cfg := testdb.New(t)
	cfg.RateLimitRPS = 0
	srv := httptest.NewServer(routes.SetupRouter(pool.DB, cfg, nil))
	t.Cleanup(srv.Close)

	var roles []models.Role
	require.NoError(t, pool.DB.Find(&roles).Error)
	ids := make(map[models.RoleName]uint, len(roles))
	for _, r := range roles {
		ids[r.Name] = r.ID
	}
	return &env{url: srv.URL, roles: ids}
}

// signup returns a client holding the token of a new account with role
func (e *env) signup(t *testing.T, email string, role models.RoleName) (*client.Client, uint) {
	t.Helper()
	c := client.New(e.url + "/")
	id := e.roles[role]
	s, err := c.Auth.Register(context.Background(), client.Register{
		Name: "User " + email, Email: email, Password: "secret123", RoleID: &id,
	})
	require.NoError(t, err)
	require.Equal(t, s.Token, c.Token())
	return c, s.User.ID
}

func asAPIError(t *testing.T, err error) *client.APIError {
	t.Helper()
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	return apiErr
}

func TestClientAuth(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signup(t, "amina@example.com", models.RoleCitizen)

	c := client.New(e.url)
	_, err := c.Auth.Profile(ctx)
	apiErr := asAPIError(t, err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Access token required", apiErr.Message)

	_, err = c.Auth.Login(ctx, "amina@example.com", "nope")
	assert.Equal(t, http.StatusUnauthorized, asAPIError(t, err).Status)
	assert.Empty(t, c.Token())

	s, err := c.Auth.Login(ctx, "amina@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, []string{"Citizen"}, s.User.Roles)

	me, err := c.Auth.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "amina@example.com", me.Email)

	preset := client.New(e.url, client.WithToken(s.Token), client.WithHTTPClient(&http.Client{}))
	_, err = preset.Auth.Profile(ctx)
	assert.NoError(t, err)
}

func TestClientReliefWorkflow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	citizen, _ := e.signup(t, "citizen@example.com", models.RoleCitizen)
	worker, workerID := e.signup(t, "worker@example.com", models.RoleRescueWorker)
	ngo, _ := e.signup(t, "ngo@example.com", models.RoleNGO)
	gov, _ := e.signup(t, "gov@example.com", models.RoleGovernment)

	report, err := citizen.Emergencies.Create(ctx, client.NewReport{DisasterType: "Flood", LocationDesc: "Block C"})
	require.NoError(t, err)
	assert.Equal(t, "Pending", report.Status)

	_, err = citizen.Emergencies.List(ctx)
	assert.Equal(t, http.StatusForbidden, asAPIError(t, err).Status)

	task, err := gov.Tasks.Create(ctx, client.NewTask{ReportID: report.ID, TaskDescription: "Evacuate"})
	require.NoError(t, err)
	assert.Equal(t, "Assigned", task.TaskStatus)
	assert.Nil(t, task.AssignedWorkerID)
	unassigned, err := citizen.Emergencies.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", unassigned.Status, "a task without a worker leaves the report alone")

	task, err = gov.Tasks.Assign(ctx, task.ID, workerID)
	require.NoError(t, err)
	assert.Equal(t, "Assigned", task.TaskStatus)

	mine, err := worker.Tasks.Mine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	remarks := "All safe"
	_, err = worker.Tasks.UpdateStatus(ctx, task.ID, "Completed", &remarks)
	require.NoError(t, err)
	got, err := citizen.Emergencies.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "Resolved", got.Status)

	stats, err := gov.Emergencies.Analytics(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.EqualValues(t, 1, stats[0].Resolved)

	shelter, err := ngo.Shelters.Create(ctx, client.NewShelter{ShelterName: "School", Capacity: 4})
	require.NoError(t, err)
	_, err = ngo.Shelters.UpdateOccupancy(ctx, shelter.ID, 5)
	apiErr := asAPIError(t, err)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Occupancy cannot exceed capacity", apiErr.Message)
	_, err = ngo.Shelters.UpdateOccupancy(ctx, shelter.ID, 2)
	require.NoError(t, err)
	ranked, err := ngo.Shelters.ByOccupancy(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 50.0, ranked[0].OccupancyPercentage)

	resource, err := ngo.Resources.Create(ctx, client.NewResource{Type: "Blankets", Quantity: 3})
	require.NoError(t, err)
	dist, err := ngo.Resources.Distribute(ctx, client.NewDistribution{
		ResourceID: resource.ID, ShelterID: shelter.ID, QuantityDistributed: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Requested", dist.Status)

	stock, err := citizen.Resources.List(ctx)
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Zero(t, stock[0].Quantity)
	assert.Equal(t, "Distributed", stock[0].AvailabilityStatus)

	dispatched := "2026-05-01T09:00:00Z"
	dist, err = ngo.Resources.UpdateDistribution(ctx, dist.ID, client.DistributionUpdate{Status: "Dispatched", DispatchedAt: &dispatched})
	require.NoError(t, err)
	require.NotNil(t, dist.DispatchedAt)

	n, err := gov.Notifications.Create(ctx, "Curfew", "Stay indoors")
	require.NoError(t, err)
	active, err := citizen.Notifications.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	require.NoError(t, gov.Notifications.Delete(ctx, n.ID))
	active, err = citizen.Notifications.Active(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}
