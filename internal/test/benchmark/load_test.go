package benchmark

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/A-Basit02/Disaster-Management-App/internal/app/routes"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/test/testdb"
)

type server struct {
	url string
	db  *gorm.DB
}

func newServer(t testing.TB) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	pool, cfg := testdb.New(t)
	cfg.RateLimitRPS = 0
	srv := httptest.NewServer(routes.SetupRouter(pool.DB, cfg, nil))
	t.Cleanup(srv.Close)
	return &server{url: srv.URL + "/api", db: pool.DB}
}

// post sends one JSON request and decodes the data field into out
func (s *server) post(t testing.TB, path, token string, body, out interface{}) {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, s.url+path, bytes.NewReader(buf))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Less(t, resp.StatusCode, 300)

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
}

func (s *server) token(t testing.TB, email string, role models.RoleName) string {
	t.Helper()
	var r models.Role
	require.NoError(t, s.db.Where("role_name = ?", role).Take(&r).Error)
	var session struct {
		Token string `json:"token"`
	}
	s.post(t, "/auth/register", "", map[string]interface{}{
		"name": "Load " + email, "email": email, "password": "secret123", "role_id": r.ID,
	}, &session)
	return session.Token
}

func TestConcurrentDistributionsNeverOversell(t *testing.T) {
	s := newServer(t)
	ngo := s.token(t, "ngo@example.com", models.RoleNGO)

	var shelter struct {
		ID uint `json:"shelter_id"`
	}
	s.post(t, "/shelters", ngo, map[string]interface{}{"shelter_name": "Depot", "capacity": 100}, &shelter)
	var resource struct {
		ID uint `json:"resource_id"`
	}
	s.post(t, "/resources", ngo, map[string]interface{}{"resource_type": "Water", "resource_quantity": 20}, &resource)

	lt := NewLoadTest(s.url, 8, 50, ngo)
	res, err := lt.Run(context.Background(), http.MethodPost, "/resources/distribute", map[string]interface{}{
		"resource_id": resource.ID, "shelter_id": shelter.ID, "quantity_distributed": 1,
	})
	require.NoError(t, err)
	res.Log(zaptest.NewLogger(t))

	assert.Empty(t, res.Errors)
	assert.Equal(t, 20, res.SuccessCount)
	assert.Equal(t, 20, res.StatusCodes[http.StatusCreated])
	assert.Equal(t, 30, res.StatusCodes[http.StatusBadRequest])

	var stored models.Resource
	require.NoError(t, s.db.Take(&stored, resource.ID).Error)
	assert.Zero(t, stored.Quantity)
	assert.Equal(t, models.AvailabilityDistributed, stored.AvailabilityStatus)

	var rows int64
	require.NoError(t, s.db.Model(&models.ResourceDistribution{}).Count(&rows).Error)
	assert.EqualValues(t, 20, rows)
}

func TestConcurrentReads(t *testing.T) {
	s := newServer(t)
	citizen := s.token(t, "citizen@example.com", models.RoleCitizen)

	res, err := NewLoadTest(s.url, 4, 40, citizen).Run(context.Background(), http.MethodGet, "/shelters/available", nil)
	require.NoError(t, err)
	assert.Equal(t, 40, res.SuccessCount)
	assert.Zero(t, res.FailureCount)
	assert.Positive(t, res.RequestsPerSec)
	assert.LessOrEqual(t, res.MinTime, res.MaxTime)
}

func BenchmarkAvailableShelters(b *testing.B) {
	s := newServer(b)
	citizen := s.token(b, "bench@example.com", models.RoleCitizen)
	lt := NewLoadTest(s.url, 1, 1, citizen)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lt.Run(context.Background(), http.MethodGet, "/shelters/available", nil); err != nil {
			b.Fatal(err)
		}
	}
}
