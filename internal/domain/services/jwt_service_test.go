package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
)

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecretKey: "k", JWTExpiry: 7 * 24 * time.Hour}
	s := NewJWTService(cfg).(*JWTService)

	token, err := s.GenerateToken(12, "a@example.com")
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTRejects(t *testing.T) {
	cfg := &config.Config{JWTSecretKey: "k", JWTExpiry: time.Hour}
	s := NewJWTService(cfg).(*JWTService)

	// expired
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := s.GenerateToken(1, "a@example.com")
	require.NoError(t, err)
	s.now = time.Now
	_, err = s.ParseToken(expired)
	assert.Error(t, err)

	// wrong secret
	other := NewJWTService(&config.Config{JWTSecretKey: "other", JWTExpiry: time.Hour})
	forged, err := other.GenerateToken(1, "a@example.com")
	require.NoError(t, err)
	_, err = s.ParseToken(forged)
	assert.Error(t, err)

	// unsigned
	none := jwt.NewWithClaims(jwt.SigningMethodNone, &JWTClaims{UserID: 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.ParseToken(unsigned)
	assert.Error(t, err)
}
