package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
)

const tokenIssuer = "disaster-relief-api"

// InterfaceJWTService issues and verifies bearer tokens
type InterfaceJWTService interface {
	GenerateToken(userID uint, email string) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims are the claims carried by a bearer token
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTService signs tokens with HS256
type JWTService struct {
	secretKey []byte
	expiry    time.Duration
	now       func() time.Time
}

// NewJWTService creates a JWT service from the configured secret and expiry
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	return &JWTService{
		secretKey: []byte(cfg.JWTSecretKey),
		expiry:    cfg.JWTExpiry,
		now:       time.Now,
	}
}

// 1 GenerateToken signs a token for the user
func (s *JWTService) GenerateToken(userID uint, email string) (string, error) {
	now := s.now()
	claims := &JWTClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// 2 ParseToken verifies signature and expiry and returns the claims
func (s *JWTService) ParseToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
