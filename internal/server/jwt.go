package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hireloop/hireloop/internal/config"
	"github.com/hireloop/hireloop/internal/server/middleware"
	"github.com/hireloop/hireloop/internal/types"
)

// Claims are the JWT claims carried in issued tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and validates signed tokens.
type JWTService struct {
	cfg *config.JWTConfig
}

// NewJWTService creates a token service from configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg: cfg}
}

// IssueToken creates a signed token for the given user.
func (s *JWTService) IssueToken(userID uuid.UUID, role types.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID.String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.ExpirationHours) * time.Hour)),
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning the actor identity.
func (s *JWTService) ValidateToken(tokenString string) (middleware.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return middleware.Identity{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return middleware.Identity{}, fmt.Errorf("invalid token claims")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return middleware.Identity{}, fmt.Errorf("invalid user ID in token: %w", err)
	}

	role := types.Role(claims.Role)
	if !role.IsValid() {
		return middleware.Identity{}, fmt.Errorf("invalid role in token")
	}

	return middleware.Identity{UserID: userID, Role: role}, nil
}
