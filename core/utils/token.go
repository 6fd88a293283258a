package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/config"
)

// TokenClaims carries the identity baked into every issued JWT. Role is
// either constants.RoleOrganizer or constants.RoleParticipant; ProjectID is
// set only for participant tokens, which are scoped to a single project.
type TokenClaims struct {
	UserID    uuid.UUID  `json:"user_id"`
	Role      string     `json:"role"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the given identity.
func GenerateToken(userID uuid.UUID, role string, projectID *uuid.UUID) (string, error) {
	cfg := config.Get()

	claims := &TokenClaims{
		UserID:    userID,
		Role:      role,
		ProjectID: projectID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.ExpiryHours) * time.Hour)),
			Issuer:    "calfind",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateAndParseToken verifies the signature and expiry of a raw token
// string and returns its claims.
func ValidateAndParseToken(raw string) (*TokenClaims, error) {
	cfg := config.Get()

	token, err := jwt.ParseWithClaims(raw, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
