// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"hextechhub/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// devFallbackSecret keeps dev setups running without JWT_SECRET.
// Anything but dev must set a real 32+ byte secret.
const devFallbackSecret = "dev-default-secret-please-change-12345678901234567890"

const minKeyLen = 32

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// CustomClaims is the JWT payload: subject is the user email, Role rides
// along as a claim.
type CustomClaims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// signingKey resolves JWT_SECRET. An unset secret falls back to the dev
// default and short secrets get zero-padded to the HMAC minimum; both are
// deliberately weak and documented as such.
func signingKey() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = devFallbackSecret
	}
	for len(s) < minKeyLen {
		s += "0"
	}
	return []byte(s)
}

// AuthenticateUser checks a plaintext password against the stored hash.
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

// IssueAccessToken signs an HS256 JWT for the user, valid for ttl.
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	now := timeNow()
	claims := CustomClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// VerifyAccessToken checks signature and expiry and returns the claims.
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
