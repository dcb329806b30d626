// Package token implements ports.TokenCodec using HMAC-signed JWTs.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/dataetica/dataetica-api/internal/domain/auth"
	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

const minSecretLen = 32

// sessionClaims is the JWT payload for a logged-in user.
type sessionClaims struct {
	UserID string          `json:"userId"`
	Email  string          `json:"email"`
	Role   domainauth.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTCodec signs and verifies session tokens with HS256.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewJWTCodec builds a codec. The secret must be at least 32 bytes.
func NewJWTCodec(secret []byte, ttl time.Duration, issuer string) (*JWTCodec, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("token: secret must be at least %d bytes", minSecretLen)
	}
	if ttl <= 0 {
		return nil, errors.New("token: ttl must be positive")
	}
	return &JWTCodec{secret: secret, ttl: ttl, issuer: issuer}, nil
}

// Issue signs a token for the user, valid from now for the configured TTL.
func (c *JWTCodec) Issue(user domainauth.AuthenticatedUser, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(c.ttl)
	claims := sessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token: sign: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses and validates a compact token. All failure modes (expired,
// malformed, wrong signature, wrong algorithm) collapse to an
// unauthenticated error so callers cannot distinguish them.
func (c *JWTCodec) Verify(tokenStr string, now time.Time) (domainauth.Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	token, err := parser.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return domainauth.Claims{}, apperrors.Unauthenticated("invalid or expired token", err)
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return domainauth.Claims{}, apperrors.Unauthenticated("invalid or expired token", jwt.ErrTokenInvalidClaims)
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return domainauth.Claims{}, apperrors.Unauthenticated("invalid or expired token", errors.New("missing claims"))
	}
	out := domainauth.Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
