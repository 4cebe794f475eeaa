package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims carries the authenticated user's opaque public identifier.
// The public id, not the database id, is what goes over the wire.
type TokenClaims struct {
	PublicID string `json:"public_id"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret        []byte
	expiryInSecs  int64
	signingMethod jwt.SigningMethod
}

func NewTokenService(secret string, expiryInSecs int64) *TokenService {
	return &TokenService{
		secret:        []byte(secret),
		expiryInSecs:  expiryInSecs,
		signingMethod: jwt.SigningMethodHS256,
	}
}

// IssueToken creates a signed, time-limited bearer token for the given
// public id.
func (ts *TokenService) IssueToken(publicID uuid.UUID) (string, error) {
	now := time.Now()

	claims := &TokenClaims{
		PublicID: publicID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(
				now.Add(time.Duration(ts.expiryInSecs) * time.Second),
			),
		},
	}

	tokenStr, err := jwt.NewWithClaims(
		ts.signingMethod,
		claims,
	).SignedString(ts.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenStr, nil
}

// ValidateToken parses and verifies a bearer token. A false return with a
// nil error means the token decoded but is not valid anymore.
func (ts *TokenService) ValidateToken(tokenStr string) (isValid bool, claims *TokenClaims, err error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&TokenClaims{},
		func(t *jwt.Token) (any, error) {
			if t.Method != ts.signingMethod {
				return nil, fmt.Errorf(
					"unexpected signing method: %v",
					t.Header["alg"],
				)
			}

			return ts.secret, nil
		},
	)
	if err != nil {
		return false, nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return false, nil, nil
	}

	return true, claims, nil
}
