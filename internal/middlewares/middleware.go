package middlewares

import (
	"context"

	"github.com/Jeremias-V/Mini-POS/internal/auth"
	"github.com/google/uuid"
)

type tokenManager interface {
	ValidateToken(tokenStr string) (isValid bool, claims *auth.TokenClaims, err error)
}

// AuthenticatedUser is the resolved identity a valid token maps to. It is
// attached to the request context before the guarded handler runs.
type AuthenticatedUser struct {
	UserID   int64
	PublicID uuid.UUID
	Username string
	IsAdmin  bool
}

type userFinder interface {
	FindAuthUserByPublicID(ctx context.Context, publicID uuid.UUID) (*AuthenticatedUser, error)
}

type middleware struct {
	jwtManager tokenManager
	users      userFinder
}

func NewMiddleware(tokenManager tokenManager, users userFinder) *middleware {
	return &middleware{
		jwtManager: tokenManager,
		users:      users,
	}
}
