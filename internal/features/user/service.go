package user

import (
	"context"
	"errors"
	"strings"

	"github.com/Jeremias-V/Mini-POS/internal/auth"
	"github.com/Jeremias-V/Mini-POS/internal/middlewares"
	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/google/uuid"
)

type storer interface {
	createOne(ctx context.Context, newUser *User) error
	findByUsername(ctx context.Context, username string) (*User, error)
	findByPublicID(ctx context.Context, publicID uuid.UUID) (*User, error)
}

type tokenIssuer interface {
	IssueToken(publicID uuid.UUID) (string, error)
}

type service struct {
	store    storer
	tokens   tokenIssuer
	adminKey string
}

func NewService(store storer, tokens tokenIssuer, adminKey string) *service {
	return &service{
		store:    store,
		tokens:   tokens,
		adminKey: adminKey,
	}
}

// registerUser creates a new user. Presenting the right admin key grants the
// admin flag at creation; presenting a wrong one fails the registration.
func (s *service) registerUser(ctx context.Context, newUser *RegisterUserRequest) error {
	newUser.Username = strings.TrimSpace(newUser.Username)

	isAdmin := false
	if newUser.AdminKey != "" {
		if s.adminKey == "" || newUser.AdminKey != s.adminKey {
			return servererrors.ErrWrongAdminKey
		}
		isAdmin = true
	}

	_, err := s.store.findByUsername(ctx, newUser.Username)
	if err == nil {
		return servererrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, servererrors.ErrUserNotFound) {
		return err
	}

	passwordHash, err := auth.HashPassword(newUser.Password)
	if err != nil {
		return err
	}

	return s.store.createOne(
		ctx,
		&User{
			PublicID:     uuid.New(),
			Username:     newUser.Username,
			PasswordHash: passwordHash,
			IsAdmin:      isAdmin,
		},
	)
}

// loginUser verifies the credentials and issues a bearer token embedding the
// user's public id. Unknown user and wrong password are indistinguishable to
// the caller.
func (s *service) loginUser(ctx context.Context, username, password string) (string, error) {
	existing, err := s.store.findByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, servererrors.ErrUserNotFound) {
			return "", servererrors.ErrCouldNotVerify
		}

		return "", err
	}

	if !auth.CheckPassword(existing.PasswordHash, password) {
		return "", servererrors.ErrCouldNotVerify
	}

	return s.tokens.IssueToken(existing.PublicID)
}

// FindAuthUserByPublicID resolves a token's public id to the authenticated
// identity the middlewares attach to request contexts.
func (s *service) FindAuthUserByPublicID(ctx context.Context, publicID uuid.UUID) (*middlewares.AuthenticatedUser, error) {
	existing, err := s.store.findByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	return &middlewares.AuthenticatedUser{
		UserID:   existing.UserID,
		PublicID: existing.PublicID,
		Username: existing.Username,
		IsAdmin:  existing.IsAdmin,
	}, nil
}
