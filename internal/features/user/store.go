package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Jeremias-V/Mini-POS/internal/servererrors"
	"github.com/Jeremias-V/Mini-POS/internal/storage"
	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) createOne(ctx context.Context, newUser *User) error {
	query := `INSERT INTO users(public_id, username, password_hash, is_admin) VALUES($1, $2, $3, $4)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		newUser.PublicID,
		newUser.Username,
		newUser.PasswordHash,
		newUser.IsAdmin,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return servererrors.ErrUserAlreadyExists
		}

		return fmt.Errorf(
			"failed to insert new user in user store: %w",
			err,
		)
	}

	return nil
}

func (s *Store) findByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT user_id, public_id, username, password_hash, is_admin FROM users WHERE username = $1`

	var u User
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&u.UserID,
		&u.PublicID,
		&u.Username,
		&u.PasswordHash,
		&u.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrUserNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan user from user store: %w",
			err,
		)
	}

	return &u, nil
}

func (s *Store) findByPublicID(ctx context.Context, publicID uuid.UUID) (*User, error) {
	query := `SELECT user_id, public_id, username, password_hash, is_admin FROM users WHERE public_id = $1`

	var u User
	err := s.db.QueryRowContext(ctx, query, publicID).Scan(
		&u.UserID,
		&u.PublicID,
		&u.Username,
		&u.PasswordHash,
		&u.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, servererrors.ErrUserNotFound
		}

		return nil, fmt.Errorf(
			"failed to scan user from user store: %w",
			err,
		)
	}

	return &u, nil
}
