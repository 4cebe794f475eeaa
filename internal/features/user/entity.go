package user

import "github.com/google/uuid"

type User struct {
	UserID       int64     `json:"user_id"`
	PublicID     uuid.UUID `json:"public_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
}
