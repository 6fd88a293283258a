package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organizer is an account that can create and manage projects.
type Organizer struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
