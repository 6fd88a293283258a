package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a named member of one project. Names are unique per
// project; the password hash is empty until the participant first joins
// (organizers may pre-invite names without credentials).
type Participant struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ProjectID    uuid.UUID `db:"project_id" json:"project_id"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
