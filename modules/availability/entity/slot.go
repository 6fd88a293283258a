package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is one persisted row in availability_slots: a single
// contiguous time range on one date that a participant marked as available.
// Dates are ISO "YYYY-MM-DD", times 24-hour "HH:MM". Only raw slots are
// persisted; aggregates and timelines are recomputed on every read.
type AvailabilitySlot struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ProjectID     uuid.UUID `db:"project_id" json:"project_id"`
	ParticipantID uuid.UUID `db:"participant_id" json:"participant_id"`
	SlotDate      string    `db:"slot_date" json:"date"`
	StartTime     string    `db:"start_time" json:"start_time"`
	EndTime       string    `db:"end_time" json:"end_time"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
