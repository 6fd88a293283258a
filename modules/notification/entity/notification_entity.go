package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType tags what a notification is about
type NotificationType string

const (
	NotificationTypeDocumentUploaded NotificationType = "document_uploaded"
	NotificationTypeDocumentReminder NotificationType = "document_reminder"
	NotificationTypeDocumentDecided  NotificationType = "document_decided"
)

// Notification is one per-participant message row.
type Notification struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	ProjectID     uuid.UUID        `db:"project_id" json:"project_id"`
	ParticipantID uuid.UUID        `db:"participant_id" json:"participant_id"`
	Type          NotificationType `db:"type" json:"type"`
	Message       string           `db:"message" json:"message"`
	IsRead        bool             `db:"is_read" json:"is_read"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
}
