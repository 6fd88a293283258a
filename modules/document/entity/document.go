package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus represents the signature state of a document
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusSigned   DocumentStatus = "signed"
	DocumentStatusDeclined DocumentStatus = "declined"
)

// SignatureAction is what a participant did with a document
type SignatureAction string

const (
	SignatureActionSigned   SignatureAction = "signed"
	SignatureActionDeclined SignatureAction = "declined"
)

// Document is an uploaded PDF/image routed through the signature workflow.
// FileKey is the object-store key; the file itself never touches Postgres.
type Document struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	ProjectID   uuid.UUID      `db:"project_id" json:"project_id"`
	UploaderID  *uuid.UUID     `db:"uploader_id" json:"uploader_id,omitempty"`
	Title       string         `db:"title" json:"title"`
	FileKey     string         `db:"file_key" json:"-"`
	ContentType string         `db:"content_type" json:"content_type"`
	SizeBytes   int64          `db:"size_bytes" json:"size_bytes"`
	Status      DocumentStatus `db:"status" json:"status"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// DocumentSignature records one participant's decision on a document.
type DocumentSignature struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	DocumentID    uuid.UUID       `db:"document_id" json:"document_id"`
	ParticipantID uuid.UUID       `db:"participant_id" json:"participant_id"`
	Action        SignatureAction `db:"action" json:"action"`
	SignedAt      time.Time       `db:"signed_at" json:"signed_at"`
}

// DocumentNote is one message in a document's note thread. ParentID is nil
// for top-level notes; replies nest one level deep.
type DocumentNote struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	DocumentID    uuid.UUID  `db:"document_id" json:"document_id"`
	ParentID      *uuid.UUID `db:"parent_id" json:"parent_id,omitempty"`
	ParticipantID uuid.UUID  `db:"participant_id" json:"participant_id"`
	Body          string     `db:"body" json:"body"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}
