package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/modules/document/entity"
)

// DocumentRepository handles document database operations
type DocumentRepository struct {
	DB database.Database
}

func NewDocumentRepository(db database.Database) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

// DocumentRepositoryInterface defines the repository contract
type DocumentRepositoryInterface interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]entity.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DocumentStatus) error
	ListDeclinedBefore(ctx context.Context, cutoff time.Time) ([]entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateSignature(ctx context.Context, sig *entity.DocumentSignature) error
	GetSignatures(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentSignature, error)

	CreateNote(ctx context.Context, note *entity.DocumentNote) (*entity.DocumentNote, error)
	GetNoteByID(ctx context.Context, id uuid.UUID) (*entity.DocumentNote, error)
	GetNotes(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentNote, error)
}

// ===================== Documents =====================

func (r *DocumentRepository) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	query := `
		INSERT INTO documents (project_id, uploader_id, title, file_key, content_type, size_bytes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, project_id, uploader_id, title, file_key, content_type, size_bytes, status, created_at, updated_at
	`

	var created entity.Document
	err := r.DB.GetContext(ctx, &created, query,
		doc.ProjectID, doc.UploaderID, doc.Title, doc.FileKey, doc.ContentType, doc.SizeBytes, doc.Status)

	if err != nil {
		logger.Error("DocumentRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	query := `
		SELECT id, project_id, uploader_id, title, file_key, content_type, size_bytes, status, created_at, updated_at
		FROM documents WHERE id = $1
	`

	var doc entity.Document
	err := r.DB.GetContext(ctx, &doc, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DocumentRepository:GetByID", err)
		return nil, err
	}

	return &doc, nil
}

func (r *DocumentRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]entity.Document, error) {
	query := `
		SELECT id, project_id, uploader_id, title, file_key, content_type, size_bytes, status, created_at, updated_at
		FROM documents
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	var docs []entity.Document
	err := r.DB.SelectContext(ctx, &docs, query, projectID)
	if err != nil {
		logger.Error("DocumentRepository:GetByProjectID", err)
		return nil, err
	}

	return docs, nil
}

func (r *DocumentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.DocumentStatus) error {
	query := `UPDATE documents SET status = $2, updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("DocumentRepository:UpdateStatus", err)
		return err
	}
	return nil
}

func (r *DocumentRepository) ListDeclinedBefore(ctx context.Context, cutoff time.Time) ([]entity.Document, error) {
	query := `
		SELECT id, project_id, uploader_id, title, file_key, content_type, size_bytes, status, created_at, updated_at
		FROM documents
		WHERE status = $1 AND updated_at < $2
	`

	var docs []entity.Document
	err := r.DB.SelectContext(ctx, &docs, query, entity.DocumentStatusDeclined, cutoff)
	if err != nil {
		logger.Error("DocumentRepository:ListDeclinedBefore", err)
		return nil, err
	}

	return docs, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("DocumentRepository:Delete", err)
		return err
	}
	return nil
}

// ===================== Signatures =====================

func (r *DocumentRepository) CreateSignature(ctx context.Context, sig *entity.DocumentSignature) error {
	// One decision per participant per document; re-signing updates it.
	query := `
		INSERT INTO document_signatures (document_id, participant_id, action)
		VALUES ($1, $2, $3)
		ON CONFLICT (document_id, participant_id)
		DO UPDATE SET action = EXCLUDED.action, signed_at = NOW()
	`
	err := r.DB.ExecContext(ctx, query, sig.DocumentID, sig.ParticipantID, sig.Action)
	if err != nil {
		logger.Error("DocumentRepository:CreateSignature", err)
		return err
	}
	return nil
}

func (r *DocumentRepository) GetSignatures(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentSignature, error) {
	query := `
		SELECT id, document_id, participant_id, action, signed_at
		FROM document_signatures
		WHERE document_id = $1
		ORDER BY signed_at ASC
	`

	var sigs []entity.DocumentSignature
	err := r.DB.SelectContext(ctx, &sigs, query, documentID)
	if err != nil {
		logger.Error("DocumentRepository:GetSignatures", err)
		return nil, err
	}

	return sigs, nil
}

// ===================== Notes =====================

func (r *DocumentRepository) CreateNote(ctx context.Context, note *entity.DocumentNote) (*entity.DocumentNote, error) {
	query := `
		INSERT INTO document_notes (document_id, parent_id, participant_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, document_id, parent_id, participant_id, body, created_at
	`

	var created entity.DocumentNote
	err := r.DB.GetContext(ctx, &created, query,
		note.DocumentID, note.ParentID, note.ParticipantID, note.Body)

	if err != nil {
		logger.Error("DocumentRepository:CreateNote", err)
		return nil, err
	}

	return &created, nil
}

func (r *DocumentRepository) GetNoteByID(ctx context.Context, id uuid.UUID) (*entity.DocumentNote, error) {
	query := `
		SELECT id, document_id, parent_id, participant_id, body, created_at
		FROM document_notes WHERE id = $1
	`

	var note entity.DocumentNote
	err := r.DB.GetContext(ctx, &note, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DocumentRepository:GetNoteByID", err)
		return nil, err
	}

	return &note, nil
}

func (r *DocumentRepository) GetNotes(ctx context.Context, documentID uuid.UUID) ([]entity.DocumentNote, error) {
	query := `
		SELECT id, document_id, parent_id, participant_id, body, created_at
		FROM document_notes
		WHERE document_id = $1
		ORDER BY created_at ASC
	`

	var notes []entity.DocumentNote
	err := r.DB.SelectContext(ctx, &notes, query, documentID)
	if err != nil {
		logger.Error("DocumentRepository:GetNotes", err)
		return nil, err
	}

	return notes, nil
}
