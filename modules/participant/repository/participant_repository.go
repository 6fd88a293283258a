package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/modules/participant/entity"
)

// ParticipantRepository handles participant database operations
type ParticipantRepository struct {
	DB database.Database
}

func NewParticipantRepository(db database.Database) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

// ParticipantRepositoryInterface defines the repository contract
type ParticipantRepositoryInterface interface {
	Create(ctx context.Context, participant *entity.Participant) (*entity.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error)
	GetByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (*entity.Participant, error)
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]entity.Participant, error)
	SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func (r *ParticipantRepository) Create(ctx context.Context, participant *entity.Participant) (*entity.Participant, error) {
	query := `
		INSERT INTO participants (project_id, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, project_id, name, password_hash, created_at
	`

	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, query,
		participant.ProjectID, participant.Name, participant.PasswordHash)

	if err != nil {
		logger.Error("ParticipantRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Participant, error) {
	query := `
		SELECT id, project_id, name, password_hash, created_at
		FROM participants WHERE id = $1
	`

	var participant entity.Participant
	err := r.DB.GetContext(ctx, &participant, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ParticipantRepository:GetByID", err)
		return nil, err
	}

	return &participant, nil
}

func (r *ParticipantRepository) GetByProjectAndName(ctx context.Context, projectID uuid.UUID, name string) (*entity.Participant, error) {
	query := `
		SELECT id, project_id, name, password_hash, created_at
		FROM participants WHERE project_id = $1 AND name = $2
	`

	var participant entity.Participant
	err := r.DB.GetContext(ctx, &participant, query, projectID, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ParticipantRepository:GetByProjectAndName", err)
		return nil, err
	}

	return &participant, nil
}

func (r *ParticipantRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]entity.Participant, error) {
	query := `
		SELECT id, project_id, name, password_hash, created_at
		FROM participants
		WHERE project_id = $1
		ORDER BY created_at ASC
	`

	var participants []entity.Participant
	err := r.DB.SelectContext(ctx, &participants, query, projectID)
	if err != nil {
		logger.Error("ParticipantRepository:GetByProjectID", err)
		return nil, err
	}

	return participants, nil
}

func (r *ParticipantRepository) SetPasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	query := `UPDATE participants SET password_hash = $2 WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id, hash)
	if err != nil {
		logger.Error("ParticipantRepository:SetPasswordHash", err)
		return err
	}
	return nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM participants WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("ParticipantRepository:Delete", err)
		return err
	}
	return nil
}
