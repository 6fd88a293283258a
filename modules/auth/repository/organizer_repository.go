package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/modules/auth/entity"
)

// OrganizerRepository handles organizer database operations
type OrganizerRepository struct {
	DB database.Database
}

func NewOrganizerRepository(db database.Database) *OrganizerRepository {
	return &OrganizerRepository{DB: db}
}

// OrganizerRepositoryInterface defines the repository contract
type OrganizerRepositoryInterface interface {
	Create(ctx context.Context, organizer *entity.Organizer) (*entity.Organizer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Organizer, error)
	GetByName(ctx context.Context, name string) (*entity.Organizer, error)
}

func (r *OrganizerRepository) Create(ctx context.Context, organizer *entity.Organizer) (*entity.Organizer, error) {
	query := `
		INSERT INTO organizers (name, password_hash)
		VALUES ($1, $2)
		RETURNING id, name, password_hash, created_at
	`

	var created entity.Organizer
	err := r.DB.GetContext(ctx, &created, query, organizer.Name, organizer.PasswordHash)
	if err != nil {
		logger.Error("OrganizerRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *OrganizerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Organizer, error) {
	query := `SELECT id, name, password_hash, created_at FROM organizers WHERE id = $1`

	var organizer entity.Organizer
	err := r.DB.GetContext(ctx, &organizer, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("OrganizerRepository:GetByID", err)
		return nil, err
	}

	return &organizer, nil
}

func (r *OrganizerRepository) GetByName(ctx context.Context, name string) (*entity.Organizer, error) {
	query := `SELECT id, name, password_hash, created_at FROM organizers WHERE name = $1`

	var organizer entity.Organizer
	err := r.DB.GetContext(ctx, &organizer, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("OrganizerRepository:GetByName", err)
		return nil, err
	}

	return &organizer, nil
}
