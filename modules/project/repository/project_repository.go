package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/modules/project/entity"
)

// ProjectRepository handles project database operations
type ProjectRepository struct {
	DB database.Database
}

func NewProjectRepository(db database.Database) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

// ProjectRepositoryInterface defines the repository contract
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *entity.Project) (*entity.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Project, error)
	GetByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	query := `
		INSERT INTO projects (organizer_id, title, description, share_slug,
		                      window_start_date, window_end_date, window_start_time, window_end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, organizer_id, title, description, share_slug,
		          window_start_date, window_end_date, window_start_time, window_end_time,
		          created_at, updated_at
	`

	var created entity.Project
	err := r.DB.GetContext(ctx, &created, query,
		project.OrganizerID, project.Title, project.Description, project.ShareSlug,
		project.WindowStartDate, project.WindowEndDate, project.WindowStartTime, project.WindowEndTime)

	if err != nil {
		logger.Error("ProjectRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	query := `
		SELECT id, organizer_id, title, description, share_slug,
		       window_start_date, window_end_date, window_start_time, window_end_time,
		       created_at, updated_at
		FROM projects WHERE id = $1
	`

	var project entity.Project
	err := r.DB.GetContext(ctx, &project, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProjectRepository:GetByID", err)
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*entity.Project, error) {
	query := `
		SELECT id, organizer_id, title, description, share_slug,
		       window_start_date, window_end_date, window_start_time, window_end_time,
		       created_at, updated_at
		FROM projects WHERE share_slug = $1
	`

	var project entity.Project
	err := r.DB.GetContext(ctx, &project, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ProjectRepository:GetBySlug", err)
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]entity.Project, error) {
	query := `
		SELECT id, organizer_id, title, description, share_slug,
		       window_start_date, window_end_date, window_start_time, window_end_time,
		       created_at, updated_at
		FROM projects
		WHERE organizer_id = $1
		ORDER BY created_at DESC
	`

	var projects []entity.Project
	err := r.DB.SelectContext(ctx, &projects, query, organizerID)
	if err != nil {
		logger.Error("ProjectRepository:GetByOrganizerID", err)
		return nil, err
	}

	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects
		SET title = $2, description = $3,
		    window_start_date = $4, window_end_date = $5,
		    window_start_time = $6, window_end_time = $7,
		    updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		project.ID, project.Title, project.Description,
		project.WindowStartDate, project.WindowEndDate,
		project.WindowStartTime, project.WindowEndTime)

	if err != nil {
		logger.Error("ProjectRepository:Update", err)
		return err
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("ProjectRepository:Delete", err)
		return err
	}
	return nil
}
