package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/project/dto"
	"github.com/soheiltpr/calfind/modules/project/entity"
	"github.com/soheiltpr/calfind/modules/project/repository"
)

// ProjectService handles project business logic
type ProjectService struct {
	repo repository.ProjectRepositoryInterface
}

// ProjectServiceInterface defines the service contract
type ProjectServiceInterface interface {
	Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, *errors.AppError)
	GetByID(ctx context.Context, projectID, organizerID uuid.UUID) (*dto.ProjectResponse, *errors.AppError)
	GetMyProjects(ctx context.Context, organizerID uuid.UUID) ([]dto.ProjectResponse, *errors.AppError)
	Update(ctx context.Context, projectID, organizerID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, *errors.AppError)
	Delete(ctx context.Context, projectID, organizerID uuid.UUID) *errors.AppError
}

func NewProjectService(repo repository.ProjectRepositoryInterface) ProjectServiceInterface {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, *errors.AppError) {
	if req.WindowStartTime == "" {
		req.WindowStartTime = "00:00"
	}
	if req.WindowEndTime == "" {
		req.WindowEndTime = "24:00"
	}

	if appErr := validateWindow(req.WindowStartDate, req.WindowEndDate, req.WindowStartTime, req.WindowEndTime); appErr != nil {
		return nil, appErr
	}

	project := &entity.Project{
		OrganizerID:     organizerID,
		Title:           req.Title,
		ShareSlug:       utils.GenerateShareSlug(req.Title),
		WindowStartDate: req.WindowStartDate,
		WindowEndDate:   req.WindowEndDate,
		WindowStartTime: req.WindowStartTime,
		WindowEndTime:   req.WindowEndTime,
	}
	if req.Description != "" {
		project.Description = &req.Description
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create project", err)
	}

	return dto.ToProjectResponse(created), nil
}

func (s *ProjectService) GetByID(ctx context.Context, projectID, organizerID uuid.UUID) (*dto.ProjectResponse, *errors.AppError) {
	project, appErr := s.ownedProject(ctx, projectID, organizerID)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToProjectResponse(project), nil
}

func (s *ProjectService) GetMyProjects(ctx context.Context, organizerID uuid.UUID) ([]dto.ProjectResponse, *errors.AppError) {
	projects, err := s.repo.GetByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get projects", err)
	}

	result := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, *dto.ToProjectResponse(&projects[i]))
	}
	return result, nil
}

func (s *ProjectService) Update(ctx context.Context, projectID, organizerID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, *errors.AppError) {
	project, appErr := s.ownedProject(ctx, projectID, organizerID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.Description != "" {
		project.Description = &req.Description
	}
	if req.WindowStartDate != "" {
		project.WindowStartDate = req.WindowStartDate
	}
	if req.WindowEndDate != "" {
		project.WindowEndDate = req.WindowEndDate
	}
	if req.WindowStartTime != "" {
		project.WindowStartTime = req.WindowStartTime
	}
	if req.WindowEndTime != "" {
		project.WindowEndTime = req.WindowEndTime
	}

	if appErr := validateWindow(project.WindowStartDate, project.WindowEndDate, project.WindowStartTime, project.WindowEndTime); appErr != nil {
		return nil, appErr
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update project", err)
	}

	return dto.ToProjectResponse(project), nil
}

func (s *ProjectService) Delete(ctx context.Context, projectID, organizerID uuid.UUID) *errors.AppError {
	_, appErr := s.ownedProject(ctx, projectID, organizerID)
	if appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, projectID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete project", err)
	}
	return nil
}

// ownedProject loads a project and enforces organizer ownership.
func (s *ProjectService) ownedProject(ctx context.Context, projectID, organizerID uuid.UUID) (*entity.Project, *errors.AppError) {
	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get project", err)
	}
	if project == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Project not found", nil)
	}
	if project.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Project belongs to another organizer", nil)
	}
	return project, nil
}

func validateWindow(startDate, endDate, startTime, endTime string) *errors.AppError {
	if !utils.ValidDate(startDate) || !utils.ValidDate(endDate) {
		return errors.NewAppError(errors.ErrInvalidInput, "Window dates must be YYYY-MM-DD", nil)
	}
	if startDate > endDate {
		return errors.NewAppError(errors.ErrInvalidInput, "Window start date must not be after end date", nil)
	}

	startMin, okStart := utils.TimeToMinutes(startTime)
	endMin, okEnd := utils.TimeToMinutes(endTime)
	if !okStart || !okEnd {
		return errors.NewAppError(errors.ErrInvalidInput, "Window times must be HH:MM", nil)
	}
	if startMin >= endMin {
		return errors.NewAppError(errors.ErrInvalidInput, "Window start time must be before end time", nil)
	}

	return nil
}
