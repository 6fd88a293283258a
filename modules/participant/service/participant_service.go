package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/participant/dto"
	"github.com/soheiltpr/calfind/modules/participant/entity"
	"github.com/soheiltpr/calfind/modules/participant/repository"
	projectrepo "github.com/soheiltpr/calfind/modules/project/repository"
)

// ParticipantService handles invitations and name+password join
type ParticipantService struct {
	repo        repository.ParticipantRepositoryInterface
	projectRepo projectrepo.ProjectRepositoryInterface
}

// Caller identifies the authenticated principal for access checks.
type Caller struct {
	ID        uuid.UUID
	Role      string
	ProjectID *uuid.UUID
}

// ParticipantServiceInterface defines the service contract
type ParticipantServiceInterface interface {
	Invite(ctx context.Context, projectID, organizerID uuid.UUID, req *dto.InviteParticipantsRequest) ([]dto.ParticipantResponse, *errors.AppError)
	GetPublicProject(ctx context.Context, slug string) (*dto.PublicProjectResponse, *errors.AppError)
	Join(ctx context.Context, slug string, req *dto.JoinRequest) (*dto.JoinResponse, *errors.AppError)
	ListByProject(ctx context.Context, projectID uuid.UUID, caller Caller) ([]dto.ParticipantResponse, *errors.AppError)
}

func NewParticipantService(repo repository.ParticipantRepositoryInterface, projectRepo projectrepo.ProjectRepositoryInterface) ParticipantServiceInterface {
	return &ParticipantService{
		repo:        repo,
		projectRepo: projectRepo,
	}
}

// Invite pre-creates named participants without credentials. Names that
// already exist in the project are skipped rather than failing the batch.
func (s *ParticipantService) Invite(ctx context.Context, projectID, organizerID uuid.UUID, req *dto.InviteParticipantsRequest) ([]dto.ParticipantResponse, *errors.AppError) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get project", err)
	}
	if project == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Project not found", nil)
	}
	if project.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Project belongs to another organizer", nil)
	}

	created := make([]dto.ParticipantResponse, 0, len(req.Names))
	for _, name := range req.Names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		existing, err := s.repo.GetByProjectAndName(ctx, projectID, name)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check participant", err)
		}
		if existing != nil {
			continue
		}

		participant, err := s.repo.Create(ctx, &entity.Participant{
			ProjectID: projectID,
			Name:      name,
		})
		if err != nil {
			logger.Error("ParticipantService:Invite:Create", err)
			continue
		}
		created = append(created, dto.ToParticipantResponse(participant))
	}

	return created, nil
}

// GetPublicProject returns the share-link view of a project: window and
// participant names only.
func (s *ParticipantService) GetPublicProject(ctx context.Context, slug string) (*dto.PublicProjectResponse, *errors.AppError) {
	project, err := s.projectRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get project", err)
	}
	if project == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Project not found", nil)
	}

	participants, err := s.repo.GetByProjectID(ctx, project.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get participants", err)
	}

	resp := &dto.PublicProjectResponse{
		Title:           project.Title,
		WindowStartDate: project.WindowStartDate,
		WindowEndDate:   project.WindowEndDate,
		WindowStartTime: project.WindowStartTime,
		WindowEndTime:   project.WindowEndTime,
		Participants:    make([]dto.ParticipantResponse, 0, len(participants)),
	}
	if project.Description != nil {
		resp.Description = *project.Description
	}
	for i := range participants {
		resp.Participants = append(resp.Participants, dto.ToParticipantResponse(&participants[i]))
	}

	return resp, nil
}

// Join authenticates a participant by name+password. An unknown name is
// created on the spot; a pre-invited name without credentials claims the
// password on first join; otherwise the hash must match.
func (s *ParticipantService) Join(ctx context.Context, slug string, req *dto.JoinRequest) (*dto.JoinResponse, *errors.AppError) {
	project, err := s.projectRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get project", err)
	}
	if project == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Project not found", nil)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name and password are required", nil)
	}

	participant, err := s.repo.GetByProjectAndName(ctx, project.ID, name)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up participant", err)
	}

	switch {
	case participant == nil:
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
		}
		participant, err = s.repo.Create(ctx, &entity.Participant{
			ProjectID:    project.ID,
			Name:         name,
			PasswordHash: hash,
		})
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create participant", err)
		}

	case participant.PasswordHash == "":
		// Pre-invited name claims its password on first join.
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
		}
		if err := s.repo.SetPasswordHash(ctx, participant.ID, hash); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to set password", err)
		}

	default:
		if !utils.CheckPassword(participant.PasswordHash, req.Password) {
			return nil, errors.NewAppError(errors.ErrInvalidCredentials, "Wrong password for this name", nil)
		}
	}

	projectID := project.ID
	token, err := utils.GenerateToken(participant.ID, constants.RoleParticipant, &projectID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue token", err)
	}

	return &dto.JoinResponse{
		Token:       token,
		Participant: dto.ToParticipantResponse(participant),
	}, nil
}

func (s *ParticipantService) ListByProject(ctx context.Context, projectID uuid.UUID, caller Caller) ([]dto.ParticipantResponse, *errors.AppError) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get project", err)
	}
	if project == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Project not found", nil)
	}
	switch caller.Role {
	case constants.RoleOrganizer:
		if project.OrganizerID != caller.ID {
			return nil, errors.NewAppError(errors.ErrForbidden, "Project belongs to another organizer", nil)
		}
	case constants.RoleParticipant:
		if caller.ProjectID == nil || *caller.ProjectID != project.ID {
			return nil, errors.NewAppError(errors.ErrForbidden, "Token is scoped to another project", nil)
		}
	default:
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Unknown role", nil)
	}

	participants, err := s.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get participants", err)
	}

	result := make([]dto.ParticipantResponse, 0, len(participants))
	for i := range participants {
		result = append(result, dto.ToParticipantResponse(&participants[i]))
	}
	return result, nil
}
