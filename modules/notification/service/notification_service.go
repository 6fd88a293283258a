package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/modules/notification/entity"
	"github.com/soheiltpr/calfind/modules/notification/repository"
	projectrepo "github.com/soheiltpr/calfind/modules/project/repository"
)

// NotificationService handles per-participant notification rows and the
// live project-change stream.
type NotificationService struct {
	repo     repository.NotificationRepositoryInterface
	projects projectrepo.ProjectRepositoryInterface
	cache    cache.ICache
}

// Caller identifies the authenticated principal for access checks.
type Caller struct {
	ID        uuid.UUID
	Role      string
	ProjectID *uuid.UUID
}

func NewNotificationService(
	repo repository.NotificationRepositoryInterface,
	projects projectrepo.ProjectRepositoryInterface,
	c cache.ICache,
) *NotificationService {
	return &NotificationService{repo: repo, projects: projects, cache: c}
}

// NotifyProject writes one notification row per given participant.
func (s *NotificationService) NotifyProject(ctx context.Context, projectID uuid.UUID, participantIDs []uuid.UUID, typ entity.NotificationType, message string) error {
	for _, pid := range participantIDs {
		err := s.repo.Create(ctx, &entity.Notification{
			ProjectID:     projectID,
			ParticipantID: pid,
			Type:          typ,
			Message:       message,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, participantID uuid.UUID) ([]entity.Notification, *errors.AppError) {
	notifs, err := s.repo.GetByParticipant(ctx, participantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get notifications", err)
	}
	if notifs == nil {
		notifs = []entity.Notification{}
	}
	return notifs, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, participantID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkRead(ctx, id, participantID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark notification read", err)
	}
	return nil
}

// Subscribe validates access and opens a pub/sub subscription on the
// project's change channel. The caller owns the returned subscription.
func (s *NotificationService) Subscribe(ctx context.Context, projectID uuid.UUID, caller Caller) (*redis.PubSub, *errors.AppError) {
	project, err := s.projects.GetByID(ctx, projectID)
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

	if s.cache == nil {
		return nil, errors.NewAppError(errors.ErrStorageUnavailable, "Live updates are unavailable", nil)
	}
	return s.cache.SubscribeProjectChanges(ctx, projectID.String()), nil
}
