package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/modules/availability/dto"
	"github.com/soheiltpr/calfind/modules/availability/entity"
	"github.com/soheiltpr/calfind/modules/availability/repository"
	participantrepo "github.com/soheiltpr/calfind/modules/participant/repository"
	projectentity "github.com/soheiltpr/calfind/modules/project/entity"
	projectrepo "github.com/soheiltpr/calfind/modules/project/repository"
)

const timelineCacheTTL = 5 * time.Minute

// AvailabilityService wires slot persistence to the aggregation core.
type AvailabilityService struct {
	slots        repository.SlotRepositoryInterface
	projects     projectrepo.ProjectRepositoryInterface
	participants participantrepo.ParticipantRepositoryInterface
	cache        cache.ICache
}

// Caller identifies the authenticated principal for access checks.
type Caller struct {
	ID        uuid.UUID
	Role      string
	ProjectID *uuid.UUID
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	GetSlots(ctx context.Context, projectID uuid.UUID, caller Caller) ([]dto.ParticipantSlotsResponse, *errors.AppError)
	ReplaceSlots(ctx context.Context, projectID uuid.UUID, caller Caller, req *dto.ReplaceSlotsRequest) ([]entity.Slot, *errors.AppError)
	GetTimeline(ctx context.Context, projectID uuid.UUID, caller Caller) (*dto.TimelineResponse, *errors.AppError)
	GetAggregate(ctx context.Context, projectID uuid.UUID, caller Caller) (*dto.AggregateResponse, *errors.AppError)
	GetTimelineICS(ctx context.Context, projectID uuid.UUID, caller Caller) (string, *errors.AppError)
}

func NewAvailabilityService(
	slots repository.SlotRepositoryInterface,
	projects projectrepo.ProjectRepositoryInterface,
	participants participantrepo.ParticipantRepositoryInterface,
	c cache.ICache,
) AvailabilityServiceInterface {
	return &AvailabilityService{
		slots:        slots,
		projects:     projects,
		participants: participants,
		cache:        c,
	}
}

func (s *AvailabilityService) GetSlots(ctx context.Context, projectID uuid.UUID, caller Caller) ([]dto.ParticipantSlotsResponse, *errors.AppError) {
	if _, appErr := s.accessibleProject(ctx, projectID, caller); appErr != nil {
		return nil, appErr
	}

	records, appErr := s.loadAvailability(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	result := make([]dto.ParticipantSlotsResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, dto.ParticipantSlotsResponse{
			ParticipantID: rec.ID,
			Slots:         rec.Slots,
		})
	}
	return result, nil
}

// ReplaceSlots swaps the calling participant's slot set. Every slot is
// validated against the project window before anything is persisted; the
// aggregation core itself never validates.
func (s *AvailabilityService) ReplaceSlots(ctx context.Context, projectID uuid.UUID, caller Caller, req *dto.ReplaceSlotsRequest) ([]entity.Slot, *errors.AppError) {
	project, appErr := s.accessibleProject(ctx, projectID, caller)
	if appErr != nil {
		return nil, appErr
	}
	if caller.Role != constants.RoleParticipant {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only participants submit availability", nil)
	}

	normalized := make([]entity.Slot, 0, len(req.Slots))
	rows := make([]entity.AvailabilitySlot, 0, len(req.Slots))
	for _, in := range req.Slots {
		slot := in.Normalize()
		if !project.WindowContains(slot.Date, slot.StartTime, slot.EndTime) {
			return nil, errors.NewAppError(errors.ErrOutsideWindow, "Slot lies outside the project's allowed window", nil)
		}
		normalized = append(normalized, slot)
		rows = append(rows, entity.AvailabilitySlot{
			ProjectID:     projectID,
			ParticipantID: caller.ID,
			SlotDate:      slot.Date,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
		})
	}

	if err := s.slots.ReplaceForParticipant(ctx, projectID, caller.ID, rows); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save slots", err)
	}

	s.invalidateAndPublish(ctx, projectID, "slots")

	return normalized, nil
}

func (s *AvailabilityService) GetTimeline(ctx context.Context, projectID uuid.UUID, caller Caller) (*dto.TimelineResponse, *errors.AppError) {
	if _, appErr := s.accessibleProject(ctx, projectID, caller); appErr != nil {
		return nil, appErr
	}

	// Cache is best effort: any miss or failure falls back to recompute.
	if s.cache != nil {
		if payload, ok := s.cache.GetTimeline(ctx, projectID.String()); ok {
			var cached dto.TimelineResponse
			if err := json.Unmarshal([]byte(payload), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	records, appErr := s.loadAvailability(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	names, appErr := s.participantNames(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	resp := &dto.TimelineResponse{
		Timeline:         BuildTimeline(records),
		ParticipantNames: names,
	}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.SetTimeline(ctx, projectID.String(), string(payload), timelineCacheTTL); err != nil {
				logger.Warn("AvailabilityService:GetTimeline:SetCache", "error", err)
			}
		}
	}

	return resp, nil
}

func (s *AvailabilityService) GetAggregate(ctx context.Context, projectID uuid.UUID, caller Caller) (*dto.AggregateResponse, *errors.AppError) {
	if _, appErr := s.accessibleProject(ctx, projectID, caller); appErr != nil {
		return nil, appErr
	}

	records, appErr := s.loadAvailability(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.AggregateResponse{Slots: AggregateSlots(records)}, nil
}

func (s *AvailabilityService) GetTimelineICS(ctx context.Context, projectID uuid.UUID, caller Caller) (string, *errors.AppError) {
	project, appErr := s.accessibleProject(ctx, projectID, caller)
	if appErr != nil {
		return "", appErr
	}

	records, appErr := s.loadAvailability(ctx, projectID)
	if appErr != nil {
		return "", appErr
	}

	names, appErr := s.participantNames(ctx, projectID)
	if appErr != nil {
		return "", appErr
	}

	ics, err := RenderTimelineICS(project.Title, BuildTimeline(records), names)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to render calendar", err)
	}

	return ics, nil
}

// loadAvailability reads the raw slot rows and regroups them into the
// per-participant form the core consumes.
func (s *AvailabilityService) loadAvailability(ctx context.Context, projectID uuid.UUID) ([]entity.ParticipantAvailability, *errors.AppError) {
	rows, err := s.slots.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load slots", err)
	}

	byParticipant := make(map[string]*entity.ParticipantAvailability)
	order := make([]string, 0)
	for _, row := range rows {
		id := row.ParticipantID.String()
		rec, ok := byParticipant[id]
		if !ok {
			rec = &entity.ParticipantAvailability{ID: id}
			byParticipant[id] = rec
			order = append(order, id)
		}
		rec.Slots = append(rec.Slots, entity.Slot{
			Date:      row.SlotDate,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
	}

	records := make([]entity.ParticipantAvailability, 0, len(order))
	for _, id := range order {
		records = append(records, *byParticipant[id])
	}
	return records, nil
}

func (s *AvailabilityService) participantNames(ctx context.Context, projectID uuid.UUID) (map[string]string, *errors.AppError) {
	participants, err := s.participants.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load participants", err)
	}

	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID.String()] = p.Name
	}
	return names, nil
}

// accessibleProject loads the project and enforces that the caller is its
// organizer or one of its participants.
func (s *AvailabilityService) accessibleProject(ctx context.Context, projectID uuid.UUID, caller Caller) (*projectentity.Project, *errors.AppError) {
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

	return project, nil
}

func (s *AvailabilityService) invalidateAndPublish(ctx context.Context, projectID uuid.UUID, kind string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateTimeline(ctx, projectID.String()); err != nil {
		logger.Warn("AvailabilityService:InvalidateTimeline", "error", err)
	}
	if err := s.cache.PublishProjectChange(ctx, projectID.String(), kind); err != nil {
		logger.Warn("AvailabilityService:PublishProjectChange", "error", err)
	}
}
