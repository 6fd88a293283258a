package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/modules/availability/entity"
)

// SlotRepository handles availability_slots database operations
type SlotRepository struct {
	DB database.Database
}

func NewSlotRepository(db database.Database) *SlotRepository {
	return &SlotRepository{DB: db}
}

// SlotRepositoryInterface defines the repository contract
type SlotRepositoryInterface interface {
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]entity.AvailabilitySlot, error)
	GetByParticipant(ctx context.Context, projectID, participantID uuid.UUID) ([]entity.AvailabilitySlot, error)
	ReplaceForParticipant(ctx context.Context, projectID, participantID uuid.UUID, slots []entity.AvailabilitySlot) error
}

func (r *SlotRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT id, project_id, participant_id, slot_date, start_time, end_time, created_at, updated_at
		FROM availability_slots
		WHERE project_id = $1
		ORDER BY slot_date ASC, start_time ASC
	`

	var slots []entity.AvailabilitySlot
	err := r.DB.SelectContext(ctx, &slots, query, projectID)
	if err != nil {
		logger.Error("SlotRepository:GetByProjectID", err)
		return nil, err
	}

	return slots, nil
}

func (r *SlotRepository) GetByParticipant(ctx context.Context, projectID, participantID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT id, project_id, participant_id, slot_date, start_time, end_time, created_at, updated_at
		FROM availability_slots
		WHERE project_id = $1 AND participant_id = $2
		ORDER BY slot_date ASC, start_time ASC
	`

	var slots []entity.AvailabilitySlot
	err := r.DB.SelectContext(ctx, &slots, query, projectID, participantID)
	if err != nil {
		logger.Error("SlotRepository:GetByParticipant", err)
		return nil, err
	}

	return slots, nil
}

// ReplaceForParticipant swaps one participant's slot set atomically.
func (r *SlotRepository) ReplaceForParticipant(ctx context.Context, projectID, participantID uuid.UUID, slots []entity.AvailabilitySlot) error {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("SlotRepository:ReplaceForParticipant:Begin", err)
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM availability_slots WHERE project_id = $1 AND participant_id = $2`,
		projectID, participantID)
	if err != nil {
		logger.Error("SlotRepository:ReplaceForParticipant:Delete", err)
		return err
	}

	insert := `
		INSERT INTO availability_slots (project_id, participant_id, slot_date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, s := range slots {
		if _, err := tx.ExecContext(ctx, insert, projectID, participantID, s.SlotDate, s.StartTime, s.EndTime); err != nil {
			logger.Error("SlotRepository:ReplaceForParticipant:Insert", err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("SlotRepository:ReplaceForParticipant:Commit", err)
		return err
	}

	return nil
}
