package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/database"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/modules/notification/entity"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	DB database.Database
}

func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

// NotificationRepositoryInterface defines the repository contract
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notif *entity.Notification) error
	GetByParticipant(ctx context.Context, participantID uuid.UUID) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id, participantID uuid.UUID) error
}

func (r *NotificationRepository) Create(ctx context.Context, notif *entity.Notification) error {
	query := `
		INSERT INTO notifications (project_id, participant_id, type, message)
		VALUES ($1, $2, $3, $4)
	`
	err := r.DB.ExecContext(ctx, query, notif.ProjectID, notif.ParticipantID, notif.Type, notif.Message)
	if err != nil {
		logger.Error("NotificationRepository:Create", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) GetByParticipant(ctx context.Context, participantID uuid.UUID) ([]entity.Notification, error) {
	query := `
		SELECT id, project_id, participant_id, type, message, is_read, created_at
		FROM notifications
		WHERE participant_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`

	var notifs []entity.Notification
	err := r.DB.SelectContext(ctx, &notifs, query, participantID)
	if err != nil {
		logger.Error("NotificationRepository:GetByParticipant", err)
		return nil, err
	}

	return notifs, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, participantID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND participant_id = $2`
	err := r.DB.ExecContext(ctx, query, id, participantID)
	if err != nil {
		logger.Error("NotificationRepository:MarkRead", err)
		return err
	}
	return nil
}
