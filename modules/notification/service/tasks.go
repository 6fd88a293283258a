package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/logger"
)

// ReminderPayload is the asynq payload for a document signature reminder.
type ReminderPayload struct {
	DocumentID uuid.UUID `json:"document_id"`
}

// TaskEnqueuer wraps the asynq client for task producers.
type TaskEnqueuer struct {
	client *asynq.Client
}

func NewTaskEnqueuer(client *asynq.Client) *TaskEnqueuer {
	return &TaskEnqueuer{client: client}
}

// EnqueueDocumentReminder schedules a reminder that fires after delay if
// the document is still pending by then.
func (e *TaskEnqueuer) EnqueueDocumentReminder(ctx context.Context, documentID uuid.UUID, delay time.Duration) error {
	payload, err := json.Marshal(ReminderPayload{DocumentID: documentID})
	if err != nil {
		return err
	}

	task := asynq.NewTask(constants.TaskDocumentReminder, payload)
	info, err := e.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay), asynq.MaxRetry(3))
	if err != nil {
		logger.Error("TaskEnqueuer:EnqueueDocumentReminder", err)
		return err
	}

	logger.Info("Enqueued document reminder", "task_id", info.ID, "document_id", documentID, "delay", delay)
	return nil
}
