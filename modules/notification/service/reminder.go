package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/logger"
	documententity "github.com/soheiltpr/calfind/modules/document/entity"
	documentrepo "github.com/soheiltpr/calfind/modules/document/repository"
	"github.com/soheiltpr/calfind/modules/notification/entity"
	participantrepo "github.com/soheiltpr/calfind/modules/participant/repository"
)

// ReminderHandler processes document reminder tasks: if the document is
// still pending when the task fires, every participant who has not yet
// decided gets a notification row and subscribers get a change event.
type ReminderHandler struct {
	documents     documentrepo.DocumentRepositoryInterface
	participants  participantrepo.ParticipantRepositoryInterface
	notifications *NotificationService
	cache         cache.ICache
}

func NewReminderHandler(
	documents documentrepo.DocumentRepositoryInterface,
	participants participantrepo.ParticipantRepositoryInterface,
	notifications *NotificationService,
	c cache.ICache,
) *ReminderHandler {
	return &ReminderHandler{
		documents:     documents,
		participants:  participants,
		notifications: notifications,
		cache:         c,
	}
}

func (h *ReminderHandler) Handle(ctx context.Context, t *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal reminder payload: %w", err)
	}

	doc, err := h.documents.GetByID(ctx, payload.DocumentID)
	if err != nil {
		return err
	}
	if doc == nil || doc.Status != documententity.DocumentStatusPending {
		// Already decided or deleted; nothing to remind about.
		return nil
	}

	signatures, err := h.documents.GetSignatures(ctx, doc.ID)
	if err != nil {
		return err
	}
	decided := make(map[uuid.UUID]struct{}, len(signatures))
	for _, sig := range signatures {
		decided[sig.ParticipantID] = struct{}{}
	}

	participants, err := h.participants.GetByProjectID(ctx, doc.ProjectID)
	if err != nil {
		return err
	}

	pending := make([]uuid.UUID, 0, len(participants))
	for _, p := range participants {
		if _, ok := decided[p.ID]; !ok {
			pending = append(pending, p.ID)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	message := fmt.Sprintf("Document %q is still waiting for your signature", doc.Title)
	if err := h.notifications.NotifyProject(ctx, doc.ProjectID, pending, entity.NotificationTypeDocumentReminder, message); err != nil {
		return err
	}

	if h.cache != nil {
		if err := h.cache.PublishProjectChange(ctx, doc.ProjectID.String(), "reminder"); err != nil {
			logger.Warn("ReminderHandler:PublishProjectChange", "error", err)
		}
	}

	logger.Info("Document reminder delivered", "document_id", doc.ID, "pending", len(pending))
	return nil
}
