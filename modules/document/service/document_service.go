package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soheiltpr/calfind/core/cache"
	"github.com/soheiltpr/calfind/core/config"
	"github.com/soheiltpr/calfind/core/constants"
	"github.com/soheiltpr/calfind/core/errors"
	"github.com/soheiltpr/calfind/core/logger"
	"github.com/soheiltpr/calfind/core/storage"
	"github.com/soheiltpr/calfind/modules/document/dto"
	"github.com/soheiltpr/calfind/modules/document/entity"
	"github.com/soheiltpr/calfind/modules/document/repository"
	notifentity "github.com/soheiltpr/calfind/modules/notification/entity"
	notifservice "github.com/soheiltpr/calfind/modules/notification/service"
	participantrepo "github.com/soheiltpr/calfind/modules/participant/repository"
	projectentity "github.com/soheiltpr/calfind/modules/project/entity"
	projectrepo "github.com/soheiltpr/calfind/modules/project/repository"
)

// DocumentService routes uploaded files through S3 and the signature
// workflow.
type DocumentService struct {
	documents     repository.DocumentRepositoryInterface
	projects      projectrepo.ProjectRepositoryInterface
	participants  participantrepo.ParticipantRepositoryInterface
	storage       storage.IStorage
	cache         cache.ICache
	notifications *notifservice.NotificationService
	enqueuer      *notifservice.TaskEnqueuer
}

// Caller identifies the authenticated principal for access checks.
type Caller struct {
	ID        uuid.UUID
	Role      string
	ProjectID *uuid.UUID
}

// DocumentServiceInterface defines the service contract
type DocumentServiceInterface interface {
	Upload(ctx context.Context, projectID uuid.UUID, caller Caller, title string, file *multipart.FileHeader) (*dto.DocumentResponse, *errors.AppError)
	List(ctx context.Context, projectID uuid.UUID, caller Caller) ([]dto.DocumentResponse, *errors.AppError)
	GetURL(ctx context.Context, documentID uuid.UUID, caller Caller) (*dto.DocumentURLResponse, *errors.AppError)
	Decide(ctx context.Context, documentID uuid.UUID, caller Caller, action entity.SignatureAction) (*dto.DocumentResponse, *errors.AppError)
	CreateNote(ctx context.Context, documentID uuid.UUID, caller Caller, req *dto.CreateNoteRequest) ([]dto.NoteResponse, *errors.AppError)
	GetNotes(ctx context.Context, documentID uuid.UUID, caller Caller) ([]dto.NoteResponse, *errors.AppError)
	PurgeDeclined(ctx context.Context) error
}

func NewDocumentService(
	documents repository.DocumentRepositoryInterface,
	projects projectrepo.ProjectRepositoryInterface,
	participants participantrepo.ParticipantRepositoryInterface,
	store storage.IStorage,
	c cache.ICache,
	notifications *notifservice.NotificationService,
	enqueuer *notifservice.TaskEnqueuer,
) DocumentServiceInterface {
	return &DocumentService{
		documents:     documents,
		projects:      projects,
		participants:  participants,
		storage:       store,
		cache:         c,
		notifications: notifications,
		enqueuer:      enqueuer,
	}
}

// Upload stores the file in the object store and opens the signature
// workflow. Only PDFs and images within the size cap are accepted.
func (s *DocumentService) Upload(ctx context.Context, projectID uuid.UUID, caller Caller, title string, file *multipart.FileHeader) (*dto.DocumentResponse, *errors.AppError) {
	project, appErr := s.accessibleProject(ctx, projectID, caller)
	if appErr != nil {
		return nil, appErr
	}

	if file == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "No file provided", nil)
	}
	if file.Size <= 0 || file.Size > constants.MaxDocumentSizeBytes {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("File must be between 1 byte and %d MiB", constants.MaxDocumentSizeBytes>>20), nil)
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedContentType(contentType) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Only PDF and image files are accepted", nil)
	}

	if title = strings.TrimSpace(title); title == "" {
		title = file.Filename
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Failed to read uploaded file", err)
	}
	defer src.Close()

	key := fmt.Sprintf("projects/%s/documents/%s%s", project.ID, uuid.New(), path.Ext(file.Filename))
	if err := s.storage.Upload(ctx, key, contentType, src, file.Size); err != nil {
		return nil, errors.NewAppError(errors.ErrStorageUnavailable, "Failed to store file", err)
	}

	doc := &entity.Document{
		ProjectID:   project.ID,
		Title:       title,
		FileKey:     key,
		ContentType: contentType,
		SizeBytes:   file.Size,
		Status:      entity.DocumentStatusPending,
	}
	if caller.Role == constants.RoleParticipant {
		uploader := caller.ID
		doc.UploaderID = &uploader
	}

	created, err := s.documents.Create(ctx, doc)
	if err != nil {
		// The row is the source of truth; drop the orphaned object.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logger.Warn("DocumentService:Upload orphan cleanup", "error", delErr, "key", key)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create document", err)
	}

	s.scheduleReminder(ctx, created.ID)
	s.notifyOthers(ctx, project.ID, caller, notifentity.NotificationTypeDocumentUploaded,
		fmt.Sprintf("New document %q is ready to sign", created.Title))
	s.publish(ctx, project.ID, "document")

	return dto.ToDocumentResponse(created, nil), nil
}

func (s *DocumentService) List(ctx context.Context, projectID uuid.UUID, caller Caller) ([]dto.DocumentResponse, *errors.AppError) {
	if _, appErr := s.accessibleProject(ctx, projectID, caller); appErr != nil {
		return nil, appErr
	}

	docs, err := s.documents.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get documents", err)
	}

	result := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		signatures, err := s.documents.GetSignatures(ctx, docs[i].ID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get signatures", err)
		}
		result = append(result, *dto.ToDocumentResponse(&docs[i], signatures))
	}
	return result, nil
}

// GetURL returns a short-lived presigned download link.
func (s *DocumentService) GetURL(ctx context.Context, documentID uuid.UUID, caller Caller) (*dto.DocumentURLResponse, *errors.AppError) {
	doc, _, appErr := s.accessibleDocument(ctx, documentID, caller)
	if appErr != nil {
		return nil, appErr
	}

	expiry := time.Duration(constants.DocumentURLExpiryMinutes) * time.Minute
	url, err := s.storage.PresignGet(ctx, doc.FileKey, expiry)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStorageUnavailable, "Failed to sign download URL", err)
	}

	return &dto.DocumentURLResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

// Decide records the calling participant's signature or decline and
// recomputes the document status: any decline closes the document as
// declined; once every participant has signed it becomes signed.
func (s *DocumentService) Decide(ctx context.Context, documentID uuid.UUID, caller Caller, action entity.SignatureAction) (*dto.DocumentResponse, *errors.AppError) {
	doc, project, appErr := s.accessibleDocument(ctx, documentID, caller)
	if appErr != nil {
		return nil, appErr
	}
	if caller.Role != constants.RoleParticipant {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only participants sign documents", nil)
	}
	if doc.Status != entity.DocumentStatusPending {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Document is already decided", nil)
	}

	err := s.documents.CreateSignature(ctx, &entity.DocumentSignature{
		DocumentID:    doc.ID,
		ParticipantID: caller.ID,
		Action:        action,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to record decision", err)
	}

	signatures, err := s.documents.GetSignatures(ctx, doc.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get signatures", err)
	}

	next, appErr := s.resolveStatus(ctx, project.ID, signatures)
	if appErr != nil {
		return nil, appErr
	}
	if next != doc.Status {
		if err := s.documents.UpdateStatus(ctx, doc.ID, next); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update document status", err)
		}
		doc.Status = next
		s.notifyOthers(ctx, project.ID, caller, notifentity.NotificationTypeDocumentDecided,
			fmt.Sprintf("Document %q is now %s", doc.Title, next))
	}
	s.publish(ctx, project.ID, "document")

	return dto.ToDocumentResponse(doc, signatures), nil
}

// CreateNote appends to the document's note thread and returns the full
// thread. Replies attach only to top-level notes.
func (s *DocumentService) CreateNote(ctx context.Context, documentID uuid.UUID, caller Caller, req *dto.CreateNoteRequest) ([]dto.NoteResponse, *errors.AppError) {
	doc, project, appErr := s.accessibleDocument(ctx, documentID, caller)
	if appErr != nil {
		return nil, appErr
	}
	if caller.Role != constants.RoleParticipant {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only participants write notes", nil)
	}

	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Note body is required", nil)
	}

	note := &entity.DocumentNote{
		DocumentID:    doc.ID,
		ParticipantID: caller.ID,
		Body:          body,
	}
	if req.ParentID != "" {
		parentID, err := uuid.Parse(req.ParentID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid parent note ID", nil)
		}
		parent, err := s.documents.GetNoteByID(ctx, parentID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get parent note", err)
		}
		if parent == nil || parent.DocumentID != doc.ID {
			return nil, errors.NewAppError(errors.ErrNotFound, "Parent note not found", nil)
		}
		if parent.ParentID != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Replies cannot be nested further", nil)
		}
		note.ParentID = &parentID
	}

	if _, err := s.documents.CreateNote(ctx, note); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create note", err)
	}
	s.publish(ctx, project.ID, "note")

	return s.loadThread(ctx, doc.ID)
}

func (s *DocumentService) GetNotes(ctx context.Context, documentID uuid.UUID, caller Caller) ([]dto.NoteResponse, *errors.AppError) {
	doc, _, appErr := s.accessibleDocument(ctx, documentID, caller)
	if appErr != nil {
		return nil, appErr
	}
	return s.loadThread(ctx, doc.ID)
}

func (s *DocumentService) loadThread(ctx context.Context, documentID uuid.UUID) ([]dto.NoteResponse, *errors.AppError) {
	notes, err := s.documents.GetNotes(ctx, documentID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get notes", err)
	}
	return dto.ToNoteThread(notes), nil
}

// resolveStatus derives the document status from the recorded decisions.
func (s *DocumentService) resolveStatus(ctx context.Context, projectID uuid.UUID, signatures []entity.DocumentSignature) (entity.DocumentStatus, *errors.AppError) {
	signed := make(map[uuid.UUID]struct{}, len(signatures))
	for _, sig := range signatures {
		if sig.Action == entity.SignatureActionDeclined {
			return entity.DocumentStatusDeclined, nil
		}
		signed[sig.ParticipantID] = struct{}{}
	}

	participants, err := s.participants.GetByProjectID(ctx, projectID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to get participants", err)
	}
	if len(participants) == 0 {
		return entity.DocumentStatusPending, nil
	}
	for _, p := range participants {
		if _, ok := signed[p.ID]; !ok {
			return entity.DocumentStatusPending, nil
		}
	}
	return entity.DocumentStatusSigned, nil
}

func (s *DocumentService) accessibleProject(ctx context.Context, projectID uuid.UUID, caller Caller) (*projectentity.Project, *errors.AppError) {
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

func (s *DocumentService) accessibleDocument(ctx context.Context, documentID uuid.UUID, caller Caller) (*entity.Document, *projectentity.Project, *errors.AppError) {
	doc, err := s.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get document", err)
	}
	if doc == nil {
		return nil, nil, errors.NewAppError(errors.ErrNotFound, "Document not found", nil)
	}

	project, appErr := s.accessibleProject(ctx, doc.ProjectID, caller)
	if appErr != nil {
		return nil, nil, appErr
	}
	return doc, project, nil
}

// scheduleReminder enqueues the follow-up task. Failures are logged, not
// surfaced: the upload already succeeded.
func (s *DocumentService) scheduleReminder(ctx context.Context, documentID uuid.UUID) {
	if s.enqueuer == nil {
		return
	}
	delay := time.Duration(config.Get().Worker.ReminderDelayMins) * time.Minute
	if err := s.enqueuer.EnqueueDocumentReminder(ctx, documentID, delay); err != nil {
		logger.Warn("DocumentService:scheduleReminder", "error", err, "document_id", documentID)
	}
}

// notifyOthers writes notification rows for every participant except the
// acting one. Best effort.
func (s *DocumentService) notifyOthers(ctx context.Context, projectID uuid.UUID, caller Caller, typ notifentity.NotificationType, message string) {
	if s.notifications == nil {
		return
	}
	participants, err := s.participants.GetByProjectID(ctx, projectID)
	if err != nil {
		logger.Warn("DocumentService:notifyOthers", "error", err, "project_id", projectID)
		return
	}
	targets := make([]uuid.UUID, 0, len(participants))
	for _, p := range participants {
		if caller.Role == constants.RoleParticipant && p.ID == caller.ID {
			continue
		}
		targets = append(targets, p.ID)
	}
	if len(targets) == 0 {
		return
	}
	if err := s.notifications.NotifyProject(ctx, projectID, targets, typ, message); err != nil {
		logger.Warn("DocumentService:notifyOthers", "error", err, "project_id", projectID)
	}
}

func (s *DocumentService) publish(ctx context.Context, projectID uuid.UUID, kind string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.PublishProjectChange(ctx, projectID.String(), kind); err != nil {
		logger.Warn("DocumentService:publish", "error", err, "project_id", projectID)
	}
}

func allowedContentType(ct string) bool {
	if ct == "application/pdf" {
		return true
	}
	return strings.HasPrefix(ct, "image/")
}
