package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soheiltpr/calfind/modules/document/entity"
)

func TestToNoteThread(t *testing.T) {
	docID := uuid.New()
	top1 := uuid.New()
	top2 := uuid.New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	notes := []entity.DocumentNote{
		{ID: top1, DocumentID: docID, ParticipantID: uuid.New(), Body: "first", CreatedAt: base},
		{ID: uuid.New(), DocumentID: docID, ParentID: &top1, ParticipantID: uuid.New(), Body: "reply a", CreatedAt: base.Add(time.Minute)},
		{ID: top2, DocumentID: docID, ParticipantID: uuid.New(), Body: "second", CreatedAt: base.Add(2 * time.Minute)},
		{ID: uuid.New(), DocumentID: docID, ParentID: &top1, ParticipantID: uuid.New(), Body: "reply b", CreatedAt: base.Add(3 * time.Minute)},
	}

	thread := ToNoteThread(notes)

	require.Len(t, thread, 2)
	assert.Equal(t, "first", thread[0].Body)
	assert.Equal(t, "second", thread[1].Body)

	require.Len(t, thread[0].Replies, 2)
	assert.Equal(t, "reply a", thread[0].Replies[0].Body)
	assert.Equal(t, "reply b", thread[0].Replies[1].Body)
	assert.Empty(t, thread[1].Replies)
}

func TestToNoteThreadEmpty(t *testing.T) {
	assert.Empty(t, ToNoteThread(nil))
}

func TestToDocumentResponse(t *testing.T) {
	uploader := uuid.New()
	doc := &entity.Document{
		ID:          uuid.New(),
		ProjectID:   uuid.New(),
		UploaderID:  &uploader,
		Title:       "contract.pdf",
		ContentType: "application/pdf",
		SizeBytes:   1024,
		Status:      entity.DocumentStatusPending,
	}
	sigs := []entity.DocumentSignature{
		{ParticipantID: uuid.New(), Action: entity.SignatureActionSigned},
	}

	resp := ToDocumentResponse(doc, sigs)

	assert.Equal(t, doc.ID.String(), resp.ID)
	assert.Equal(t, uploader.String(), resp.UploaderID)
	assert.Equal(t, "pending", resp.Status)
	require.Len(t, resp.Signatures, 1)
	assert.Equal(t, "signed", resp.Signatures[0].Action)
}
