package dto

import (
	"time"

	"github.com/soheiltpr/calfind/modules/document/entity"
)

// ===================== Request DTOs =====================

// CreateNoteRequest adds a note (or reply) to a document's thread
type CreateNoteRequest struct {
	Body     string `json:"body" validate:"required"`
	ParentID string `json:"parent_id,omitempty"`
}

// ===================== Response DTOs =====================

// SignatureResponse is one participant's decision
type SignatureResponse struct {
	ParticipantID string    `json:"participant_id"`
	Action        string    `json:"action"`
	SignedAt      time.Time `json:"signed_at"`
}

// DocumentResponse for document details
type DocumentResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	ContentType string              `json:"content_type"`
	SizeBytes   int64               `json:"size_bytes"`
	Status      string              `json:"status"`
	UploaderID  string              `json:"uploader_id,omitempty"`
	Signatures  []SignatureResponse `json:"signatures,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// DocumentURLResponse carries a short-lived signed download URL
type DocumentURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NoteResponse is one note with its nested replies
type NoteResponse struct {
	ID            string         `json:"id"`
	ParticipantID string         `json:"participant_id"`
	Body          string         `json:"body"`
	CreatedAt     time.Time      `json:"created_at"`
	Replies       []NoteResponse `json:"replies,omitempty"`
}

func ToDocumentResponse(d *entity.Document, signatures []entity.DocumentSignature) *DocumentResponse {
	resp := &DocumentResponse{
		ID:          d.ID.String(),
		Title:       d.Title,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
	if d.UploaderID != nil {
		resp.UploaderID = d.UploaderID.String()
	}
	for _, sig := range signatures {
		resp.Signatures = append(resp.Signatures, SignatureResponse{
			ParticipantID: sig.ParticipantID.String(),
			Action:        string(sig.Action),
			SignedAt:      sig.SignedAt,
		})
	}
	return resp
}

// ToNoteThread nests replies under their top-level notes, both levels in
// chronological order.
func ToNoteThread(notes []entity.DocumentNote) []NoteResponse {
	replies := make(map[string][]NoteResponse)
	top := make([]NoteResponse, 0)

	for _, n := range notes {
		resp := NoteResponse{
			ID:            n.ID.String(),
			ParticipantID: n.ParticipantID.String(),
			Body:          n.Body,
			CreatedAt:     n.CreatedAt,
		}
		if n.ParentID != nil {
			parent := n.ParentID.String()
			replies[parent] = append(replies[parent], resp)
			continue
		}
		top = append(top, resp)
	}

	for i := range top {
		top[i].Replies = replies[top[i].ID]
	}
	return top
}
