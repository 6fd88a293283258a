package dto

import (
	"github.com/soheiltpr/calfind/modules/participant/entity"
)

// ===================== Request DTOs =====================

// InviteParticipantsRequest pre-creates named participants for a project
type InviteParticipantsRequest struct {
	Names []string `json:"names" validate:"required,min=1"`
}

// JoinRequest authenticates (or creates) a participant by name+password
type JoinRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
}

// ===================== Response DTOs =====================

// ParticipantResponse exposes the attribution-safe participant fields
type ParticipantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JoinResponse carries the project-scoped participant token
type JoinResponse struct {
	Token       string              `json:"token"`
	Participant ParticipantResponse `json:"participant"`
}

// PublicProjectResponse is the unauthenticated share-link view: the window
// plus participant names, never their slots.
type PublicProjectResponse struct {
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	WindowStartDate string                `json:"window_start_date"`
	WindowEndDate   string                `json:"window_end_date"`
	WindowStartTime string                `json:"window_start_time"`
	WindowEndTime   string                `json:"window_end_time"`
	Participants    []ParticipantResponse `json:"participants"`
}

func ToParticipantResponse(p *entity.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:   p.ID.String(),
		Name: p.Name,
	}
}
