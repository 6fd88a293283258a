package dto

import (
	"time"

	"github.com/soheiltpr/calfind/modules/project/entity"
)

// ===================== Request DTOs =====================

// CreateProjectRequest for creating a new project
type CreateProjectRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	WindowStartDate string `json:"window_start_date" validate:"required"` // YYYY-MM-DD
	WindowEndDate   string `json:"window_end_date" validate:"required"`   // YYYY-MM-DD
	WindowStartTime string `json:"window_start_time"`                     // HH:MM, default 00:00
	WindowEndTime   string `json:"window_end_time"`                       // HH:MM, default 24:00
}

// UpdateProjectRequest for updating project details
type UpdateProjectRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	WindowStartDate string `json:"window_start_date"`
	WindowEndDate   string `json:"window_end_date"`
	WindowStartTime string `json:"window_start_time"`
	WindowEndTime   string `json:"window_end_time"`
}

// ===================== Response DTOs =====================

// ProjectResponse for project details
type ProjectResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ShareSlug       string    `json:"share_slug"`
	WindowStartDate string    `json:"window_start_date"`
	WindowEndDate   string    `json:"window_end_date"`
	WindowStartTime string    `json:"window_start_time"`
	WindowEndTime   string    `json:"window_end_time"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToProjectResponse(p *entity.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:              p.ID.String(),
		Title:           p.Title,
		ShareSlug:       p.ShareSlug,
		WindowStartDate: p.WindowStartDate,
		WindowEndDate:   p.WindowEndDate,
		WindowStartTime: p.WindowStartTime,
		WindowEndTime:   p.WindowEndTime,
		CreatedAt:       p.CreatedAt,
	}
	if p.Description != nil {
		resp.Description = *p.Description
	}
	return resp
}
