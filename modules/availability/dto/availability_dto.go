package dto

import (
	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/availability/entity"
)

// ===================== Request DTOs =====================

// SlotInput is one slot as submitted by a client. The form UI sends clock
// strings; the drag/resize editor sends minute offsets, which are converted
// back to clamped "HH:MM" here before any validation or persistence.
type SlotInput struct {
	Date         string `json:"date" validate:"required"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	StartMinutes *int   `json:"start_minutes,omitempty"`
	EndMinutes   *int   `json:"end_minutes,omitempty"`
}

// Normalize resolves the minute-based form into clock strings.
func (s SlotInput) Normalize() entity.Slot {
	slot := entity.Slot{
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
	if slot.StartTime == "" && s.StartMinutes != nil {
		slot.StartTime = utils.MinutesToTime(*s.StartMinutes)
	}
	if slot.EndTime == "" && s.EndMinutes != nil {
		slot.EndTime = utils.MinutesToTime(*s.EndMinutes)
	}
	return slot
}

// ReplaceSlotsRequest replaces the caller's entire slot set for a project
type ReplaceSlotsRequest struct {
	Slots []SlotInput `json:"slots"`
}

// ===================== Response DTOs =====================

// ParticipantSlotsResponse groups raw slots per participant
type ParticipantSlotsResponse struct {
	ParticipantID string        `json:"participant_id"`
	Slots         []entity.Slot `json:"slots"`
}

// TimelineResponse is the per-date segment view plus the id-to-name map the
// UI needs for attribution
type TimelineResponse struct {
	Timeline         entity.TimelineByDate `json:"timeline"`
	ParticipantNames map[string]string     `json:"participant_names"`
}

// AggregateResponse lists deduplicated slot buckets
type AggregateResponse struct {
	Slots []entity.AggregatedSlot `json:"slots"`
}
