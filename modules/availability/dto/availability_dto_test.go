package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestSlotInputNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        SlotInput
		wantStart string
		wantEnd   string
	}{
		{
			name:      "clock strings pass through",
			in:        SlotInput{Date: "2025-06-01", StartTime: "09:00", EndTime: "10:30"},
			wantStart: "09:00",
			wantEnd:   "10:30",
		},
		{
			name:      "minute offsets converted",
			in:        SlotInput{Date: "2025-06-01", StartMinutes: intPtr(540), EndMinutes: intPtr(630)},
			wantStart: "09:00",
			wantEnd:   "10:30",
		},
		{
			name:      "clock strings win over minutes",
			in:        SlotInput{Date: "2025-06-01", StartTime: "08:00", EndTime: "09:00", StartMinutes: intPtr(540), EndMinutes: intPtr(630)},
			wantStart: "08:00",
			wantEnd:   "09:00",
		},
		{
			name:      "minutes clamped to the day",
			in:        SlotInput{Date: "2025-06-01", StartMinutes: intPtr(-10), EndMinutes: intPtr(2000)},
			wantStart: "00:00",
			wantEnd:   "24:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := tt.in.Normalize()
			assert.Equal(t, tt.in.Date, slot.Date)
			assert.Equal(t, tt.wantStart, slot.StartTime)
			assert.Equal(t, tt.wantEnd, slot.EndTime)
		})
	}
}
