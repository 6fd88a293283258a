package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowContains(t *testing.T) {
	p := &Project{
		WindowStartDate: "2025-06-01",
		WindowEndDate:   "2025-06-07",
		WindowStartTime: "08:00",
		WindowEndTime:   "20:00",
	}

	tests := []struct {
		name  string
		date  string
		start string
		end   string
		want  bool
	}{
		{"inside window", "2025-06-03", "09:00", "10:30", true},
		{"exactly the window", "2025-06-01", "08:00", "20:00", true},
		{"date before range", "2025-05-31", "09:00", "10:00", false},
		{"date after range", "2025-06-08", "09:00", "10:00", false},
		{"starts too early", "2025-06-03", "07:59", "10:00", false},
		{"ends too late", "2025-06-03", "09:00", "20:01", false},
		{"zero length", "2025-06-03", "09:00", "09:00", false},
		{"inverted", "2025-06-03", "10:00", "09:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.WindowContains(tt.date, tt.start, tt.end))
		})
	}
}

func TestWindowContainsFullDay(t *testing.T) {
	p := &Project{
		WindowStartDate: "2025-06-01",
		WindowEndDate:   "2025-06-01",
		WindowStartTime: "00:00",
		WindowEndTime:   "24:00",
	}

	assert.True(t, p.WindowContains("2025-06-01", "00:00", "24:00"))
	assert.True(t, p.WindowContains("2025-06-01", "23:00", "24:00"))
}
