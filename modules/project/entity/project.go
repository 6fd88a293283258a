package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is one coordination project: an allowed date/time window inside
// which invited participants submit availability, plus any documents routed
// for signature. ShareSlug is the public join handle.
type Project struct {
	ID              uuid.UUID `db:"id" json:"id"`
	OrganizerID     uuid.UUID `db:"organizer_id" json:"organizer_id"`
	Title           string    `db:"title" json:"title"`
	Description     *string   `db:"description" json:"description,omitempty"`
	ShareSlug       string    `db:"share_slug" json:"share_slug"`
	WindowStartDate string    `db:"window_start_date" json:"window_start_date"`
	WindowEndDate   string    `db:"window_end_date" json:"window_end_date"`
	WindowStartTime string    `db:"window_start_time" json:"window_start_time"`
	WindowEndTime   string    `db:"window_end_time" json:"window_end_time"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// WindowContains reports whether a slot lies fully inside the project's
// allowed window. All comparisons are lexicographic, which is chronological
// for zero-padded ISO dates and clock times.
func (p *Project) WindowContains(date, startTime, endTime string) bool {
	if date < p.WindowStartDate || date > p.WindowEndDate {
		return false
	}
	if startTime < p.WindowStartTime || endTime > p.WindowEndTime {
		return false
	}
	return startTime < endTime
}
