package entity

// Slot is the in-memory form of a single availability range, detached from
// any database row.
type Slot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ParticipantAvailability is one participant's full slot set for a project.
// The ID is opaque; it is only carried through for attribution.
type ParticipantAvailability struct {
	ID    string `json:"id"`
	Slots []Slot `json:"slots"`
}

// AggregatedSlot is one distinct (date, start, end) triple across all
// participants, with the IDs of every participant who submitted it.
type AggregatedSlot struct {
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	ParticipantIDs []string `json:"participant_ids"`
}

// TimelineSegment is a maximal sub-range of one date over which the set of
// available participants is constant. Minutes are since midnight; the end
// bound is exclusive.
type TimelineSegment struct {
	StartMinutes   int      `json:"start_minutes"`
	EndMinutes     int      `json:"end_minutes"`
	ParticipantIDs []string `json:"participant_ids"`
}

// TimelineByDate maps an ISO date to its ordered, non-overlapping segments.
type TimelineByDate map[string][]TimelineSegment
