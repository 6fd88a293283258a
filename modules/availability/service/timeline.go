package service

import (
	"sort"

	"github.com/soheiltpr/calfind/modules/availability/entity"
)

// slotEvent is one interval boundary in the per-date sweep.
type slotEvent struct {
	minutes       int
	start         bool
	participantID string
}

// BuildTimeline runs a sweep line over every participant's slots and
// produces, per date, an ordered list of disjoint segments each tagged with
// the set of participants available throughout that segment.
//
// Tie-break contract: at equal minutes, end events are processed before
// start events. When one slot ends exactly where another begins, the two
// never appear to overlap at that instant and no zero-width segment is
// emitted between them.
func BuildTimeline(records []entity.ParticipantAvailability) entity.TimelineByDate {
	eventsByDate := make(map[string][]slotEvent)

	for _, rec := range records {
		for _, s := range rec.Slots {
			start, end, ok := slotMinutes(s)
			if !ok {
				continue
			}
			eventsByDate[s.Date] = append(eventsByDate[s.Date],
				slotEvent{minutes: start, start: true, participantID: rec.ID},
				slotEvent{minutes: end, start: false, participantID: rec.ID},
			)
		}
	}

	timeline := make(entity.TimelineByDate, len(eventsByDate))
	for date, events := range eventsByDate {
		segments := sweepDate(events)
		if len(segments) > 0 {
			timeline[date] = segments
		}
	}

	return timeline
}

// sweepDate processes one date's boundary events in time order while
// maintaining the set of currently available participants, emitting a
// segment every time that set is about to change across a non-empty span.
func sweepDate(events []slotEvent) []entity.TimelineSegment {
	sort.Slice(events, func(i, j int) bool {
		if events[i].minutes != events[j].minutes {
			return events[i].minutes < events[j].minutes
		}
		if events[i].start != events[j].start {
			// End before start on ties.
			return !events[i].start
		}
		return events[i].participantID < events[j].participantID
	})

	// Membership is a set, not a count: repeated starts or ends for the
	// same participant are idempotent.
	active := make(map[string]struct{})
	segments := []entity.TimelineSegment{}
	boundary := 0

	for _, ev := range events {
		if len(active) > 0 && ev.minutes > boundary {
			segments = append(segments, entity.TimelineSegment{
				StartMinutes:   boundary,
				EndMinutes:     ev.minutes,
				ParticipantIDs: snapshot(active),
			})
		}
		if ev.start {
			active[ev.participantID] = struct{}{}
		} else {
			delete(active, ev.participantID)
		}
		boundary = ev.minutes
	}

	return segments
}

// snapshot copies the active set into a sorted slice so output is identical
// regardless of input ordering.
func snapshot(active map[string]struct{}) []string {
	ids := make([]string, 0, len(active))
	for id := range active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
