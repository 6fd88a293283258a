package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/soheiltpr/calfind/modules/availability/entity"
)

// RenderTimelineICS exports a timeline as an iCalendar document: one VEVENT
// per segment, summarized with the names of the available participants.
// Segment times are rendered as floating local times since the timeline has
// no timezone of its own.
func RenderTimelineICS(title string, timeline entity.TimelineByDate, names map[string]string) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//calfind//availability//EN")
	cal.SetXWRCalName(title)

	dates := make([]string, 0, len(timeline))
	for date := range timeline {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}

		for i, seg := range timeline[date] {
			event := cal.AddEvent(fmt.Sprintf("%s-%d@calfind", date, i))
			event.SetDtStampTime(time.Now().UTC())
			event.SetStartAt(day.Add(time.Duration(seg.StartMinutes) * time.Minute))
			event.SetEndAt(day.Add(time.Duration(seg.EndMinutes) * time.Minute))
			event.SetSummary(segmentSummary(seg, names))
		}
	}

	return cal.Serialize(), nil
}

func segmentSummary(seg entity.TimelineSegment, names map[string]string) string {
	labels := make([]string, 0, len(seg.ParticipantIDs))
	for _, id := range seg.ParticipantIDs {
		if name, ok := names[id]; ok && name != "" {
			labels = append(labels, name)
			continue
		}
		labels = append(labels, id)
	}
	return fmt.Sprintf("Available (%d): %s", len(labels), strings.Join(labels, ", "))
}
