package service

import (
	"sort"

	"github.com/soheiltpr/calfind/core/utils"
	"github.com/soheiltpr/calfind/modules/availability/entity"
)

// AggregateSlots collapses byte-identical slots across participants into one
// bucket per distinct (date, start, end) triple. No interval merging happens
// here; two slots differing by a single minute stay separate buckets. Output
// is sorted by date then start time (lexicographic, which is chronological
// for zero-padded ISO strings).
func AggregateSlots(records []entity.ParticipantAvailability) []entity.AggregatedSlot {
	buckets := make(map[string]*entity.AggregatedSlot)

	for _, rec := range records {
		// The same participant submitting the same triple twice counts once.
		seen := make(map[string]struct{})

		for _, s := range rec.Slots {
			if _, _, ok := slotMinutes(s); !ok {
				continue
			}

			key := s.Date + "|" + s.StartTime + "|" + s.EndTime
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if b, ok := buckets[key]; ok {
				b.ParticipantIDs = append(b.ParticipantIDs, rec.ID)
				continue
			}
			buckets[key] = &entity.AggregatedSlot{
				Date:           s.Date,
				StartTime:      s.StartTime,
				EndTime:        s.EndTime,
				ParticipantIDs: []string{rec.ID},
			}
		}
	}

	out := make([]entity.AggregatedSlot, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].StartTime != out[j].StartTime {
			return out[i].StartTime < out[j].StartTime
		}
		return out[i].EndTime < out[j].EndTime
	})

	return out
}

// slotMinutes converts a slot's clock strings to minute offsets and reports
// whether the slot is usable. Degenerate slots (unparseable, end <= start,
// start past the day boundary) are dropped; an end past midnight is clamped
// to 1440 since slots never span midnight.
func slotMinutes(s entity.Slot) (start, end int, ok bool) {
	start, ok = utils.TimeToMinutes(s.StartTime)
	if !ok {
		return 0, 0, false
	}
	end, ok = utils.TimeToMinutes(s.EndTime)
	if !ok {
		return 0, 0, false
	}
	if !utils.ValidDate(s.Date) {
		return 0, 0, false
	}
	if end > 1440 {
		end = 1440
	}
	if end <= start || start >= 1440 {
		return 0, 0, false
	}
	return start, end, true
}
