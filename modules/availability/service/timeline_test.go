package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soheiltpr/calfind/modules/availability/entity"
)

func slot(date, start, end string) entity.Slot {
	return entity.Slot{Date: date, StartTime: start, EndTime: end}
}

func TestBuildTimeline_OverlappingSlots(t *testing.T) {
	// P1 09:00-10:00, P2 09:30-10:30 on the same date.
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-10", "09:00", "10:00")}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-10", "09:30", "10:30")}},
	}

	timeline := BuildTimeline(records)
	require.Len(t, timeline, 1)

	segments := timeline["2024-03-10"]
	require.Len(t, segments, 3)

	assert.Equal(t, entity.TimelineSegment{StartMinutes: 540, EndMinutes: 570, ParticipantIDs: []string{"P1"}}, segments[0])
	assert.Equal(t, entity.TimelineSegment{StartMinutes: 570, EndMinutes: 600, ParticipantIDs: []string{"P1", "P2"}}, segments[1])
	assert.Equal(t, entity.TimelineSegment{StartMinutes: 600, EndMinutes: 630, ParticipantIDs: []string{"P2"}}, segments[2])
}

func TestBuildTimeline_BackToBackSlotsDoNotOverlap(t *testing.T) {
	// One slot ends exactly where the other starts. The end-before-start
	// tie-break must prevent a phantom overlap at minute 600.
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-10", "09:00", "10:00")}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-10", "10:00", "11:00")}},
	}

	segments := BuildTimeline(records)["2024-03-10"]
	require.Len(t, segments, 2)

	assert.Equal(t, entity.TimelineSegment{StartMinutes: 540, EndMinutes: 600, ParticipantIDs: []string{"P1"}}, segments[0])
	assert.Equal(t, entity.TimelineSegment{StartMinutes: 600, EndMinutes: 660, ParticipantIDs: []string{"P2"}}, segments[1])
}

func TestBuildTimeline_EmptyInput(t *testing.T) {
	timeline := BuildTimeline(nil)
	assert.NotNil(t, timeline)
	assert.Empty(t, timeline)

	timeline = BuildTimeline([]entity.ParticipantAvailability{})
	assert.Empty(t, timeline)
}

func TestBuildTimeline_IdenticalSlotsMerge(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-11", "14:00", "15:00")}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-11", "14:00", "15:00")}},
	}

	segments := BuildTimeline(records)["2024-03-11"]
	require.Len(t, segments, 1)
	assert.Equal(t, entity.TimelineSegment{StartMinutes: 840, EndMinutes: 900, ParticipantIDs: []string{"P1", "P2"}}, segments[0])
}

func TestBuildTimeline_DropsDegenerateSlots(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-10", "09:00", "09:00"), // zero length
			slot("2024-03-10", "11:00", "10:00"), // inverted
			slot("2024-03-10", "9h00", "10:00"),  // malformed
		}},
	}

	assert.Empty(t, BuildTimeline(records))
}

func TestBuildTimeline_EndClampedToMidnight(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-10", "23:00", "24:00")}},
	}

	segments := BuildTimeline(records)["2024-03-10"]
	require.Len(t, segments, 1)
	assert.Equal(t, 1380, segments[0].StartMinutes)
	assert.Equal(t, 1440, segments[0].EndMinutes)
}

func TestBuildTimeline_GapsAreOmitted(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-10", "09:00", "10:00"),
			slot("2024-03-10", "14:00", "15:00"),
		}},
	}

	segments := BuildTimeline(records)["2024-03-10"]
	require.Len(t, segments, 2)
	assert.Equal(t, 600, segments[0].EndMinutes)
	assert.Equal(t, 840, segments[1].StartMinutes)
}

func TestBuildTimeline_MultipleDatesIndependent(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-10", "09:00", "10:00"),
			slot("2024-03-11", "09:00", "10:00"),
		}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-11", "09:30", "10:30")}},
	}

	timeline := BuildTimeline(records)
	require.Len(t, timeline, 2)
	assert.Len(t, timeline["2024-03-10"], 1)
	assert.Len(t, timeline["2024-03-11"], 3)
}

func TestBuildTimeline_RepeatedBoundariesIdempotent(t *testing.T) {
	// Overlapping slots from the same participant: membership is a set, so
	// the repeated start does not double-count.
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-10", "09:00", "10:00"),
			slot("2024-03-10", "09:00", "10:00"),
		}},
	}

	segments := BuildTimeline(records)["2024-03-10"]
	require.Len(t, segments, 1)
	assert.Equal(t, []string{"P1"}, segments[0].ParticipantIDs)
}

func TestBuildTimeline_OrderIndependence(t *testing.T) {
	a := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-10", "09:00", "10:00"), slot("2024-03-10", "11:00", "12:00")}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-10", "09:30", "11:30")}},
		{ID: "P3", Slots: []entity.Slot{slot("2024-03-10", "08:00", "09:30")}},
	}
	b := []entity.ParticipantAvailability{
		{ID: "P3", Slots: []entity.Slot{slot("2024-03-10", "08:00", "09:30")}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-10", "09:30", "11:30")}},
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-10", "11:00", "12:00"), slot("2024-03-10", "09:00", "10:00")}},
	}

	assert.Equal(t, BuildTimeline(a), BuildTimeline(b))
}

func TestBuildTimeline_SegmentsSortedAndDisjoint(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-10", "09:00", "12:00")}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-10", "10:00", "11:00")}},
		{ID: "P3", Slots: []entity.Slot{slot("2024-03-10", "08:30", "10:30")}},
	}

	segments := BuildTimeline(records)["2024-03-10"]
	require.NotEmpty(t, segments)

	covered := 0
	for i, seg := range segments {
		assert.Less(t, seg.StartMinutes, seg.EndMinutes, "segment %d has no width", i)
		assert.NotEmpty(t, seg.ParticipantIDs, "segment %d has no participants", i)
		if i > 0 {
			assert.GreaterOrEqual(t, seg.StartMinutes, segments[i-1].EndMinutes, "segment %d overlaps previous", i)
		}
		covered += seg.EndMinutes - seg.StartMinutes
	}

	// Union of input ranges: 08:30-12:00 with no internal gap.
	assert.Equal(t, 210, covered)
	assert.Equal(t, 510, segments[0].StartMinutes)
	assert.Equal(t, 720, segments[len(segments)-1].EndMinutes)
}

func TestBuildTimeline_AdjacentSameSetSegmentsFromOneParticipant(t *testing.T) {
	// Back-to-back slots from the same participant produce continuous
	// coverage with no artificial break and no lost minutes.
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-10", "09:00", "10:00"),
			slot("2024-03-10", "10:00", "11:00"),
		}},
	}

	segments := BuildTimeline(records)["2024-03-10"]
	require.NotEmpty(t, segments)

	covered := 0
	for i, seg := range segments {
		if i > 0 {
			assert.Equal(t, segments[i-1].EndMinutes, seg.StartMinutes)
		}
		covered += seg.EndMinutes - seg.StartMinutes
	}
	assert.Equal(t, 120, covered)
	assert.Equal(t, 540, segments[0].StartMinutes)
	assert.Equal(t, 660, segments[len(segments)-1].EndMinutes)
}
