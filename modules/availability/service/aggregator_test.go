package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soheiltpr/calfind/modules/availability/entity"
)

func TestAggregateSlots_Empty(t *testing.T) {
	out := AggregateSlots(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	out = AggregateSlots([]entity.ParticipantAvailability{})
	assert.Empty(t, out)
}

func TestAggregateSlots_IdenticalSlotsCollapse(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-11", "14:00", "15:00")}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-11", "14:00", "15:00")}},
	}

	out := AggregateSlots(records)
	require.Len(t, out, 1)
	assert.Equal(t, "2024-03-11", out[0].Date)
	assert.Equal(t, "14:00", out[0].StartTime)
	assert.Equal(t, "15:00", out[0].EndTime)
	assert.ElementsMatch(t, []string{"P1", "P2"}, out[0].ParticipantIDs)
}

func TestAggregateSlots_NearMissesStayDistinct(t *testing.T) {
	// One minute of difference means a different bucket; interval merging is
	// the timeline builder's job, not the aggregator's.
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{slot("2024-03-11", "14:00", "15:00")}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-11", "14:01", "15:00")}},
	}

	out := AggregateSlots(records)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"P1"}, out[0].ParticipantIDs)
	assert.Equal(t, []string{"P2"}, out[1].ParticipantIDs)
}

func TestAggregateSlots_SortedByDateThenStart(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-12", "09:00", "10:00"),
			slot("2024-03-10", "15:00", "16:00"),
			slot("2024-03-10", "08:00", "09:00"),
		}},
	}

	out := AggregateSlots(records)
	require.Len(t, out, 3)
	assert.Equal(t, "2024-03-10", out[0].Date)
	assert.Equal(t, "08:00", out[0].StartTime)
	assert.Equal(t, "2024-03-10", out[1].Date)
	assert.Equal(t, "15:00", out[1].StartTime)
	assert.Equal(t, "2024-03-12", out[2].Date)
}

func TestAggregateSlots_SameParticipantDuplicateCountsOnce(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-11", "14:00", "15:00"),
			slot("2024-03-11", "14:00", "15:00"),
		}},
	}

	out := AggregateSlots(records)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"P1"}, out[0].ParticipantIDs)
}

func TestAggregateSlots_DropsDegenerateSlots(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-11", "14:00", "14:00"),
			slot("2024-03-11", "16:00", "15:00"),
			slot("not-a-date", "14:00", "15:00"),
			slot("2024-03-11", "14:00", "15:00"),
		}},
	}

	out := AggregateSlots(records)
	require.Len(t, out, 1)
	assert.Equal(t, "14:00", out[0].StartTime)
}

func TestAggregateSlots_AttributionIsExact(t *testing.T) {
	records := []entity.ParticipantAvailability{
		{ID: "P1", Slots: []entity.Slot{
			slot("2024-03-10", "09:00", "10:00"),
			slot("2024-03-11", "09:00", "10:00"),
		}},
		{ID: "P2", Slots: []entity.Slot{slot("2024-03-10", "09:00", "10:00")}},
		{ID: "P3", Slots: []entity.Slot{slot("2024-03-11", "09:00", "10:00")}},
	}

	out := AggregateSlots(records)
	require.Len(t, out, 2)
	assert.ElementsMatch(t, []string{"P1", "P2"}, out[0].ParticipantIDs)
	assert.ElementsMatch(t, []string{"P1", "P3"}, out[1].ParticipantIDs)
}
