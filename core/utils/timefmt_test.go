package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:00", 540, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 1440, true},
		{"24:01", 0, false},
		{"25:00", 0, false},
		{"12:60", 0, false},
		{"9:00", 0, false},
		{"0900", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := TimeToMinutes(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:00", MinutesToTime(540))
	assert.Equal(t, "09:30", MinutesToTime(570))
	assert.Equal(t, "24:00", MinutesToTime(1440))

	// Out-of-range values clamp to the day bounds.
	assert.Equal(t, "00:00", MinutesToTime(-10))
	assert.Equal(t, "24:00", MinutesToTime(2000))
}

func TestRoundTrip(t *testing.T) {
	for m := 0; m <= 1440; m += 7 {
		got, ok := TimeToMinutes(MinutesToTime(m))
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-03-10"))
	assert.False(t, ValidDate("2024-3-10"))
	assert.False(t, ValidDate("10-03-2024"))
	assert.False(t, ValidDate("not-a-date"))
}
