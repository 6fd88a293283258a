package utils

import (
	"fmt"
	"time"
)

// TimeToMinutes parses a 24-hour "HH:MM" clock string into minutes since
// midnight. "24:00" is accepted as the end-of-day boundary (1440). The
// second return is false for anything that is not a well-formed clock time.
func TimeToMinutes(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}

	var hh, mm int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hh, &mm); err != nil {
		return 0, false
	}
	if hh < 0 || hh > 24 || mm < 0 || mm > 59 {
		return 0, false
	}
	if hh == 24 && mm != 0 {
		return 0, false
	}

	return hh*60 + mm, true
}

// MinutesToTime renders minutes since midnight as "HH:MM", clamped to
// [0, 1440]. 1440 renders as "24:00".
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m > 1440 {
		m = 1440
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
