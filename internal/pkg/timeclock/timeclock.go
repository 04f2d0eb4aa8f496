package timeclock

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a check-in or check-out string
// matches none of the accepted time formats.
var ErrInvalidTimeFormat = errors.New("invalid time format")

var (
	clockRegex    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	meridiemRegex = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)$`)
	bareHourRegex = regexp.MustCompile(`^(\d{1,2})$`)
)

// ParseTimeToMinutes converts free-form time-of-day strings like "07:00",
// "21:15", "7 AM" or "7:30 PM" into minutes since midnight. A bare hour
// ("7") is read as a 24-hour value with zero minutes. The second return
// value is false when the string is unrecognized or out of range.
func ParseTimeToMinutes(s string) (int, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))

	// 24-hour HH:MM
	if m := clockRegex.FindStringSubmatch(normalized); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours < 24 && minutes < 60 {
			return hours*60 + minutes, true
		}
	}

	// 12-hour "7 AM" / "7:30PM"
	if m := meridiemRegex.FindStringSubmatch(normalized); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		if hours == 12 {
			hours = 0
		}
		if m[3] == "PM" {
			hours += 12
		}
		if hours < 24 && minutes < 60 {
			return hours*60 + minutes, true
		}
	}

	// Bare hour
	if m := bareHourRegex.FindStringSubmatch(normalized); m != nil {
		hours, _ := strconv.Atoi(m[1])
		if hours < 24 {
			return hours * 60, true
		}
	}

	return 0, false
}

// FormatMinutes renders minutes since midnight as canonical "HH:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ShiftHours is the computed split of a single shift.
type ShiftHours struct {
	WorkingHours float64
	OTHours      float64
}

// CalculateHours computes worked and overtime hours for one shift.
// A check-out earlier than the check-in is treated as a shift crossing
// midnight. The break is subtracted unconditionally and working time is
// clamped at zero when the break exceeds the shift. Both outputs are
// rounded to 2 decimals.
func CalculateHours(checkIn, checkOut string, breakMinutes int, baseHours float64) (ShiftHours, error) {
	inMin, ok := ParseTimeToMinutes(checkIn)
	if !ok {
		return ShiftHours{}, ErrInvalidTimeFormat
	}
	outMin, ok := ParseTimeToMinutes(checkOut)
	if !ok {
		return ShiftHours{}, ErrInvalidTimeFormat
	}

	duration := outMin - inMin
	if outMin < inMin {
		duration += 24 * 60
	}

	workingMinutes := duration - breakMinutes
	if workingMinutes < 0 {
		workingMinutes = 0
	}

	workingHours := Round2(float64(workingMinutes) / 60)
	otHours := Round2(math.Max(0, workingHours-baseHours))

	return ShiftHours{WorkingHours: workingHours, OTHours: otHours}, nil
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
