package timeclock

import (
	"testing"
)

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"08:00", 480, true},
		{"21:15", 1275, true},
		{"0:00", 0, true},
		{"23:59", 1439, true},
		{"8 AM", 480, true},
		{"8AM", 480, true},
		{"8 am", 480, true},
		{"8 PM", 1200, true},
		{"7:30 PM", 1170, true},
		{"12 AM", 0, true},
		{"12 PM", 720, true},
		{"12:30 AM", 30, true},
		{"  08:00  ", 480, true},
		{"7", 420, true},
		{"0", 0, true},
		{"23", 1380, true},
		{"25:00", 0, false},
		{"08:60", 0, false},
		{"24:00", 0, false},
		{"13 PM", 0, false},
		{"24", 0, false},
		{"foo", 0, false},
		{"", 0, false},
		{"7:5", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTimeToMinutes(c.input)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseTimeToMinutes(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

// Every valid minute value must survive a render/parse round trip through
// the canonical HH:MM form.
func TestParseTimeToMinutes_RoundTrip(t *testing.T) {
	for m := 0; m < 1440; m++ {
		rendered := FormatMinutes(m)
		parsed, ok := ParseTimeToMinutes(rendered)
		if !ok {
			t.Fatalf("ParseTimeToMinutes(%q) failed for minute %d", rendered, m)
		}
		if parsed != m {
			t.Fatalf("round trip of minute %d via %q = %d", m, rendered, parsed)
		}
	}
}

func TestCalculateHours(t *testing.T) {
	cases := []struct {
		name         string
		checkIn      string
		checkOut     string
		breakMinutes int
		baseHours    float64
		working      float64
		ot           float64
	}{
		{"under base", "08:00", "18:00", 60, 10, 9.0, 0},
		{"one hour ot", "08:00", "20:00", 60, 10, 11.0, 1.0},
		{"crosses midnight", "22:00", "06:00", 0, 10, 8.0, 0},
		{"break exceeds shift", "09:00", "17:00", 600, 10, 0, 0},
		{"am pm input", "08:00 AM", "06:00 PM", 60, 10, 9.0, 0},
		{"fractional", "08:00", "16:45", 30, 8, 8.25, 0.25},
		{"one minute shift", "08:00", "08:01", 0, 10, 0.02, 0},
	}
	for _, c := range cases {
		got, err := CalculateHours(c.checkIn, c.checkOut, c.breakMinutes, c.baseHours)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if got.WorkingHours != c.working || got.OTHours != c.ot {
			t.Errorf("%s: CalculateHours = {%v, %v}, want {%v, %v}",
				c.name, got.WorkingHours, got.OTHours, c.working, c.ot)
		}
	}
}

func TestCalculateHours_InvalidTime(t *testing.T) {
	if _, err := CalculateHours("bad", "17:00", 0, 10); err != ErrInvalidTimeFormat {
		t.Errorf("CalculateHours with bad check-in: err = %v, want ErrInvalidTimeFormat", err)
	}
	if _, err := CalculateHours("09:00", "25:61", 0, 10); err != ErrInvalidTimeFormat {
		t.Errorf("CalculateHours with bad check-out: err = %v, want ErrInvalidTimeFormat", err)
	}
}
