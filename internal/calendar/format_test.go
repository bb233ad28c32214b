package calendar

import (
	"errors"
	"testing"
)

func TestCivilDateTime_String(t *testing.T) {
	tests := []struct {
		c    CivilDateTime
		want string
	}{
		{CivilDateTime{2000, 1, 1, 12, 0, 0}, " 2000-01-01 12:00:00"},
		{CivilDateTime{2000, 1, 1, 12, 0, 59.4}, " 2000-01-01 12:00:59"},
		{CivilDateTime{2000, 1, 1, 12, 59, 59.6}, " 2000-01-01 13:00:00"},
		{CivilDateTime{-44, 3, 15, 9, 5, 3}, "  -44-03-15 09:05:03"},
		{CivilDateTime{12345, 12, 31, 0, 0, 0}, "12345-12-31 00:00:00"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestCivilDateTime_DateString(t *testing.T) {
	c := JDNToCivil(2299161.0)
	if got := c.DateString(); got != "1582-10-15" {
		t.Errorf("DateString() = %q, want 1582-10-15", got)
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		jdn  float64
		want string
	}{
		{2451545.0, "12:00:00"},
		{2451544.5, "00:00:00"},
		{2451545.25, "18:00:00"},
		{2436116.31, "19:26:24"},
	}

	for _, tt := range tests {
		if got := TimeOfDay(tt.jdn); got != tt.want {
			t.Errorf("TimeOfDay(%v) = %q, want %q", tt.jdn, got, tt.want)
		}
	}
}

func TestParseCivilDate(t *testing.T) {
	tests := []struct {
		in               string
		year, month, day int
		wantErr          bool
	}{
		{"2024-03-11", 2024, 3, 11, false},
		{"1582-10-15", 1582, 10, 15, false},
		{" 2000-1-1 ", 2000, 1, 1, false},
		{"-44-03-15", -44, 3, 15, false},
		{"0-01-01", 0, 1, 1, false},
		{"2024-03", 0, 0, 0, true},
		{"x-01-01", 0, 0, 0, true},
		{"2024--1-01", 0, 0, 0, true},
		{"2024-+3-+1", 0, 0, 0, true},
		{"+2024-03-01", 0, 0, 0, true},
		{"2024-03- 1", 0, 0, 0, true},
		{"2024/03/11", 0, 0, 0, true},
		{"", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			y, m, d, err := ParseCivilDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseCivilDate(%q) error = %v, want ErrInvalidDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCivilDate(%q) error = %v", tt.in, err)
			}
			if y != tt.year || m != tt.month || d != tt.day {
				t.Errorf("ParseCivilDate(%q) = %d, %d, %d", tt.in, y, m, d)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		second  float64
		wantErr bool
	}{
		{"12:30", 12, 30, 0, false},
		{"00:00:00", 0, 0, 0, false},
		{"23:59:59.5", 23, 59, 59.5, false},
		{"24:00", 0, 0, 0, true},
		{"12", 0, 0, 0, true},
		{"12:60", 0, 0, 0, true},
		{"12:00:60", 0, 0, 0, true},
		{"1:2:3:4", 0, 0, 0, true},
		{"+1:00", 0, 0, 0, true},
		{"12:+5", 0, 0, 0, true},
		{"12:00:+5", 0, 0, 0, true},
		{"12:00:NaN", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, s, err := ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("ParseClock(%q) error = %v, want ErrInvalidDate", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) error = %v", tt.in, err)
			}
			if h != tt.hour || m != tt.minute || s != tt.second {
				t.Errorf("ParseClock(%q) = %d, %d, %v", tt.in, h, m, s)
			}
		})
	}
}
