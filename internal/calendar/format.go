package calendar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDate is returned when date or time text cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// String formats c as "YYYY-MM-DD HH:MM:SS" with the year right-aligned in
// five columns. Seconds are rounded to the nearest whole second and carried
// into the minute and hour.
func (c CivilDateTime) String() string {
	h, m := c.Hour, c.Minute
	s := int(math.Floor(c.Second + 0.5))
	if s >= 60 {
		s -= 60
		m++
	}
	if m >= 60 {
		m -= 60
		h++
	}
	return fmt.Sprintf("%5d-%02d-%02d %02d:%02d:%02d", c.Year, c.Month, c.Day, h, m, s)
}

// DateString formats the date part of c as "Y-MM-DD".
func (c CivilDateTime) DateString() string {
	return fmt.Sprintf("%d-%02d-%02d", c.Year, c.Month, c.Day)
}

// TimeOfDay formats the time part of jdn as "HH:MM:SS", rounded to the
// nearest second.
func TimeOfDay(jdn float64) string {
	jdn += 0.5
	frac := jdn - math.Floor(jdn)
	s := int(math.Floor(frac*86400 + 0.5))
	h := s / 3600
	s -= h * 3600
	m := s / 60
	s -= m * 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseCivilDate parses "Y-M-D". The year may be zero or negative
// ("-44-03-15"). Month and day are only checked for being numbers; range
// checks are left to the caller.
func ParseCivilDate(s string) (year, month, day int, err error) {
	s = strings.TrimSpace(s)
	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q: expected year-month-day", ErrInvalidDate, s)
	}

	var fields [3]int
	for i, p := range parts {
		v, ok := parseDigits(p)
		if !ok {
			return 0, 0, 0, fmt.Errorf("%w: %q: field %d is not a number", ErrInvalidDate, s, i+1)
		}
		fields[i] = v
	}

	return sign * fields[0], fields[1], fields[2], nil
}

// ParseClock parses "HH:MM" or "HH:MM:SS[.fff]".
func ParseClock(s string) (hour, minute int, second float64, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("%w: time %q: expected HH:MM[:SS]", ErrInvalidDate, s)
	}

	hour, ok := parseDigits(parts[0])
	if !ok || hour > 23 {
		return 0, 0, 0, fmt.Errorf("%w: time %q: bad hour", ErrInvalidDate, s)
	}
	minute, ok = parseDigits(parts[1])
	if !ok || minute > 59 {
		return 0, 0, 0, fmt.Errorf("%w: time %q: bad minute", ErrInvalidDate, s)
	}
	if len(parts) == 3 {
		if !startsWithDigit(parts[2]) {
			return 0, 0, 0, fmt.Errorf("%w: time %q: bad second", ErrInvalidDate, s)
		}
		second, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || second >= 60 {
			return 0, 0, 0, fmt.Errorf("%w: time %q: bad second", ErrInvalidDate, s)
		}
	}
	return hour, minute, second, nil
}

// parseDigits parses an unsigned decimal field. Unlike strconv.Atoi it
// rejects a leading sign.
func parseDigits(s string) (int, bool) {
	if !startsWithDigit(s) {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
