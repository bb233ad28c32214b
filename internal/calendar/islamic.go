package calendar

import "math"

const (
	// hijriOffset moves a J2000-relative day count onto the Hijri epoch
	// (1 Muharram 1 AH, JDN 1948440).
	hijriOffset = 503105

	hijriCycleDays = 10631   // 30 lunar years
	hijriYearDays  = 354.366 // mean lunar year
)

// HijriDate is a date in the tabular Islamic calendar.
type HijriDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// JDNToHijri converts a day number to the tabular Islamic calendar.
//
// jdn is an absolute Julian Day Number (J2000 is 2451545). It is rebased to
// a count of days since J2000 before hijriOffset is added, so the formula
// d = jdn + 503105 applies to that J2000-relative count, not to jdn itself.
//
// This is a closed-form approximation over the 30-year leap cycle (leap
// years 2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29), not an observation of the
// moon. Day numbers before the Hijri epoch produce year values <= 0.
func JDNToHijri(jdn int) HijriDate {
	d := float64(jdn - J2000 + hijriOffset)

	cycle := math.Floor(d / hijriCycleDays)
	d -= cycle * hijriCycleDays

	// +0.5 puts the leap years of the cycle on the right side of the boundary.
	y := math.Floor((d + 0.5) / hijriYearDays)
	d -= math.Floor(y*hijriYearDays + 0.5)

	// +0.11 and the 29.51 divisor keep days 354 and 355 in the 12th month.
	m := math.Floor((d + 0.11) / 29.51)
	d -= math.Floor(m*29.5 + 0.5)

	return HijriDate{
		Year:  int(cycle*30 + y + 1),
		Month: int(m + 1),
		Day:   int(d + 1),
	}
}

// CivilToHijri converts a civil date to the tabular Islamic calendar.
func CivilToHijri(year, month, day int) HijriDate {
	return JDNToHijri(int(math.Floor(DateToJDN(year, month, day))))
}
