package calendar

import "math"

const (
	// GregorianCutoverJDN is the first day counted with Gregorian rules
	// (1582-10-15).
	GregorianCutoverJDN = 2299161

	// gregorianCutoverKey is 1582-10-15 encoded as year*372 + month*31 + day.
	gregorianCutoverKey = 588829

	// J2000 is the JDN of 2000-01-01 at noon.
	J2000 = 2451545
)

// CivilToJDN converts a civil date and time of day to a Julian Day Number.
//
// Months above 12 carry into the year, so month 14 is February of the next
// year. Dates from 1582-10-15 onward use Gregorian leap rules; earlier dates
// use Julian rules. The ten skipped days of October 1582 are not modelled:
// 1582-10-04 and 1582-10-15 are consecutive.
func CivilToJDN(year, month, day, hour, minute int, second float64) float64 {
	dayFrac := float64(day) + ((second/60+float64(minute))/60+float64(hour))/24
	return jdnFromDayFraction(year, month, dayFrac)
}

// DateToJDN returns the JDN of the given date at 12:00:00.1.
func DateToJDN(year, month, day int) float64 {
	return CivilToJDN(year, month, day, 12, 0, 0.1)
}

// MonthStartJDN returns the JDN of the first day of the month at 12:00:00.1.
func MonthStartJDN(year, month int) float64 {
	return DateToJDN(year, month, 1)
}

// jdnFromDayFraction carries the day-count formula. day may hold a fraction
// of a day on top of the day of month.
func jdnFromDayFraction(year, month int, day float64) float64 {
	if month > 12 {
		year += (month - 1) / 12
		month = (month-1)%12 + 1
	}

	gregorian := float64(year*372+month*31)+math.Floor(day) >= gregorianCutoverKey

	if month <= 2 {
		month += 12
		year--
	}

	var n float64
	if gregorian {
		centuries := math.Floor(float64(year) / 100)
		n = 2 - centuries + math.Floor(centuries/4)
	}

	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		day + n - 1524.5
}

// JDNToCivil converts a Julian Day Number back to a civil date and time.
//
// Day numbers at or after GregorianCutoverJDN produce Gregorian dates,
// earlier ones Julian dates.
func JDNToCivil(jdn float64) CivilDateTime {
	d := math.Floor(jdn + 0.5)
	f := jdn + 0.5 - d

	if d >= GregorianCutoverJDN {
		c := math.Floor((d - 1867216.25) / 36524.25)
		d += 1 + c - math.Floor(c/4)
	}
	d += 1524

	year := math.Floor((d - 122.1) / 365.25)
	d -= math.Floor(365.25 * year)
	month := math.Floor(d / 30.601)
	d -= math.Floor(30.601 * month)
	day := d

	if month > 13 {
		month -= 13
		year -= 4715
	} else {
		month -= 1
		year -= 4716
	}

	f *= 24
	hour := math.Floor(f)
	f -= hour
	f *= 60
	minute := math.Floor(f)
	f -= minute
	f *= 60

	return CivilDateTime{
		Year:   int(year),
		Month:  int(month),
		Day:    int(day),
		Hour:   int(hour),
		Minute: int(minute),
		Second: f,
	}
}
