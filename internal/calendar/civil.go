// Package calendar converts between civil dates, Julian Day Numbers and the
// tabular Islamic calendar.
//
// Every function in this package is pure arithmetic over its arguments. No
// input is rejected: values outside the usual ranges (day 99, month 30, year
// -9000) roll forward through the day-count formulas and yield a consistent,
// if historically meaningless, result.
package calendar

import "time"

// CivilDateTime is a proleptic Julian/Gregorian calendar date with a time of day.
//
// Years use astronomical numbering: year 0 is 1 BCE, year -1 is 2 BCE.
type CivilDateTime struct {
	Year   int     `json:"year"`
	Month  int     `json:"month"`
	Day    int     `json:"day"`
	Hour   int     `json:"hour"`
	Minute int     `json:"minute"`
	Second float64 `json:"second"`
}

// FromTime reads the calendar fields of t in its own location.
func FromTime(t time.Time) CivilDateTime {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return CivilDateTime{
		Year:   year,
		Month:  int(month),
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: float64(second) + float64(t.Nanosecond())/1e9,
	}
}

// JDN returns the Julian Day Number of c.
func (c CivilDateTime) JDN() float64 {
	return CivilToJDN(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}

// Weekday returns the day of week of c, 0 = Sunday.
func (c CivilDateTime) Weekday() int {
	return WeekdayOfJDN(c.JDN())
}

// Date returns the year, month and day of c.
func (c CivilDateTime) Date() (year, month, day int) {
	return c.Year, c.Month, c.Day
}
