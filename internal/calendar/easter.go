package calendar

// Easter returns the month and day of Easter Sunday in a Gregorian year,
// using the anonymous Gregorian computus (Meeus/Jones/Butcher).
//
// Results are only meaningful from 1583 on.
func Easter(year int) (month, day int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month = (h + l - 7*m + 114) / 31
	day = ((h + l - 7*m + 114) % 31) + 1
	return month, day
}

// EasterJDN returns the day number of Easter Sunday in year.
func EasterJDN(year int) int {
	month, day := Easter(year)
	return dayNumber(year, month, day)
}

// dayNumber is the integer JDN of a civil date, i.e. the JDN at noon.
func dayNumber(year, month, day int) int {
	return int(jdnFromDayFraction(year, month, float64(day)+0.5))
}
