package calendar

import "math"

// Weekdays, numbered as returned by WeekdayOfJDN.
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// weekdayBias keeps the dividend positive for any realistic JDN so the
// remainder lands in 0..6.
const weekdayBias = 7000000

// WeekdayOfJDN returns the day of week of jdn, 0 = Sunday through 6 = Saturday.
func WeekdayOfJDN(jdn float64) int {
	w := int64(math.Floor(jdn+1.5+weekdayBias)) % 7
	if w < 0 {
		w += 7
	}
	return int(w)
}

// NthWeekdayOfMonth returns the day number (JDN at noon) of the n-th given
// weekday in a civil month. n = 5 asks for the last occurrence: months
// holding only four of that weekday yield the fourth.
func NthWeekdayOfMonth(year, month, n, weekday int) int {
	first := jdnFromDayFraction(year, month, 1.5)
	w0 := math.Mod(first+1+weekdayBias, 7)

	// Counting n weeks from the Sunday on or before the 1st overshoots by a
	// week whenever the target weekday is not earlier than the 1st's.
	r := int(first - w0 + float64(7*n+weekday))
	if float64(weekday) >= w0 {
		r -= 7
	}

	if n == 5 {
		month++
		if month > 12 {
			month = 1
			year++
		}
		if float64(r) >= jdnFromDayFraction(year, month, 1.5) {
			r -= 7
		}
	}
	return r
}
