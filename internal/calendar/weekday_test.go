package calendar

import (
	"math"
	"testing"
)

func TestWeekdayOfJDN(t *testing.T) {
	tests := []struct {
		name string
		jdn  float64
		want int
	}{
		{"2000-01-01 noon", 2451545.0, Saturday},
		{"2000-01-01 midnight", 2451544.5, Saturday},
		{"1999-12-31 late", 2451544.49, Friday},
		{"JDN 0", 0, Monday},
		{"first Gregorian day", 2299161.0, Friday},
		{"2025-11-27", dayFloat(2025, 11, 27), Thursday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayOfJDN(tt.jdn); got != tt.want {
				t.Errorf("WeekdayOfJDN(%v) = %d, want %d", tt.jdn, got, tt.want)
			}
		})
	}
}

func TestWeekdayOfJDN_Cycle(t *testing.T) {
	for jdn := -50_000; jdn <= 3_000_000; jdn += 17 {
		w := WeekdayOfJDN(float64(jdn))
		if w < 0 || w > 6 {
			t.Fatalf("WeekdayOfJDN(%d) = %d, out of range", jdn, w)
		}
		if next := WeekdayOfJDN(float64(jdn + 7)); next != w {
			t.Fatalf("WeekdayOfJDN(%d) = %d but WeekdayOfJDN(%d) = %d", jdn, w, jdn+7, next)
		}
		if next := WeekdayOfJDN(float64(jdn + 1)); next != (w+1)%7 {
			t.Fatalf("WeekdayOfJDN(%d) = %d, day after = %d", jdn, w, next)
		}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name               string
		year, month, n, wd int
		want               [3]int
	}{
		{"Thanksgiving 2025", 2025, 11, 4, Thursday, [3]int{2025, 11, 27}},
		{"5th Saturday exists", 2025, 11, 5, Saturday, [3]int{2025, 11, 29}},
		{"5th Thursday falls back to 4th", 2025, 11, 5, Thursday, [3]int{2025, 11, 27}},
		{"weekday before the 1st's", 2025, 11, 1, Sunday, [3]int{2025, 11, 2}},
		{"1st is the target", 2025, 12, 1, Monday, [3]int{2025, 12, 1}},
		{"Sunday on a Sunday 1st", 2025, 6, 1, Sunday, [3]int{2025, 6, 1}},
		{"5th Wednesday in December", 2025, 12, 5, Wednesday, [3]int{2025, 12, 31}},
		{"5th Thursday across year end", 2025, 12, 5, Thursday, [3]int{2025, 12, 25}},
		{"Memorial Day 2024", 2024, 5, 5, Monday, [3]int{2024, 5, 27}},
		{"Labor Day 2024", 2024, 9, 1, Monday, [3]int{2024, 9, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NthWeekdayOfMonth(tt.year, tt.month, tt.n, tt.wd)
			want := dayNumber(tt.want[0], tt.want[1], tt.want[2])
			if got != want {
				c := JDNToCivil(float64(got))
				t.Errorf("NthWeekdayOfMonth(%d, %d, %d, %d) = %d (%s), want %d",
					tt.year, tt.month, tt.n, tt.wd, got, c.DateString(), want)
			}
		})
	}
}

func TestNthWeekdayOfMonth_Properties(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		for month := 1; month <= 12; month++ {
			first := dayNumber(year, month, 1)
			next := monthAfter(year, month)

			for wd := Sunday; wd <= Saturday; wd++ {
				for n := 1; n <= 5; n++ {
					got := NthWeekdayOfMonth(year, month, n, wd)

					if WeekdayOfJDN(float64(got)) != wd {
						t.Fatalf("%d-%02d n=%d wd=%d: day %d has weekday %d", year, month, n, wd, got, WeekdayOfJDN(float64(got)))
					}
					if got < first || got >= next {
						t.Fatalf("%d-%02d n=%d wd=%d: day %d outside [%d, %d)", year, month, n, wd, got, first, next)
					}
					if n < 5 && (got-first)/7 != n-1 {
						t.Fatalf("%d-%02d n=%d wd=%d: day %d is occurrence %d", year, month, n, wd, got, (got-first)/7+1)
					}
					if n == 5 && got+7 < next {
						t.Fatalf("%d-%02d wd=%d: day %d is not the last occurrence", year, month, wd, got)
					}
				}
			}
		}
	}
}

func dayFloat(year, month, day int) float64 {
	return math.Floor(DateToJDN(year, month, day))
}

func monthAfter(year, month int) int {
	if month == 12 {
		return dayNumber(year+1, 1, 1)
	}
	return dayNumber(year, month+1, 1)
}
