package calendar

import (
	"math"
	"testing"

	"github.com/carlosjhr64/jd"
)

func TestCivilToJDN(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		hour, minute     int
		second           float64
		want             float64
	}{
		{"J2000", 2000, 1, 1, 12, 0, 0, 2451545.0},
		{"JDN epoch", -4712, 1, 1, 12, 0, 0, 0.0},
		{"MJD epoch", 1858, 11, 17, 0, 0, 0, 2400000.5},
		{"Sputnik", 1957, 10, 4, 19, 26, 24, 2436116.31},
		{"Julian regime", 333, 1, 27, 12, 0, 0, 1842713.0},
		{"last Julian day", 1582, 10, 4, 12, 0, 0, 2299160.0},
		{"first Gregorian day", 1582, 10, 15, 12, 0, 0, 2299161.0},
		{"leap day", 2024, 2, 29, 0, 0, 0, 2460369.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CivilToJDN(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("CivilToJDN(%d-%02d-%02d %02d:%02d:%v) = %.6f, want %.6f",
					tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second, got, tt.want)
			}
		})
	}
}

func TestCivilToJDN_Cutover(t *testing.T) {
	// The ten dropped days are not modelled: the 4th and the 15th are adjacent.
	before := CivilToJDN(1582, 10, 4, 12, 0, 0)
	after := CivilToJDN(1582, 10, 15, 12, 0, 0)
	if after-before != 1 {
		t.Errorf("1582-10-15 minus 1582-10-04 = %v, want 1", after-before)
	}

	if got := WeekdayOfJDN(before); got != Thursday {
		t.Errorf("1582-10-04 weekday = %d, want Thursday", got)
	}
	if got := WeekdayOfJDN(after); got != Friday {
		t.Errorf("1582-10-15 weekday = %d, want Friday", got)
	}
}

func TestCivilToJDN_MonthCarry(t *testing.T) {
	tests := []struct {
		month     int
		wantYear  int
		wantMonth int
	}{
		{13, 2000, 1},
		{14, 2000, 2},
		{24, 2000, 12},
		{25, 2001, 1},
	}

	for _, tt := range tests {
		got := CivilToJDN(1999, tt.month, 10, 12, 0, 0)
		want := CivilToJDN(tt.wantYear, tt.wantMonth, 10, 12, 0, 0)
		if got != want {
			t.Errorf("month %d of 1999 = %v, want %v (%d-%02d)", tt.month, got, want, tt.wantYear, tt.wantMonth)
		}
	}
}

func TestCivilToJDN_DayOverflow(t *testing.T) {
	// Out-of-range days roll forward instead of failing.
	got := CivilToJDN(2023, 2, 30, 12, 0, 0)
	want := CivilToJDN(2023, 3, 2, 12, 0, 0)
	if got != want {
		t.Errorf("2023-02-30 = %v, want %v (2023-03-02)", got, want)
	}
}

func TestDateToJDN(t *testing.T) {
	got := DateToJDN(2000, 1, 1)
	want := 2451545.0 + 0.1/86400
	if math.Abs(got-want) > 1e-8 {
		t.Errorf("DateToJDN(2000, 1, 1) = %.9f, want %.9f", got, want)
	}

	if MonthStartJDN(2000, 1) != got {
		t.Errorf("MonthStartJDN(2000, 1) = %v, want %v", MonthStartJDN(2000, 1), got)
	}
}

func TestJDNToCivil(t *testing.T) {
	tests := []struct {
		jdn  float64
		want CivilDateTime
	}{
		{2451545.0, CivilDateTime{Year: 2000, Month: 1, Day: 1, Hour: 12}},
		{2451544.5, CivilDateTime{Year: 2000, Month: 1, Day: 1}},
		{0.0, CivilDateTime{Year: -4712, Month: 1, Day: 1, Hour: 12}},
		{2299160.0, CivilDateTime{Year: 1582, Month: 10, Day: 4, Hour: 12}},
		{2299161.0, CivilDateTime{Year: 1582, Month: 10, Day: 15, Hour: 12}},
		{2451545.25, CivilDateTime{Year: 2000, Month: 1, Day: 1, Hour: 18}},
	}

	for _, tt := range tests {
		got := JDNToCivil(tt.jdn)
		if got.Year != tt.want.Year || got.Month != tt.want.Month || got.Day != tt.want.Day ||
			got.Hour != tt.want.Hour || got.Minute != tt.want.Minute || math.Abs(got.Second-tt.want.Second) > 1e-3 {
			t.Errorf("JDNToCivil(%v) = %+v, want %+v", tt.jdn, got, tt.want)
		}
	}
}

// inSkippedDays reports whether the date is one of the Julian-regime dates
// 1582-10-05..14, which the inverse maps onto the Gregorian side.
func inSkippedDays(year, month, day int) bool {
	return year == 1582 && month == 10 && day >= 5 && day <= 14
}

func TestRoundTrip(t *testing.T) {
	const hour, minute, second = 6, 30, 15.25

	for year := -4000; year <= 4000; year++ {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 9, 15, 28} {
				if inSkippedDays(year, month, day) {
					continue
				}

				got := JDNToCivil(CivilToJDN(year, month, day, hour, minute, second))
				if got.Year != year || got.Month != month || got.Day != day ||
					got.Hour != hour || got.Minute != minute || math.Abs(got.Second-second) > 1 {
					t.Fatalf("round trip of %d-%02d-%02d %02d:%02d:%v = %+v",
						year, month, day, hour, minute, second, got)
				}
			}
		}
	}
}

func TestInverseRoundTrip_Monotonic(t *testing.T) {
	prev := math.Inf(-1)
	for day := 0; day < 2_600_000; day += 3 {
		jdn := float64(day) + 0.3

		c := JDNToCivil(jdn)
		back := CivilToJDN(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
		if math.Abs(back-jdn) > 1e-6 {
			t.Fatalf("CivilToJDN(JDNToCivil(%v)) = %v (%+v)", jdn, back, c)
		}
		if back <= prev {
			t.Fatalf("not monotonic at %v: %v <= %v", jdn, back, prev)
		}
		prev = back
	}
}

func TestGregorianMatchesIntegerFormula(t *testing.T) {
	for year := 1583; year <= 2400; year++ {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 13, 28} {
				want := jd.YMD2J(year, month, day)
				got := int(math.Floor(DateToJDN(year, month, day)))
				if got != want {
					t.Fatalf("%d-%02d-%02d: got %d, jd.YMD2J = %d", year, month, day, got, want)
				}
			}
		}
	}

	for day := GregorianCutoverJDN; day < GregorianCutoverJDN+400_000; day += 37 {
		y, m, d := jd.J2YMD(day)
		c := JDNToCivil(float64(day))
		if c.Year != y || c.Month != m || c.Day != d {
			t.Fatalf("JDNToCivil(%d) = %d-%02d-%02d, jd.J2YMD = %d-%02d-%02d", day, c.Year, c.Month, c.Day, y, m, d)
		}
	}
}
