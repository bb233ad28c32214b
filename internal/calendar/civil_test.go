package calendar

import (
	"math"
	"testing"
	"time"

	"github.com/carlosjhr64/jd"
)

func TestFromTime(t *testing.T) {
	tm := time.Date(2000, time.January, 1, 12, 0, 0, 500_000_000, time.UTC)
	c := FromTime(tm)

	if c.Year != 2000 || c.Month != 1 || c.Day != 1 || c.Hour != 12 || c.Minute != 0 {
		t.Fatalf("FromTime() = %+v", c)
	}
	if c.Second != 0.5 {
		t.Errorf("Second = %v, want 0.5", c.Second)
	}

	want := 2451545.0 + 0.5/86400
	if got := c.JDN(); math.Abs(got-want) > 1e-8 {
		t.Errorf("JDN() = %.9f, want %.9f", got, want)
	}
	if got := c.Weekday(); got != Saturday {
		t.Errorf("Weekday() = %d, want Saturday", got)
	}

	y, m, d := c.Date()
	if y != 2000 || m != 1 || d != 1 {
		t.Errorf("Date() = %d, %d, %d", y, m, d)
	}
}

func TestFromTime_MatchesTimeWeekday(t *testing.T) {
	start := time.Date(1900, time.January, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 80_000; i += 3 {
		tm := start.AddDate(0, 0, i)
		c := FromTime(tm)

		if got := c.Weekday(); got != int(tm.Weekday()) {
			t.Fatalf("%s: Weekday() = %d, want %d", tm.Format(time.DateOnly), got, tm.Weekday())
		}
		if got := int(math.Floor(c.JDN() + 0.5)); got != jd.Number(tm) {
			t.Fatalf("%s: day number = %d, jd.Number = %d", tm.Format(time.DateOnly), got, jd.Number(tm))
		}
	}
}
