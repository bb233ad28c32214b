package calendar

import (
	"context"
	"fmt"
	"sort"

	"github.com/zapponejosh/almanac-api/internal/database"
)

// Occurrence is an observance rule resolved to a concrete day.
type Occurrence struct {
	Observance database.Observance `json:"observance"`
	JDN        int                 `json:"jdn"`
	Date       CivilDateTime       `json:"date"`
	Hijri      HijriDate           `json:"hijri"`
	Weekday    int                 `json:"weekday"`
}

// ObservanceSource lists stored observance rules.
// Both *database.DB and test fakes satisfy it.
type ObservanceSource interface {
	ListObservances(ctx context.Context) ([]database.Observance, error)
}

// ObservanceResolver expands stored observance rules into dated occurrences.
type ObservanceResolver struct {
	src ObservanceSource
}

// NewObservanceResolver creates a resolver reading rules from src.
func NewObservanceResolver(src ObservanceSource) *ObservanceResolver {
	return &ObservanceResolver{src: src}
}

// ResolveYear returns every occurrence of every stored rule inside the civil
// year, ordered by day. A Hijri rule can occur zero, one or two times in a
// civil year because the lunar year is about eleven days shorter.
func (r *ObservanceResolver) ResolveYear(ctx context.Context, year int) ([]Occurrence, error) {
	rules, err := r.src.ListObservances(ctx)
	if err != nil {
		return nil, fmt.Errorf("list observances: %w", err)
	}
	return ResolveRules(rules, year)
}

// ResolveRules expands rules into the civil year without touching storage.
// A fixed date the year does not have (February 29 outside leap years) is
// skipped. An Easter offset reaching past January 1 or December 31 is taken
// from the neighbouring year's Easter, so such a rule can occur zero, one or
// two times.
func ResolveRules(rules []database.Observance, year int) ([]Occurrence, error) {
	var (
		out       []Occurrence
		hijriDays map[[2]int][]int
	)

	start := dayNumber(year, 1, 1)
	end := dayNumber(year+1, 1, 1)
	inYear := func(jdn int) bool { return jdn >= start && jdn < end }

	for _, rule := range rules {
		switch rule.Kind {
		case database.KindFixed:
			jdn := dayNumber(year, rule.Month, rule.Day)
			if c := JDNToCivil(float64(jdn)); inYear(jdn) && c.Month == rule.Month && c.Day == rule.Day {
				out = append(out, newOccurrence(rule, jdn))
			}

		case database.KindNthWeekday:
			out = append(out, newOccurrence(rule, NthWeekdayOfMonth(year, rule.Month, rule.Nth, rule.Weekday)))

		case database.KindEasterOffset:
			for y := year - 1; y <= year+1; y++ {
				if jdn := EasterJDN(y) + rule.OffsetDays; inYear(jdn) {
					out = append(out, newOccurrence(rule, jdn))
				}
			}

		case database.KindHijri:
			if hijriDays == nil {
				hijriDays = hijriYearIndex(year)
			}
			for _, jdn := range hijriDays[[2]int{rule.Month, rule.Day}] {
				out = append(out, newOccurrence(rule, jdn))
			}

		default:
			return nil, fmt.Errorf("observance %q: unknown kind %q", rule.Name, rule.Kind)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].JDN != out[j].JDN {
			return out[i].JDN < out[j].JDN
		}
		return out[i].Observance.Name < out[j].Observance.Name
	})
	return out, nil
}

func newOccurrence(rule database.Observance, jdn int) Occurrence {
	return Occurrence{
		Observance: rule,
		JDN:        jdn,
		Date:       JDNToCivil(float64(jdn)),
		Hijri:      JDNToHijri(jdn),
		Weekday:    WeekdayOfJDN(float64(jdn)),
	}
}

// hijriYearIndex maps Hijri (month, day) to the day numbers carrying it
// within the civil year.
func hijriYearIndex(year int) map[[2]int][]int {
	start := dayNumber(year, 1, 1)
	end := dayNumber(year+1, 1, 1)

	idx := make(map[[2]int][]int, end-start)
	for jdn := start; jdn < end; jdn++ {
		h := JDNToHijri(jdn)
		key := [2]int{h.Month, h.Day}
		idx[key] = append(idx[key], jdn)
	}
	return idx
}

// MonthDay describes one day of a civil month in every representation.
type MonthDay struct {
	JDN     int           `json:"jdn"`
	Date    CivilDateTime `json:"date"`
	Weekday int           `json:"weekday"`
	Hijri   HijriDate     `json:"hijri"`
}

// MonthTable lists the days of a civil month from the 1st up to the day
// before the 1st of the following month. October 1582 has 21 entries.
func MonthTable(year, month int) []MonthDay {
	start := dayNumber(year, month, 1)
	nextYear, nextMonth := year, month+1
	if nextMonth > 12 {
		nextYear++
		nextMonth = 1
	}
	end := dayNumber(nextYear, nextMonth, 1)

	days := make([]MonthDay, 0, end-start)
	for jdn := start; jdn < end; jdn++ {
		days = append(days, MonthDay{
			JDN:     jdn,
			Date:    JDNToCivil(float64(jdn)),
			Weekday: WeekdayOfJDN(float64(jdn)),
			Hijri:   JDNToHijri(jdn),
		})
	}
	return days
}
