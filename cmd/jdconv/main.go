// Command jdconv converts between civil dates, Julian Day Numbers and the
// tabular Islamic calendar from the command line.
//
// Usage:
//
//	go run ./cmd/jdconv -date 2024-03-11 -time 18:30
//	go run ./cmd/jdconv -jdn 2451545
//	go run ./cmd/jdconv -year 2025 -month 11 -n 4 -weekday 4
//	go run ./cmd/jdconv -century 2017
//	go run ./cmd/jdconv -year 2025 -month 3 -lang ar
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"golang.org/x/text/language"

	"github.com/zapponejosh/almanac-api/internal/calendar"
	"github.com/zapponejosh/almanac-api/internal/locale"
	"github.com/zapponejosh/almanac-api/internal/logger"
)

type options struct {
	date    string
	clock   string
	jdn     string
	year    int
	month   int
	n       int
	weekday int
	century string
	lang    string
}

func main() {
	var opts options
	flag.StringVar(&opts.date, "date", "", "Civil date Y-M-D to convert to a JDN")
	flag.StringVar(&opts.clock, "time", "12:00:00", "Time of day HH:MM[:SS] used with -date")
	flag.StringVar(&opts.jdn, "jdn", "", "Julian Day Number to convert to civil and Hijri dates")
	flag.IntVar(&opts.year, "year", 0, "Year for -n/-weekday lookups and month tables")
	flag.IntVar(&opts.month, "month", 0, "Month (1-12) for -n/-weekday lookups and month tables")
	flag.IntVar(&opts.n, "n", 0, "Occurrence (1-5, 5 = last) of -weekday in -month")
	flag.IntVar(&opts.weekday, "weekday", -1, "Weekday 0 (Sunday) to 6 (Saturday)")
	flag.StringVar(&opts.century, "century", "", "Year whose century epoch to print")
	flag.StringVar(&opts.lang, "lang", "en", "Language for names (en, ar)")
	flag.Parse()

	log := logger.New(os.Stderr, "warn", "text")

	if err := run(os.Stdout, opts); err != nil {
		log.Error("jdconv failed", slog.Any("error", err))
		flag.Usage()
		os.Exit(2)
	}
}

func run(w io.Writer, opts options) error {
	tag := locale.Match(opts.lang)

	switch {
	case opts.date != "":
		return convertDate(w, opts.date, opts.clock, tag)
	case opts.jdn != "":
		return convertJDN(w, opts.jdn, tag)
	case opts.century != "":
		return printCentury(w, opts.century)
	case opts.n != 0 || opts.weekday >= 0:
		return printNthWeekday(w, opts, tag)
	case opts.month != 0:
		return printMonth(w, opts.year, opts.month, tag)
	default:
		return fmt.Errorf("one of -date, -jdn, -century, -n/-weekday or -month is required")
	}
}

func convertDate(w io.Writer, date, clock string, tag language.Tag) error {
	year, month, day, err := calendar.ParseCivilDate(date)
	if err != nil {
		return err
	}
	hour, minute, second, err := calendar.ParseClock(clock)
	if err != nil {
		return err
	}

	jdn := calendar.CivilToJDN(year, month, day, hour, minute, second)
	fmt.Fprintf(w, "JDN:      %.6f\n", jdn)
	printDay(w, jdn, tag)
	return nil
}

func convertJDN(w io.Writer, raw string, tag language.Tag) error {
	var jdn float64
	if _, err := fmt.Sscanf(raw, "%g", &jdn); err != nil || math.IsNaN(jdn) || math.IsInf(jdn, 0) {
		return fmt.Errorf("invalid JDN %q", raw)
	}

	fmt.Fprintf(w, "JDN:      %.6f\n", jdn)
	printDay(w, jdn, tag)
	return nil
}

func printDay(w io.Writer, jdn float64, tag language.Tag) {
	c := calendar.JDNToCivil(jdn)
	wd := calendar.WeekdayOfJDN(jdn)
	h := calendar.JDNToHijri(int(math.Floor(jdn + 0.5)))

	fmt.Fprintf(w, "Civil:    %s (%s, %s)\n", c, locale.WeekdayName(tag, wd), locale.CivilMonthName(tag, c.Month))
	fmt.Fprintf(w, "Hijri:    %d-%02d-%02d (%s)\n", h.Year, h.Month, h.Day, locale.HijriMonthName(tag, h.Month))
}

func printCentury(w io.Writer, raw string) error {
	var year int
	if _, err := fmt.Sscanf(raw, "%d", &year); err != nil {
		return fmt.Errorf("invalid year %q", raw)
	}

	epoch := calendar.CenturyEpochJDN(year)
	fmt.Fprintf(w, "Year:             %d\n", year)
	fmt.Fprintf(w, "Normalized year:  %d\n", calendar.NormalizedCenturyYear(year))
	fmt.Fprintf(w, "Epoch JDN:        %d (%s)\n", epoch, calendar.JDNToCivil(float64(epoch)).DateString())
	return nil
}

func printNthWeekday(w io.Writer, opts options, tag language.Tag) error {
	if opts.month < 1 || opts.month > 12 {
		return fmt.Errorf("-month must be between 1 and 12")
	}
	if opts.n < 1 || opts.n > 5 {
		return fmt.Errorf("-n must be between 1 and 5")
	}
	if opts.weekday < 0 || opts.weekday > 6 {
		return fmt.Errorf("-weekday must be between 0 and 6")
	}

	day := calendar.NthWeekdayOfMonth(opts.year, opts.month, opts.n, opts.weekday)
	fmt.Fprintf(w, "%s %s of %s %d\n",
		locale.Ordinal(opts.n),
		locale.WeekdayName(tag, opts.weekday),
		locale.CivilMonthName(tag, opts.month),
		opts.year)
	fmt.Fprintf(w, "JDN:      %d\n", day)
	printDay(w, float64(day), tag)
	return nil
}

func printMonth(w io.Writer, year, month int, tag language.Tag) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("-month must be between 1 and 12")
	}

	fmt.Fprintf(w, "=== %s %d ===\n\n", locale.CivilMonthName(tag, month), year)
	for _, d := range calendar.MonthTable(year, month) {
		fmt.Fprintf(w, "%8d  %-12s %-10s  %d-%02d-%02d %s\n",
			d.JDN,
			d.Date.DateString(),
			locale.WeekdayName(tag, d.Weekday),
			d.Hijri.Year, d.Hijri.Month, d.Hijri.Day,
			locale.HijriMonthName(tag, d.Hijri.Month))
	}
	return nil
}
