package database

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects how an observance rule is placed in a year.
type Kind string

const (
	KindFixed        Kind = "fixed"         // same civil month and day every year
	KindNthWeekday   Kind = "nth_weekday"   // n-th weekday of a civil month
	KindEasterOffset Kind = "easter_offset" // days relative to Easter Sunday
	KindHijri        Kind = "hijri"         // same Hijri month and day
)

// ValidKinds returns all valid observance kinds.
func ValidKinds() []Kind {
	return []Kind{
		KindFixed,
		KindNthWeekday,
		KindEasterOffset,
		KindHijri,
	}
}

// IsValid checks if a kind is valid.
func (k Kind) IsValid() bool {
	for _, valid := range ValidKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// Observance is a named yearly rule such as "Thanksgiving: 4th Thursday of
// November" or "Ramadan begins: 1 Ramadan".
type Observance struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Kind        Kind    `db:"kind" json:"kind"`
	Month       int     `db:"month" json:"month,omitempty"`
	Day         int     `db:"day" json:"day,omitempty"`
	Nth         int     `db:"nth" json:"nth,omitempty"`
	Weekday     int     `db:"weekday" json:"weekday"`
	OffsetDays  int     `db:"offset_days" json:"offset_days,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
	CreatedAt   string  `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at,omitempty"`
}

// Validate checks that the fields used by the rule's kind are in range.
func (o *Observance) Validate() error {
	var errs []error

	if strings.TrimSpace(o.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}

	switch o.Kind {
	case KindFixed:
		errs = appendRange(errs, "month", o.Month, 1, 12)
		errs = appendRange(errs, "day", o.Day, 1, 31)
	case KindNthWeekday:
		errs = appendRange(errs, "month", o.Month, 1, 12)
		errs = appendRange(errs, "nth", o.Nth, 1, 5)
		errs = appendRange(errs, "weekday", o.Weekday, 0, 6)
	case KindEasterOffset:
		errs = appendRange(errs, "offset_days", o.OffsetDays, -366, 366)
	case KindHijri:
		errs = appendRange(errs, "month", o.Month, 1, 12)
		errs = appendRange(errs, "day", o.Day, 1, 30)
	default:
		errs = append(errs, fmt.Errorf("kind must be one of %v; got %q", ValidKinds(), o.Kind))
	}

	return errors.Join(errs...)
}

func appendRange(errs []error, field string, v, lo, hi int) []error {
	if v < lo || v > hi {
		return append(errs, fmt.Errorf("%s must be between %d and %d, got %d", field, lo, hi, v))
	}
	return errs
}

// ImportData is the JSON document read by cmd/import.
type ImportData struct {
	Metadata struct {
		Source      string `json:"source"`
		GeneratedAt string `json:"generated_at"`
	} `json:"metadata"`
	Observances []Observance `json:"observances"`
}
