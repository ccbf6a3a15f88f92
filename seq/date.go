package seq

import (
	"fmt"
	"strings"
	"time"

	"github.com/seqforge/gbio/errors"
)

var monthNames = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// Date is a validated calendar date, as found on a LOCUS line.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate builds a date, rejecting impossible calendar values.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, month) {
		return Date{}, errors.InvalidDate(year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// DateOf converts the date part of a host calendar value.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month, 1-12.
func (d Date) Month() int { return d.month }

// Day returns the day of month, 1-31.
func (d Date) Day() int { return d.day }

// Time returns the host calendar representation, at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// String renders the LOCUS line form, e.g. "01-APR-2024".
func (d Date) String() string {
	return fmt.Sprintf("%02d-%s-%04d", d.day, monthNames[d.month-1], d.year)
}

// ParseDate reads the LOCUS line form.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, errors.InvalidData(errors.PhaseParse, nil, fmt.Sprintf("malformed date %q", s))
	}
	var day, year int
	if _, err := fmt.Sscanf(parts[0], "%d", &day); err != nil {
		return Date{}, errors.InvalidData(errors.PhaseParse, nil, fmt.Sprintf("malformed date %q", s))
	}
	if _, err := fmt.Sscanf(parts[2], "%d", &year); err != nil {
		return Date{}, errors.InvalidData(errors.PhaseParse, nil, fmt.Sprintf("malformed date %q", s))
	}
	month := 0
	for i, name := range monthNames {
		if strings.EqualFold(parts[1], name) {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return Date{}, errors.InvalidData(errors.PhaseParse, nil, fmt.Sprintf("malformed date %q", s))
	}
	return NewDate(year, month, day)
}

func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
}
