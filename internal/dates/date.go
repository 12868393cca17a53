// Package dates provides the validated calendar date and date selection
// types used to scope EVDS requests. Dates use the service's fixed
// DD-MM-YYYY textual layout and are checked against the Gregorian calendar
// at construction, so every Date in circulation represents a real day.
package dates

import (
	"errors"
	"fmt"
)

// Layout is the fixed textual layout the EVDS service uses for dates:
// two-digit day, two-digit month, four-digit year, dash separated.
const Layout = "DD-MM-YYYY"

var (
	// ErrMalformedDate indicates the input text does not match the
	// DD-MM-YYYY layout.
	ErrMalformedDate = errors.New("date text does not match DD-MM-YYYY")

	// ErrImpossibleDate indicates the text matched the layout but the
	// numeric components do not form a real Gregorian date.
	ErrImpossibleDate = errors.New("components do not form a valid calendar date")

	// ErrInvalidRange indicates a range whose start date falls after its
	// end date.
	ErrInvalidRange = errors.New("range start date is after end date")
)

// Date is a single validated calendar date. The zero value is not a valid
// date; obtain one through Parse or MustParse.
type Date struct {
	day   int
	month int
	year  int
}

// Parse converts text in the fixed DD-MM-YYYY layout into a Date.
// It returns ErrMalformedDate when the layout does not match and
// ErrImpossibleDate when the components are outside the calendar
// (month not in 1-12, day beyond the month's length, leap years honoring
// the century rule).
func Parse(text string) (Date, error) {
	if len(text) != 10 || text[2] != '-' || text[5] != '-' {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}

	day, ok := parseDigits(text[0:2])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}
	month, ok := parseDigits(text[3:5])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}
	year, ok := parseDigits(text[6:10])
	if !ok {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrImpossibleDate, month)
	}
	if day < 1 || day > daysInMonth(month, year) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %02d-%04d", ErrImpossibleDate, day, month, year)
	}

	return Date{day: day, month: month, year: year}, nil
}

// MustParse is Parse for compile-time constant inputs; it panics on error.
func MustParse(text string) Date {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// parseDigits interprets s as an unsigned decimal number and reports
// whether every byte was an ASCII digit.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// daysInMonth returns the number of days in the given month, honoring the
// Gregorian leap rule: divisible by 4, except centuries not divisible by 400.
func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Day returns the day-of-month component.
func (d Date) Day() int { return d.day }

// Month returns the month component.
func (d Date) Month() int { return d.month }

// Year returns the year component.
func (d Date) Year() int { return d.year }

// String renders the date back into the canonical DD-MM-YYYY text, so a
// parsed date round-trips to its original input.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.day, d.month, d.year)
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	if d.year != other.year {
		return d.year > other.year
	}
	if d.month != other.month {
		return d.month > other.month
	}
	return d.day > other.day
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return other.After(d)
}

// Selector scopes a request to either a single calendar date or an ordered
// inclusive date range. The service always receives a start and an end date;
// a single-date selector reports the same date for both.
type Selector struct {
	start Date
	end   Date
}

// Single builds a selector covering exactly one day. It cannot fail.
func Single(d Date) Selector {
	return Selector{start: d, end: d}
}

// Range builds a selector covering the inclusive span from start to end.
// It returns ErrInvalidRange when start falls after end; equal endpoints
// form a valid one-day range.
func Range(start, end Date) (Selector, error) {
	if start.After(end) {
		return Selector{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	return Selector{start: start, end: end}, nil
}

// Start returns the first date the selector covers.
func (s Selector) Start() Date { return s.start }

// End returns the last date the selector covers.
func (s Selector) End() Date { return s.end }

// String renders the selector for logging.
func (s Selector) String() string {
	if s.start == s.end {
		return s.start.String()
	}
	return s.start.String() + ".." + s.end.String()
}
