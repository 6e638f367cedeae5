// Package datepkg provides a calendar date with day granularity.
package datepkg

import (
	"fmt"
	"time"
)

const (
	// Layout is the interchange format shared by every import/export format.
	Layout = "02-01-2006"
	// ISOLayout is accepted on input in addition to Layout.
	ISOLayout = "2006-01-02"

	// Permissive read formats (allow single-digit month/day).
	readLayout    = "2-1-2006"
	readISOLayout = "2006-1-2"
)

// Date represents a date with day-level granularity.
//
// The zero Date is not a valid calendar day and is used as "unset".
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// FromTime returns the calendar day of t in its own location.
func FromTime(t time.Time) Date { return New(t.Date()) }

// Today returns the current date.
func Today() Date { return FromTime(time.Now()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmpInt(d.y, x.y)
	case d.m != x.m:
		return cmpInt(int(d.m), int(x.m))
	default:
		return cmpInt(d.d, x.d)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats the date in the interchange format (dd-MM-yyyy).
func (d Date) String() string { return d.time().Format(Layout) }

// ISO formats the date as yyyy-MM-dd.
func (d Date) ISO() string { return d.time().Format(ISOLayout) }

// Parse parses a Date in dd-MM-yyyy or yyyy-MM-dd form.
// Single-digit days and months are accepted.
func Parse(str string) (Date, error) {
	for _, layout := range []string{readLayout, readISOLayout} {
		if on, err := time.Parse(layout, str); err == nil {
			return New(on.Date()), nil
		}
	}

	return Date{}, fmt.Errorf("invalid date %q want format %q or %q", str, "dd-MM-yyyy", "yyyy-MM-dd")
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Contains reports whether d lies in the inclusive range [from, to].
// A zero bound is open.
func Contains(from, to, d Date) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}
