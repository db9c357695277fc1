// Package deadline implements the ordering cutoff rule: a delivery date is
// orderable until the company's deadline time-of-day on the previous calendar
// day, evaluated in the portal's single fixed operating timezone.
package deadline

import (
	"fmt"
	"time"
)

// Time is a time-of-day without a date, e.g. a 14:00:00 ordering deadline.
type Time struct {
	Hour   int
	Minute int
	Second int
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Parse accepts "15:04:05" or "15:04".
func Parse(s string) (Time, error) {
	parsed, err := time.Parse("15:04:05", s)
	if err != nil {
		parsed, err = time.Parse("15:04", s)
		if err != nil {
			return Time{}, fmt.Errorf("invalid deadline time %q: %w", s, err)
		}
	}
	return Time{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
}

type Calculator struct {
	loc *time.Location
}

func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{loc: loc}
}

func (c *Calculator) Location() *time.Location {
	return c.loc
}

// CutoffInstant returns the moment after which deliveryDate can no longer be
// ordered: the deadline time-of-day on the calendar day before deliveryDate.
// The subtraction is done on the date component, not on a combined timestamp,
// so the result stays correct across DST and tzdata changes.
func (c *Calculator) CutoffInstant(deliveryDate time.Time, deadline Time) time.Time {
	y, m, d := deliveryDate.Date()
	prev := time.Date(y, m, d, 0, 0, 0, 0, c.loc).AddDate(0, 0, -1)
	return time.Date(prev.Year(), prev.Month(), prev.Day(), deadline.Hour, deadline.Minute, deadline.Second, 0, c.loc)
}

// IsOrderable reports whether deliveryDate is still open at now. The
// comparison is strict: at the cutoff instant itself ordering is closed.
func (c *Calculator) IsOrderable(deliveryDate time.Time, deadline Time, now time.Time) bool {
	return now.Before(c.CutoffInstant(deliveryDate, deadline))
}

// DateOf truncates an instant to its calendar date in the operating timezone.
func (c *Calculator) DateOf(t time.Time) time.Time {
	y, m, d := t.In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}
