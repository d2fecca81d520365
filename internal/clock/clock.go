// Package clock provides timestamps normalized to one fixed civil timezone.
// All task start/completion timestamps and history creation timestamps go
// through it, so audit ordering and display stay consistent regardless of
// server or client locale.
package clock

import (
	"fmt"
	"time"
)

// CivilLayout is the wire format for civil timestamps.
const CivilLayout = "2006-01-02 15:04:05"

// DefaultZone is the civil timezone everything is normalized to.
const DefaultZone = "America/La_Paz"

// Clock produces and converts timestamps in a fixed civil timezone.
type Clock struct {
	loc *time.Location
}

// New loads the given IANA zone and returns a Clock pinned to it.
func New(zone string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", zone, err)
	}
	return &Clock{loc: loc}, nil
}

// MustNew is New that panics on error. Intended for wiring with a
// compile-time-known zone.
func MustNew(zone string) *Clock {
	c, err := New(zone)
	if err != nil {
		panic(err)
	}
	return c
}

// Now returns the current time in the civil timezone.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// In converts any time to the civil timezone.
func (c *Clock) In(t time.Time) time.Time {
	return t.In(c.loc)
}

// Format renders a time in the civil wire format, converting first.
func (c *Clock) Format(t time.Time) string {
	return t.In(c.loc).Format(CivilLayout)
}

// Normalize parses a timestamp string into civil time. Two input shapes are
// accepted, because upstream callers send either:
//   - already-civil "2006-01-02 15:04:05" strings, interpreted in the civil
//     zone and passed through;
//   - RFC 3339 / ISO-8601 strings, converted into the civil zone (unzoned
//     ISO strings are assumed UTC).
func (c *Clock) Normalize(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(CivilLayout, s, c.loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(c.loc), nil
	}
	// ISO-8601 without zone suffix: assume UTC.
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC); err == nil {
		return t.In(c.loc), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
