package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time in minutes after midnight.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses "HH:MM" in 24 hour form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, invalid("time", fmt.Sprintf("%q is not HH:MM", s))
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, invalid("time", fmt.Sprintf("%q has an invalid hour", s))
	}
	m, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || m < 0 || m > 59 {
		return 0, invalid("time", fmt.Sprintf("%q has an invalid minute", s))
	}
	return TimeOfDay(h*60 + m), nil
}

func MustTime(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Date is a calendar date in YYYY-MM-DD form.
type Date string

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", invalid("date", fmt.Sprintf("%q is not YYYY-MM-DD", s))
	}
	return Date(s), nil
}

// Today returns the local calendar date.
func Today() Date {
	return Date(time.Now().Format(dateLayout))
}

// Time returns the date at midnight UTC, or the zero time if it does not parse.
func (d Date) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// Format renders the date the way listings show it, e.g. "Saturday, June 1, 2024".
func (d Date) Format() string {
	t := d.Time()
	if t.IsZero() {
		return string(d)
	}
	return t.Format("Monday, January 2, 2006")
}

type Position string

const (
	PositionHelper  Position = "Helper"
	PositionPainter Position = "Painter"
	PositionForeman Position = "Foreman"
)

var Positions = []Position{PositionForeman, PositionPainter, PositionHelper}

// ParsePosition accepts a position name in any letter case.
func ParsePosition(s string) (Position, error) {
	for _, p := range Positions {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", invalid("position", fmt.Sprintf("%q is not one of Helper, Painter, Foreman", s))
}
