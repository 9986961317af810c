// Package timeutil provides utility functions and types for working with
// workout dates.
package timeutil

import (
	"errors"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const monthLayout = "2006-01"

var errUnparsableDate = errors.New("unable to understand date")

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
)

// Range maps a period to the offset in days of its first day.
var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
}

// Bounds returns the first and last instant of a period ending today. The
// all-time period has a zero start.
func (p Period) Bounds(now time.Time) (start, end time.Time) {
	end = RoundToEnd(now)

	switch p {
	case PeriodAllTime:
		return time.Time{}, end
	case PeriodYesterday:
		y := now.AddDate(0, 0, -1)
		return RoundToStart(y), RoundToEnd(y)
	}

	return RoundToStart(now.AddDate(0, 0, Range[p])), end
}

// DaysIn returns the number of days in the month for the specified time.
func DaysIn(t time.Time) int {
	m := t.Month()
	year := t.Year()

	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// FromStr parses a human date such as "yesterday 18:00" or "2026-10-12"
// relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errors.Join(errUnparsableDate, err)
	}

	if d.Time.IsZero() {
		return time.Time{}, errUnparsableDate
	}

	return d.Time, nil
}

// ParseMonth parses a YYYY-MM value. An empty string is the month of now.
func ParseMonth(s string, now time.Time) (year int, month time.Month, err error) {
	if strings.TrimSpace(s) == "" {
		return now.Year(), now.Month(), nil
	}

	t, err := time.ParseInLocation(monthLayout, strings.TrimSpace(s), now.Location())
	if err != nil {
		return 0, 0, err
	}

	return t.Year(), t.Month(), nil
}
