package timeutil

import (
	"testing"
	"time"
)

var now = time.Date(2026, time.October, 19, 14, 30, 0, 0, time.UTC)

func TestBounds(t *testing.T) {
	testCases := []struct {
		period Period
		start  time.Time
		end    time.Time
	}{
		{
			period: PeriodToday,
			start:  time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2026, time.October, 19, 23, 59, 59, 0, time.UTC),
		},
		{
			period: PeriodYesterday,
			start:  time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2026, time.October, 18, 23, 59, 59, 0, time.UTC),
		},
		{
			period: Period7Days,
			start:  time.Date(2026, time.October, 13, 0, 0, 0, 0, time.UTC),
			end:    time.Date(2026, time.October, 19, 23, 59, 59, 0, time.UTC),
		},
		{
			period: PeriodAllTime,
			end:    time.Date(2026, time.October, 19, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(string(tc.period), func(t *testing.T) {
			start, end := tc.period.Bounds(now)

			if !start.Equal(tc.start) || !end.Equal(tc.end) {
				t.Errorf("Bounds() = %v, %v; want %v, %v", start, end, tc.start, tc.end)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	testCases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2028, time.February, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2026, time.November, 30, 0, 0, 0, 0, time.UTC), 30},
	}

	for _, tc := range testCases {
		if got := DaysIn(tc.date); got != tc.want {
			t.Errorf("DaysIn(%v) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestFromStr(t *testing.T) {
	got, err := FromStr("2026-10-12 18:00", now)
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2026, time.October, 12, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("FromStr() = %v, want %v", got, want)
	}

	empty, err := FromStr("  ", now)
	if err != nil || !empty.Equal(now) {
		t.Errorf("expected an empty date to mean now, got %v (%v)", empty, err)
	}

	if _, err := FromStr("not a date at all", now); err == nil {
		t.Error("expected an error")
	}
}

func TestParseMonth(t *testing.T) {
	y, m, err := ParseMonth("2025-02", now)
	if err != nil || y != 2025 || m != time.February {
		t.Errorf("ParseMonth() = %d, %v, %v", y, m, err)
	}

	y, m, err = ParseMonth("", now)
	if err != nil || y != 2026 || m != time.October {
		t.Errorf("ParseMonth() = %d, %v, %v", y, m, err)
	}

	if _, _, err := ParseMonth("October", now); err == nil {
		t.Error("expected an error")
	}
}
