package openingtimes

import (
	"testing"
	"time"
)

// 2016-07-24 is a Sunday; the other days of that week follow it.
var dayOffsets = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

func mustLocation(t *testing.T, zone string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(zone)
	if err != nil {
		t.Fatalf("failed to load %s: %v", zone, err)
	}
	return loc
}

func momentOn(t *testing.T, day string, hour, minute int, zone string) time.Time {
	t.Helper()
	offset, ok := dayOffsets[day]
	if !ok {
		t.Fatalf("unknown day %q", day)
	}
	return time.Date(2016, time.July, 24+offset, hour, minute, 0, 0, mustLocation(t, zone))
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", value, err)
	}
	return parsed
}

func everyDay(sessions ...Session) WeeklySchedule {
	week := WeeklySchedule{}
	for _, day := range Weekdays {
		week[day] = append([]Session{}, sessions...)
	}
	return week
}

func closedAllWeek() WeeklySchedule {
	return everyDay()
}

func regularWorkingWeek() WeeklySchedule {
	week := everyDay(Session{Opens: "09:00", Closes: "17:30"})
	week["sunday"] = []Session{}
	return week
}

func workingWeekWithLunchBreaks() WeeklySchedule {
	week := everyDay(
		Session{Opens: "09:00", Closes: "12:30"},
		Session{Opens: "13:30", Closes: "17:30"},
	)
	week["sunday"] = []Session{}
	return week
}

func workingWeekWithCustomSessions(sessions ...Session) WeeklySchedule {
	week := everyDay(sessions...)
	week["sunday"] = []Session{}
	return week
}

func mustNew(t *testing.T, week WeeklySchedule, zone string, alterations Alterations) *OpeningTimes {
	t.Helper()
	ot, err := New(week, zone, alterations)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return ot
}

func expectSameInstant(t *testing.T, label string, got, want time.Time) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("%s: expected %s, got %s", label, want.Format(time.RFC3339), got.Format(time.RFC3339))
	}
}
