// Package openingtimes evaluates a venue's weekly opening hours, with optional
// date-specific alterations, against arbitrary instants.
//
// All session times are wall-clock HH:MM values in the schedule's time zone.
// A session whose closing time is not after its opening time runs into the
// following day, so {"18:30", "01:00"} closes at 01:00 the next morning and a
// closing time of "00:00" means the end of the day. Intervals are half-open:
// a venue is open at its opening instant and closed at its closing instant.
//
// An OpeningTimes is immutable once built and safe for concurrent use.
package openingtimes

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"openinghours/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// dateKeyLayout is the layout of Alterations keys.
const dateKeyLayout = "2006-01-02"

// Session, WeeklySchedule and Alterations are the stored schedule shapes.
// An empty session slice means closed for that day or date.
type (
	Session        = models.Session
	WeeklySchedule = models.WeeklySchedule
	Alterations    = models.Alterations
)

// Weekdays lists the keys every WeeklySchedule must carry, Monday first.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

type clock struct {
	hour   int
	minute int
}

// span is a parsed Session.
type span struct {
	opens  clock
	closes clock
}

// OpeningTimes is a validated weekly schedule bound to a time zone.
type OpeningTimes struct {
	timeZone    string
	loc         *time.Location
	weekly      WeeklySchedule
	week        [7][]span
	alterations Alterations
	altered     map[string][]span
}

// New validates and copies the schedule. The alterations table may be nil.
func New(weekly WeeklySchedule, timeZone string, alterations Alterations) (*OpeningTimes, error) {
	if len(weekly) == 0 {
		return nil, newValidationError(ErrMissingParameter, "openingTimes", "undefined/empty")
	}

	canonical, err := canonicalWeek(weekly)
	if err != nil {
		return nil, err
	}

	if timeZone == "" {
		return nil, newValidationError(ErrMissingParameter, "timeZone", "undefined/empty")
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, newValidationError(ErrInvalidTimeZone, "timeZone", "is not a valid time zone (%s)", timeZone)
	}

	ot := &OpeningTimes{
		timeZone: timeZone,
		loc:      loc,
		weekly:   canonical,
	}

	for day, sessions := range canonical {
		spans, err := parseSessions(sessions)
		if err != nil {
			return nil, newValidationError(ErrInvalidSchedule, "openingTimes", "has an invalid %s session: %v", day, err)
		}
		ot.week[weekdayIndex[day]] = spans
	}

	if alterations != nil {
		ot.alterations = make(Alterations, len(alterations))
		ot.altered = make(map[string][]span, len(alterations))
		for date, sessions := range alterations {
			spans, err := parseSessions(sessions)
			if err != nil {
				return nil, newValidationError(ErrInvalidSchedule, "alterations", "has an invalid session on %s: %v", date, err)
			}
			ot.alterations[date] = copySessions(sessions)
			ot.altered[date] = spans
		}
	}

	return ot, nil
}

// TimeZone returns the IANA identifier the schedule is anchored to.
func (ot *OpeningTimes) TimeZone() string {
	return ot.timeZone
}

// Location returns the schedule's time zone.
func (ot *OpeningTimes) Location() *time.Location {
	return ot.loc
}

// Weekly returns a copy of the weekly schedule with canonical day keys.
func (ot *OpeningTimes) Weekly() WeeklySchedule {
	out := make(WeeklySchedule, len(ot.weekly))
	for day, sessions := range ot.weekly {
		out[day] = copySessions(sessions)
	}
	return out
}

func canonicalWeek(weekly WeeklySchedule) (WeeklySchedule, error) {
	lower := cases.Lower(language.Und)
	canonical := make(WeeklySchedule, len(weekly))
	keys := make([]string, 0, len(weekly))
	for key, sessions := range weekly {
		day := lower.String(strings.TrimSpace(key))
		keys = append(keys, day)
		if _, dup := canonical[day]; dup {
			continue
		}
		canonical[day] = sessions
	}
	sort.Strings(keys)

	complete := len(keys) == len(Weekdays) && len(canonical) == len(Weekdays)
	for _, day := range Weekdays {
		if _, ok := canonical[day]; !ok {
			complete = false
		}
	}
	if !complete {
		return nil, newValidationError(ErrInvalidSchedule, "openingTimes",
			"should have all days of the week (%s)", strings.Join(keys, ","))
	}

	for _, day := range Weekdays {
		if canonical[day] == nil {
			return nil, newValidationError(ErrInvalidSchedule, "openingTimes",
				"should define opening times for each day (%s is undefined)", day)
		}
		canonical[day] = copySessions(canonical[day])
	}
	return canonical, nil
}

func parseSessions(sessions []Session) ([]span, error) {
	spans := make([]span, 0, len(sessions))
	for i, s := range sessions {
		opens, err := parseClock(s.Opens)
		if err != nil {
			return nil, fmt.Errorf("session %d opens: %w", i+1, err)
		}
		closes, err := parseClock(s.Closes)
		if err != nil {
			return nil, fmt.Errorf("session %d closes: %w", i+1, err)
		}
		spans = append(spans, span{opens: opens, closes: closes})
	}
	return spans, nil
}

// parseClock reads an HH:MM 24-hour time. Seconds are not accepted.
func parseClock(value string) (clock, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return clock{}, fmt.Errorf("%q is not in HH:MM form", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return clock{}, fmt.Errorf("%q has an invalid hour", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minute < 0 || minute > 59 {
		return clock{}, fmt.Errorf("%q has an invalid minute", value)
	}
	return clock{hour: hour, minute: minute}, nil
}

func copySessions(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	copy(out, sessions)
	return out
}
