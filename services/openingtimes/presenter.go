package openingtimes

import (
	"fmt"
	"math"
	"time"

	"openinghours/models"
)

// DefaultTimeLayout renders times as "9:00 am".
const DefaultTimeLayout = "3:04 pm"

// UnknownOpeningMessage is returned by StatusMessage when no opening can be
// found in the lookahead window.
const UnknownOpeningMessage = "The next opening time is unknown."

const (
	midnightLabel    = "midnight"
	soonOpeningLimit = time.Hour
	farDateLayout    = "2 January 2006"
)

// FormattedSession is a Session rendered for display.
type FormattedSession = models.FormattedSession

// FormatSessions renders every weekday's sessions with layout, a Go time
// layout (DefaultTimeLayout when empty). 00:00 and 23:59 always render as
// "midnight".
func (ot *OpeningTimes) FormatSessions(layout string) map[string][]FormattedSession {
	if layout == "" {
		layout = DefaultTimeLayout
	}

	formatted := make(map[string][]FormattedSession, len(Weekdays))
	for _, day := range Weekdays {
		spans := ot.week[weekdayIndex[day]]
		sessions := make([]FormattedSession, 0, len(spans))
		for _, s := range spans {
			sessions = append(sessions, FormattedSession{
				Opens:  formatClock(s.opens, layout),
				Closes: formatClock(s.closes, layout),
			})
		}
		formatted[day] = sessions
	}
	return formatted
}

// StatusMessage summarises the state at t, e.g. "Open until 5:30 pm today",
// "Opening in 30 minutes" or "Closed until 9:00 am tomorrow".
func (ot *OpeningTimes) StatusMessage(t time.Time) string {
	status := ot.GetStatus(t, StatusOptions{IncludeNext: true})

	if status.IsOpen {
		closes := status.NextClosed.In(ot.loc)
		if isMidnight(clockOf(closes)) {
			return "Open until midnight"
		}
		return fmt.Sprintf("Open until %s %s", closes.Format(DefaultTimeLayout), ot.relativeDay(t, closes))
	}

	if status.NextOpen == nil {
		return UnknownOpeningMessage
	}

	opens := status.NextOpen.In(ot.loc)
	if wait := opens.Sub(t); wait <= soonOpeningLimit {
		minutes := int(math.Ceil(wait.Minutes()))
		if minutes == 1 {
			return "Opening in 1 minute"
		}
		return fmt.Sprintf("Opening in %d minutes", minutes)
	}
	return fmt.Sprintf("Closed until %s %s", opens.Format(DefaultTimeLayout), ot.relativeDay(t, opens))
}

// relativeDay labels target relative to the calendar date of from, both
// taken in the schedule's time zone.
func (ot *OpeningTimes) relativeDay(from, target time.Time) string {
	fy, fm, fd := from.In(ot.loc).Date()
	ty, tm, td := target.In(ot.loc).Date()
	days := int(time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).
		Sub(time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)).Hours() / 24)

	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 7:
		return target.In(ot.loc).Weekday().String()
	default:
		return target.In(ot.loc).Format(farDateLayout)
	}
}

func formatClock(c clock, layout string) string {
	if isMidnight(c) {
		return midnightLabel
	}
	return time.Date(2000, time.January, 1, c.hour, c.minute, 0, 0, time.UTC).Format(layout)
}

func clockOf(t time.Time) clock {
	return clock{hour: t.Hour(), minute: t.Minute()}
}

func isMidnight(c clock) bool {
	return (c.hour == 0 && c.minute == 0) || (c.hour == 23 && c.minute == 59)
}
