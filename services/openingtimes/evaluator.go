package openingtimes

import "time"

// lookaheadDays bounds the NextOpen scan. Today plus a full week reaches the
// same weekday again.
const lookaheadDays = 7

// interval is a session anchored to a calendar date: [start, end).
type interval struct {
	start time.Time
	end   time.Time
}

func (iv interval) contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

// Status is the result of GetStatus. NextOpen and NextClosed are only
// populated when requested; NextOpen stays nil if no opening was found.
type Status struct {
	Instant    time.Time  `json:"instant"`
	IsOpen     bool       `json:"isOpen"`
	NextOpen   *time.Time `json:"nextOpen,omitempty"`
	NextClosed *time.Time `json:"nextClosed,omitempty"`
}

// StatusOptions controls GetStatus.
type StatusOptions struct {
	IncludeNext bool
}

// IsOpen reports whether t falls inside any session. Sessions that started
// the previous day and run past midnight are taken into account.
func (ot *OpeningTimes) IsOpen(t time.Time) bool {
	_, ok := ot.currentInterval(t)
	return ok
}

// NextOpen returns t itself when open, otherwise the start of the next
// session within the lookahead window. ok is false when none exists.
func (ot *OpeningTimes) NextOpen(t time.Time) (next time.Time, ok bool) {
	if ot.IsOpen(t) {
		return t, true
	}
	return ot.nextStart(t)
}

// NextClosed returns t itself when closed, otherwise the end of the session
// containing t.
func (ot *OpeningTimes) NextClosed(t time.Time) time.Time {
	iv, ok := ot.currentInterval(t)
	if !ok {
		return t
	}
	return iv.end
}

// GetStatus evaluates t once and, if asked, fills in the next transitions.
func (ot *OpeningTimes) GetStatus(t time.Time, opts StatusOptions) Status {
	status := Status{Instant: t}

	iv, open := ot.currentInterval(t)
	status.IsOpen = open
	if !opts.IncludeNext {
		return status
	}

	if open {
		nextOpen, nextClosed := t, iv.end
		status.NextOpen = &nextOpen
		status.NextClosed = &nextClosed
		return status
	}

	nextClosed := t
	status.NextClosed = &nextClosed
	if nextOpen, ok := ot.nextStart(t); ok {
		status.NextOpen = &nextOpen
	}
	return status
}

// currentInterval looks at today's sessions first, then yesterday's.
func (ot *OpeningTimes) currentInterval(t time.Time) (interval, bool) {
	for _, offset := range []int{0, -1} {
		for _, iv := range ot.intervalsOn(ot.day(t, offset)) {
			if iv.contains(t) {
				return iv, true
			}
		}
	}
	return interval{}, false
}

// nextStart finds the earliest session start after t, scanning day by day.
func (ot *OpeningTimes) nextStart(t time.Time) (time.Time, bool) {
	for offset := 0; offset <= lookaheadDays; offset++ {
		var best time.Time
		for _, iv := range ot.intervalsOn(ot.day(t, offset)) {
			if iv.start.After(t) && (best.IsZero() || iv.start.Before(best)) {
				best = iv.start
			}
		}
		if !best.IsZero() {
			return best, true
		}
	}
	return time.Time{}, false
}

// day returns noon, schedule time, on the calendar date offset days from t.
// Noon keeps the date stable across DST shifts.
func (ot *OpeningTimes) day(t time.Time, offset int) time.Time {
	y, m, d := t.In(ot.loc).Date()
	return time.Date(y, m, d+offset, 12, 0, 0, 0, ot.loc)
}

// spansFor applies the alteration for day's date, if any.
func (ot *OpeningTimes) spansFor(day time.Time) []span {
	if spans, ok := ot.altered[day.Format(dateKeyLayout)]; ok {
		return spans
	}
	return ot.week[day.Weekday()]
}

func (ot *OpeningTimes) intervalsOn(day time.Time) []interval {
	spans := ot.spansFor(day)
	if len(spans) == 0 {
		return nil
	}

	y, m, d := day.Date()
	intervals := make([]interval, 0, len(spans))
	for _, s := range spans {
		start := time.Date(y, m, d, s.opens.hour, s.opens.minute, 0, 0, ot.loc)
		end := time.Date(y, m, d, s.closes.hour, s.closes.minute, 0, 0, ot.loc)
		if !end.After(start) {
			end = time.Date(y, m, d+1, s.closes.hour, s.closes.minute, 0, 0, ot.loc)
		}
		intervals = append(intervals, interval{start: start, end: end})
	}
	return intervals
}
