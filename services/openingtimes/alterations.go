package openingtimes

import "time"

// UpcomingAlterations returns the alterations dated on or after the calendar
// day of at, in the schedule's time zone. Nil when the schedule has none.
func (ot *OpeningTimes) UpcomingAlterations(at time.Time) Alterations {
	if ot.alterations == nil {
		return nil
	}

	today := at.In(ot.loc).Format(dateKeyLayout)
	upcoming := make(Alterations, len(ot.alterations))
	for date, sessions := range ot.alterations {
		if date >= today {
			upcoming[date] = copySessions(sessions)
		}
	}
	return upcoming
}

// Alterations returns a copy of the full alteration table, or nil.
func (ot *OpeningTimes) Alterations() Alterations {
	if ot.alterations == nil {
		return nil
	}
	out := make(Alterations, len(ot.alterations))
	for date, sessions := range ot.alterations {
		out[date] = copySessions(sessions)
	}
	return out
}
