package models

// Session is one opening interval within a day, as HH:MM wall-clock times.
type Session struct {
	Opens  string `json:"opens" bson:"opens"`
	Closes string `json:"closes" bson:"closes"`
}

// WeeklySchedule maps lowercase weekday names to that day's sessions.
// An empty slice means closed all day.
type WeeklySchedule map[string][]Session

// Alterations maps YYYY-MM-DD dates to sessions that replace the weekly
// sessions for that date. An empty slice closes the venue for the day.
type Alterations map[string][]Session

// FormattedSession is a Session rendered for display.
type FormattedSession struct {
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}
