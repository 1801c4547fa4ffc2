package openingtimes

import (
	"testing"
	"time"
)

func threeSessionWeek() WeeklySchedule {
	return workingWeekWithCustomSessions(
		Session{Opens: "09:00", Closes: "12:30"},
		Session{Opens: "13:30", Closes: "17:30"},
		Session{Opens: "18:30", Closes: "00:00"},
	)
}

func TestFormatSessions(t *testing.T) {
	ot := mustNew(t, threeSessionWeek(), "Europe/London", nil)

	tests := []struct {
		name   string
		layout string
		want   []FormattedSession
	}{
		{
			name:   "default am/pm",
			layout: "",
			want: []FormattedSession{
				{Opens: "9:00 am", Closes: "12:30 pm"},
				{Opens: "1:30 pm", Closes: "5:30 pm"},
				{Opens: "6:30 pm", Closes: "midnight"},
			},
		},
		{
			name:   "two digit 24 hour",
			layout: "15:04",
			want: []FormattedSession{
				{Opens: "09:00", Closes: "12:30"},
				{Opens: "13:30", Closes: "17:30"},
				{Opens: "18:30", Closes: "midnight"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted := ot.FormatSessions(tt.layout)
			if len(formatted) != len(Weekdays) {
				t.Fatalf("expected %d days, got %d", len(Weekdays), len(formatted))
			}
			monday := formatted["monday"]
			if len(monday) != len(tt.want) {
				t.Fatalf("expected %d sessions, got %+v", len(tt.want), monday)
			}
			for i := range tt.want {
				if monday[i] != tt.want[i] {
					t.Fatalf("session %d: expected %+v, got %+v", i, tt.want[i], monday[i])
				}
			}
			if len(formatted["sunday"]) != 0 {
				t.Fatalf("expected sunday closed, got %+v", formatted["sunday"])
			}
		})
	}
}

func TestFormatSessions_MidnightAliases(t *testing.T) {
	ot := mustNew(t, workingWeekWithCustomSessions(Session{Opens: "00:00", Closes: "23:59"}), "Europe/London", nil)
	got := ot.FormatSessions("15:04")["tuesday"]
	if len(got) != 1 || got[0].Opens != "midnight" || got[0].Closes != "midnight" {
		t.Fatalf("expected midnight/midnight, got %+v", got)
	}
}

func TestFormatSessions_ClosedAllWeek(t *testing.T) {
	ot := mustNew(t, closedAllWeek(), "Europe/London", nil)
	formatted := ot.FormatSessions("")
	for _, day := range Weekdays {
		sessions, ok := formatted[day]
		if !ok {
			t.Fatalf("expected %s to be present", day)
		}
		if len(sessions) != 0 {
			t.Fatalf("expected %s closed, got %+v", day, sessions)
		}
	}
}

func TestStatusMessage(t *testing.T) {
	const zone = "Europe/London"
	ot := mustNew(t, threeSessionWeek(), zone, nil)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"open", momentOn(t, "monday", 13, 30, zone), "Open until 5:30 pm today"},
		{"open until 00:00", momentOn(t, "monday", 19, 30, zone), "Open until midnight"},
		{"closed on sunday", momentOn(t, "sunday", 12, 0, zone), "Closed until 9:00 am tomorrow"},
		{"just after midnight close", momentOn(t, "saturday", 0, 30, zone), "Closed until 9:00 am today"},
		{"closed, opening in 2 hours", momentOn(t, "monday", 7, 0, zone), "Closed until 9:00 am today"},
		{"closed, opening in 30 minutes", momentOn(t, "monday", 8, 30, zone), "Opening in 30 minutes"},
		{"closed, opening in exactly an hour", momentOn(t, "monday", 8, 0, zone), "Opening in 60 minutes"},
		{"closed, opening in 61 minutes", momentOn(t, "monday", 7, 59, zone), "Closed until 9:00 am today"},
		{"closed, opening in a minute", momentOn(t, "monday", 8, 59, zone), "Opening in 1 minute"},
		{"queried from another zone", momentOn(t, "monday", 7, 30, "UTC"), "Opening in 30 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ot.StatusMessage(tt.at); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStatusMessage_RelativeDays(t *testing.T) {
	const zone = "Europe/London"

	t.Run("tomorrow", func(t *testing.T) {
		ot := mustNew(t, workingWeekWithLunchBreaks(), zone, nil)
		got := ot.StatusMessage(momentOn(t, "tuesday", 18, 0, zone))
		if want := "Closed until 9:00 am tomorrow"; got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("open past midnight", func(t *testing.T) {
		ot := mustNew(t, workingWeekWithCustomSessions(Session{Opens: "18:30", Closes: "01:00"}), zone, nil)
		got := ot.StatusMessage(momentOn(t, "monday", 23, 0, zone))
		if want := "Open until 1:00 am tomorrow"; got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("weekday name", func(t *testing.T) {
		week := closedAllWeek()
		week["thursday"] = []Session{{Opens: "10:00", Closes: "16:00"}}
		ot := mustNew(t, week, zone, nil)
		got := ot.StatusMessage(momentOn(t, "monday", 12, 0, zone))
		if want := "Closed until 10:00 am Thursday"; got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("literal date a week out", func(t *testing.T) {
		week := closedAllWeek()
		week["monday"] = []Session{{Opens: "09:00", Closes: "12:00"}}
		ot := mustNew(t, week, zone, nil)
		got := ot.StatusMessage(momentOn(t, "monday", 13, 0, zone))
		if want := "Closed until 9:00 am 1 August 2016"; got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("closing at 23:59", func(t *testing.T) {
		ot := mustNew(t, workingWeekWithCustomSessions(Session{Opens: "09:00", Closes: "23:59"}), zone, nil)
		got := ot.StatusMessage(momentOn(t, "monday", 22, 0, zone))
		if want := "Open until midnight"; got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestStatusMessage_Unknown(t *testing.T) {
	ot := mustNew(t, closedAllWeek(), "Europe/London", nil)
	if got := ot.StatusMessage(momentOn(t, "monday", 8, 30, "Europe/London")); got != UnknownOpeningMessage {
		t.Fatalf("expected %q, got %q", UnknownOpeningMessage, got)
	}
}
