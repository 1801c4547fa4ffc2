// Package legacyhours converts the opening-times layouts used by older feeds
// and stored documents into openingtimes.WeeklySchedule.
//
// Accepted per-day values:
//
//	[{"opens": "09:00", "closes": "17:30"}]        canonical
//	[{"fromTime": "09:00", "toTime": "17:30"}]     feed session objects
//	{"times": [{"fromTime": ...}, ...]}           wrapped list
//	{"times": ["Closed"]}                          wrapped closed sentinel
//	"Closed"                                       bare closed sentinel
package legacyhours

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"openinghours/services/openingtimes"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const closedSentinel = "closed"

// ErrUnrecognisedShape is returned for day values matching no known layout.
var ErrUnrecognisedShape = errors.New("unrecognised opening times shape")

// ErrDuplicateDay is returned when two keys name the same day once case and
// surrounding space are ignored.
var ErrDuplicateDay = errors.New("day defined more than once")

type legacySession struct {
	Opens    string `json:"opens"`
	Closes   string `json:"closes"`
	FromTime string `json:"fromTime"`
	ToTime   string `json:"toTime"`
}

type wrappedDay struct {
	Times json.RawMessage `json:"times"`
}

// Parse decodes a JSON object keyed by weekday.
func Parse(raw []byte) (openingtimes.WeeklySchedule, error) {
	var days map[string]json.RawMessage
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("failed to decode opening times: %w", err)
	}
	return FromDays(days)
}

// FromDays converts already split day values. A JSON null day is kept as a
// nil slice so that openingtimes.New reports it.
func FromDays(days map[string]json.RawMessage) (openingtimes.WeeklySchedule, error) {
	if days == nil {
		return nil, nil
	}
	lower := cases.Lower(language.Und)
	week := make(openingtimes.WeeklySchedule, len(days))
	for key, value := range days {
		day := lower.String(strings.TrimSpace(key))
		if _, dup := week[day]; dup {
			return nil, fmt.Errorf("%s: %w", day, ErrDuplicateDay)
		}
		sessions, err := decodeDay(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day, err)
		}
		week[day] = sessions
	}
	return week, nil
}

// ParseAlterations decodes a JSON object keyed by YYYY-MM-DD using the same
// per-day layouts as Parse. Empty or null input yields nil.
func ParseAlterations(raw []byte) (openingtimes.Alterations, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var dates map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &dates); err != nil {
		return nil, fmt.Errorf("failed to decode alterations: %w", err)
	}
	alterations := make(openingtimes.Alterations, len(dates))
	for key, value := range dates {
		date := strings.TrimSpace(key)
		if _, dup := alterations[date]; dup {
			return nil, fmt.Errorf("%s: %w", date, ErrDuplicateDay)
		}
		sessions, err := decodeDay(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", date, err)
		}
		if sessions == nil {
			sessions = []openingtimes.Session{}
		}
		alterations[date] = sessions
	}
	return alterations, nil
}

func decodeDay(value json.RawMessage) ([]openingtimes.Session, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '"':
		var sentinel string
		if err := json.Unmarshal(trimmed, &sentinel); err != nil {
			return nil, err
		}
		if !isClosed(sentinel) {
			return nil, fmt.Errorf("%w: string %q", ErrUnrecognisedShape, sentinel)
		}
		return []openingtimes.Session{}, nil
	case '[':
		return decodeList(trimmed)
	case '{':
		var wrapped wrappedDay
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, err
		}
		if wrapped.Times == nil {
			return nil, fmt.Errorf("%w: object without times", ErrUnrecognisedShape)
		}
		sessions, err := decodeDay(wrapped.Times)
		if err != nil {
			return nil, err
		}
		if sessions == nil {
			sessions = []openingtimes.Session{}
		}
		return sessions, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognisedShape, string(trimmed))
	}
}

func decodeList(raw json.RawMessage) ([]openingtimes.Session, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	sessions := make([]openingtimes.Session, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var sentinel string
			if err := json.Unmarshal(item, &sentinel); err != nil {
				return nil, err
			}
			if !isClosed(sentinel) {
				return nil, fmt.Errorf("%w: entry %d %q", ErrUnrecognisedShape, i+1, sentinel)
			}
			continue
		}

		var s legacySession
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		session := openingtimes.Session{Opens: s.Opens, Closes: s.Closes}
		if session.Opens == "" && session.Closes == "" {
			session = openingtimes.Session{Opens: s.FromTime, Closes: s.ToTime}
		}
		if session.Opens == "" || session.Closes == "" {
			return nil, fmt.Errorf("%w: entry %d has no time range", ErrUnrecognisedShape, i+1)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func isClosed(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), closedSentinel)
}
