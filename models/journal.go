package models

import "time"

// Journal is a rich-text entry keyed by calendar day. A user has at most
// one entry per day.
type Journal struct {
	ID               string    `json:"id"`
	UserID           int64     `json:"-"`
	Day              string    `json:"day"`
	Content          string    `json:"content"`
	SanitizedContent string    `json:"sanitized_content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DisplayTitle formats the day for list views, e.g. "Monday, January 2, 2006".
// A malformed day is returned unchanged.
func (j Journal) DisplayTitle() string {
	t, err := time.Parse(JournalDayLayout, j.Day)
	if err != nil {
		return j.Day
	}
	return t.Format("Monday, January 2, 2006")
}

// SaveJournalRequest is the body of PUT /api/journals/{day}.
type SaveJournalRequest struct {
	Content          string `json:"content" validate:"max=1048576"`
	SanitizedContent string `json:"sanitized_content,omitempty"`
}

// ParseJournalDay reports whether day is a valid calendar date in
// [JournalDayLayout] and returns it normalized.
func ParseJournalDay(day string) (string, bool) {
	t, err := time.Parse(JournalDayLayout, day)
	if err != nil {
		return "", false
	}
	return t.Format(JournalDayLayout), true
}

// Today returns the journal day for now in loc.
func Today(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(JournalDayLayout)
}
