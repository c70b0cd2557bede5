package content

import (
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the day precision layout the CMS uses for date only fields
const DateLayout string = "2006-01-02"

// ParseDate parses the date and datetime formats that Drupal emits, such as
// 2024-01-15, 2024-01-15T09:30:00 and 2024-01-15T09:30:00+01:00. Values
// without a zone are read as UTC.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// Day truncates t to its UTC calendar day and formats it as a date only value
func Day(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func (s CourseSchedule) Starts() (time.Time, bool) {
	return ParseDate(s.StartDate)
}

func (s CourseSchedule) Ends() (time.Time, bool) {
	return ParseDate(s.EndDate)
}

func (e Event) Starts() (time.Time, bool) {
	return ParseDate(e.EventDate)
}
