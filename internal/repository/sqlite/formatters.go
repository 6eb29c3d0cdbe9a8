package sqlite

import (
	"time"
)

// TimeLayout is the storage format for all timestamps: sortable ISO 8601 with
// second precision, local time, no offset.
const TimeLayout = "2006-01-02T15:04:05"

// FormatTimeForDB formats a time.Time value for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(TimeLayout)
}

// FormatTimePtrForDB formats a *time.Time value, returning nil if the pointer is nil
func FormatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB parses a stored timestamp string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

// ParseTimePtrFromDB parses an optional stored timestamp, mapping empty
// strings to nil
func ParseTimePtrFromDB(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseTimeFromDB(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
