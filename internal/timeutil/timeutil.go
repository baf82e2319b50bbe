// Package timeutil provides utility functions for working with local dates,
// durations, and week boundaries.
package timeutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// DateFormat is the local-date layout used for session attribution.
const DateFormat = "2006-01-02"

const (
	secondsInAnHour   = 3600
	secondsInAMinute  = 60
	daysInAWeek       = 7
	idSuffixLength    = 5
	idSuffixAlphabet  = "abcdefghijklmnopqrstuvwxyz0123456789"
	idTimestampLayout = "20060102-150405"
)

// ToDateString formats t as YYYY-MM-DD using its own calendar fields, so a
// late-evening local time never shifts to the next UTC day.
func ToDateString(t time.Time) string {
	return t.Format(DateFormat)
}

// FromDateString parses a YYYY-MM-DD string as local midnight. It is the
// inverse of ToDateString.
func FromDateString(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// FormatDuration expresses a seconds value as "1h 40m". Negative input
// yields the zero string instead of an error.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / secondsInAnHour
	m := (seconds % secondsInAnHour) / secondsInAMinute

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatClock expresses a seconds value as zero-padded "HH:MM:SS".
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / secondsInAnHour
	m := (seconds % secondsInAnHour) / secondsInAMinute
	s := seconds % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// StartOfWeek returns the Monday of the ISO week containing t, preserving
// the time of day. Sunday counts as day 7, not day 0.
func StartOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = daysInAWeek
	}

	return t.AddDate(0, 0, -(wd - 1))
}

// RoundToStart resets the given time to the start of the calendar day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RoundToEnd resets the given time to the end of the calendar day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// ToKey converts a time value to a database key for Bolt. RFC3339Nano keys
// sort chronologically under bytewise comparison.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}

// GenerateID creates a unique record ID from a timestamp and a short random
// suffix.
func GenerateID(t time.Time) string {
	suffix := make([]byte, idSuffixLength)
	for i := range suffix {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(idSuffixAlphabet))))
		suffix[i] = idSuffixAlphabet[n.Int64()]
	}

	return fmt.Sprintf("%s-%s", t.Format(idTimestampLayout), string(suffix))
}
