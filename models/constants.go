package models

import "time"

// Swipe action kinds
const (
	ActionLike = "like"
	ActionSkip = "skip"
)

// TimestampFormat is a fixed-width RFC3339 layout so that stored timestamps
// compare correctly as plain strings (RFC3339Nano trims trailing zeros and
// breaks lexicographic ordering).
const TimestampFormat = "2006-01-02T15:04:05.000000000Z"

// NowTimestamp returns the current UTC time in TimestampFormat
func NowTimestamp() string {
	return time.Now().UTC().Format(TimestampFormat)
}
