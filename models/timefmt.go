package models

import (
	"strconv"
	"time"
)

// DateLayout is the calendar date layout accepted on the command line.
const DateLayout = "2006-01-02"

// TimestampLayout renders remote unix timestamps in output files.
const TimestampLayout = "2006-01-02 15:04:05"

// UnixString parses a unix timestamp sent as a decimal string. Fractions are
// accepted. The zero time is returned for empty or malformed input.
func UnixString(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}
	}
	sec := int64(f)
	nsec := int64((f - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC()
}

// FormatUnix renders a raw unix timestamp with [TimestampLayout], or returns
// an empty string when raw does not parse.
func FormatUnix(raw string) string {
	t := UnixString(raw)
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}
