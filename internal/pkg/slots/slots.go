// Package slots holds the fixed weekly grid of the studio and the small
// date/time string helpers shared by the board and the studio API.
//
// Timestamps are naive local wall-clock strings (YYYY-MM-DDTHH:MM:SS). They
// never carry a zone and are never converted to UTC.
package slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	TimestampLayout = "2006-01-02T15:04:05"

	minuteLayout = "2006-01-02T15:04"
	keyLength    = len(minuteLayout)
)

// Weekdays are the board columns, Monday first.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// TimeSlots are the board rows. There is no 13:00 slot.
var TimeSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"14:00", "15:00", "16:00", "17:00",
}

// DateForWeekdayIndex returns the ISO date of the index-th weekday (0 is
// Monday) of the week containing now. Sunday belongs to the week that
// started six days earlier.
func DateForWeekdayIndex(now time.Time, index int) string {
	weekday := int(now.Weekday())
	mondayOffset := 1 - weekday
	if now.Weekday() == time.Sunday {
		mondayOffset = -6
	}
	year, month, day := now.Date()
	target := time.Date(year, month, day+mondayOffset+index, 0, 0, 0, 0, now.Location())
	return target.Format(DateLayout)
}

// CombineDateAndTime joins a YYYY-MM-DD date and an HH:MM clock into a naive timestamp.
func CombineDateAndTime(date, clock string) string {
	return date + "T" + clock + ":00"
}

// AddOneHour advances an HH:MM clock by one hour, wrapping at midnight.
func AddOneHour(clock string) string {
	parts := strings.SplitN(clock, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := "00"
	if len(parts) == 2 {
		minutes = parts[1]
	}
	return fmt.Sprintf("%02d:%s", (hours+1)%24, minutes)
}

// SlotKey truncates a timestamp to minute precision. Shorter input is returned as is.
func SlotKey(timestamp string) string {
	if len(timestamp) < keyLength {
		return timestamp
	}
	return timestamp[:keyLength]
}

// SessionBounds returns the start and end timestamps of a one hour session.
func SessionBounds(date, clock string) (string, string) {
	return CombineDateAndTime(date, clock), CombineDateAndTime(date, AddOneHour(clock))
}

// ClockOf returns the HH:MM part of a timestamp, or "" when it has none.
func ClockOf(timestamp string) string {
	if len(timestamp) < keyLength {
		return ""
	}
	return timestamp[11:keyLength]
}

// DateOf returns the YYYY-MM-DD part of a timestamp.
func DateOf(timestamp string) string {
	if len(timestamp) < len(DateLayout) {
		return timestamp
	}
	return timestamp[:len(DateLayout)]
}

// ParseTimestamp reads a naive timestamp in local wall-clock time. Seconds are
// optional. Values carrying a zone are converted to the local zone first.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{TimestampLayout, minuteLayout, "2006-01-02T15:04:05.999999"} {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, nil
		}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.Local(), nil
}

// FormatTimestamp renders t as a naive local timestamp.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// ParseDate reads a YYYY-MM-DD date at local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}

// IsDate reports whether value is a valid YYYY-MM-DD date.
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// IsClock reports whether value is a valid HH:MM clock.
func IsClock(value string) bool {
	if len(value) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, value)
	return err == nil
}
