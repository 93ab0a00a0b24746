package shift

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// MinutesOfDay converts a 24-hour "HH:MM" string to minutes since midnight.
func MinutesOfDay(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, &ParseError{Value: s}
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, &ParseError{Value: s}
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, &ParseError{Value: s}
	}
	return hours*60 + minutes, nil
}

// ClockString renders minutes since midnight as a 24-hour "HH:MM" string.
func ClockString(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SpanMinutes returns the number of minutes from start to end, where both are
// minutes since midnight. An end earlier than the start means the span crosses
// midnight (night shifts), so the remainder of the day is added to the end.
func SpanMinutes(start, end int) int {
	if end < start {
		return (minutesPerDay - start) + end
	}
	return end - start
}

// FormatHours renders a worked-minutes total as "8h 30m", or "-" when the
// total is unknown or zero.
func FormatHours(minutes *int) string {
	if minutes == nil || *minutes == 0 {
		return "-"
	}
	return fmt.Sprintf("%dh %dm", *minutes/60, *minutes%60)
}

// Display12h converts a 24-hour "HH:MM" string to "hh:mm AM/PM" for display.
// Unparsable input is returned unchanged.
func Display12h(s string) string {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return s
	}
	return t.Format("03:04 PM")
}
