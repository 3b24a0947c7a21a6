package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout is the format users type session times in
const DateTimeLayout = "2006-01-02 15:04"

// DateLayout is the format for dates of birth
const DateLayout = "2006-01-02"

var (
	dateTimeRegex = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})[ T](\d{1,2}):(\d{2})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s+(minute|minutes|min|hour|hours|day|days|week|weeks)(\s+ago)?$`)
)

// now is swapped out in tests
var now = time.Now

// ParseDateTime parses a point in time in the local zone
// Supported formats:
// - yyyy-mm-dd hh:mm (e.g., "2025-01-06 14:00")
// - now
// - X minutes|hours|days|weeks, optionally followed by "ago" (e.g., "2 hours", "3 days ago")
func ParseDateTime(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("time is required")
	}

	if strings.EqualFold(input, "now") {
		return now().Truncate(time.Minute), nil
	}

	if t, err := parseDateTimeFormat(input); err == nil {
		return t, nil
	} else if dateTimeRegex.MatchString(input) {
		return time.Time{}, err
	}

	if t, err := parseRelativeTime(input); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time %q. Use: YYYY-MM-DD HH:MM, now, or X hours/days/weeks [ago]", input)
}

// parseDateTimeFormat parses yyyy-mm-dd hh:mm
func parseDateTimeFormat(input string) (time.Time, error) {
	matches := dateTimeRegex.FindStringSubmatch(input)
	if len(matches) != 6 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	var parts [5]int
	for i := range parts {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid number %q", matches[i+1])
		}
		parts[i] = n
	}
	year, month, day, hour, minute := parts[0], parts[1], parts[2], parts[3], parts[4]

	// Validate ranges
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if hour > 23 {
		return time.Time{}, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("minute must be between 0 and 59")
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return t, nil
}

// parseRelativeTime parses offsets from now like "90 minutes" or "2 days ago"
func parseRelativeTime(input string) (time.Time, error) {
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	var unit time.Duration
	switch matches[2] {
	case "minute", "minutes", "min":
		unit = time.Minute
	case "hour", "hours":
		unit = time.Hour
	case "day", "days":
		unit = 24 * time.Hour
	case "week", "weeks":
		unit = 7 * 24 * time.Hour
	}

	offset := time.Duration(amount) * unit
	if offset > 366*24*time.Hour { // Max 1 year either way
		return time.Time{}, fmt.Errorf("relative time must be within a year")
	}
	if matches[3] != "" {
		offset = -offset
	}

	return now().Add(offset).Truncate(time.Minute), nil
}

// ParseDate parses yyyy-mm-dd. Empty input yields nil.
func ParseDate(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, input)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q. Use: YYYY-MM-DD", input)
	}
	return &t, nil
}

// FormatWindow renders a session window for tables
func FormatWindow(start, end time.Time) string {
	start, end = start.Local(), end.Local()
	if start.YearDay() == end.YearDay() && start.Year() == end.Year() {
		return fmt.Sprintf("%s %s-%s", start.Format("Mon 02 Jan 2006"), start.Format("15:04"), end.Format("15:04"))
	}
	return fmt.Sprintf("%s - %s", start.Format(DateTimeLayout), end.Format(DateTimeLayout))
}
