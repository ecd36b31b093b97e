// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"regexp"
	"strconv"
	"time"
)

// dateLayout is the site's wire format for calendar dates.
const dateLayout = "02/01/2006"

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// ParseDate converts a stored DD/MM/YYYY string into a UTC midnight
// time.Time. The boolean is false when the text does not match the pattern
// or does not denote a real calendar date (31/02/2024, 00/01/2020). Stored
// dates can be hand-edited directly in the database, so callers must treat
// a false result as "unparseable", not as a bug.
func ParseDate(s string) (time.Time, bool) {
	if !datePattern.MatchString(s) {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(s[0:2])
	month, _ := strconv.Atoi(s[3:5])
	year, _ := strconv.Atoi(s[6:10])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	// time.Date normalizes out-of-range components (Feb 31 becomes Mar 2/3),
	// so an exact round-trip is the real calendar check.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a time back into the DD/MM/YYYY wire format.
// For any valid stored date, FormatDate(ParseDate(s)) == s.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// StartOfDayUTC truncates a time to midnight UTC. The UTC day is the fixed
// reference for deciding whether an event is still upcoming, independent of
// the server's or visitor's local zone.
func StartOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
