// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"testing"
	"time"
)

func TestParseDateValid(t *testing.T) {
	cases := map[string]time.Time{
		"01/01/2020": time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		"31/12/1999": time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
		"29/02/2024": time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), // leap year
		"15/06/2026": time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, ok := ParseDate(in)
		if !ok {
			t.Errorf("ParseDate(%q): expected success", in)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	cases := []string{
		"",
		"2024-02-29", // ISO format not accepted
		"1/1/2020",   // missing zero padding
		"01/01/20",   // two-digit year
		"31/02/2024", // February never has 31 days
		"29/02/2023", // not a leap year
		"00/01/2020", // day zero
		"01/00/2020", // month zero
		"32/01/2020",
		"01/13/2020",
		"aa/bb/cccc",
		"01/01/2020 ",
	}
	for _, in := range cases {
		if _, ok := ParseDate(in); ok {
			t.Errorf("ParseDate(%q): expected failure", in)
		}
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	in := "05/09/2026"
	parsed, ok := ParseDate(in)
	if !ok {
		t.Fatalf("ParseDate(%q) failed", in)
	}
	if got := FormatDate(parsed); got != in {
		t.Errorf("FormatDate(ParseDate(%q)) = %q", in, got)
	}
}

func TestStartOfDayUTC(t *testing.T) {
	in := time.Date(2026, 8, 30, 23, 59, 58, 0, time.UTC)
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := StartOfDayUTC(in); !got.Equal(want) {
		t.Errorf("StartOfDayUTC(%v) = %v, want %v", in, got, want)
	}
}
