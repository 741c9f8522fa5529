// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"
	"time"
)

// absoluteFormats are the accepted absolute time layouts, tried in
// order. Layouts without a zone are interpreted in the local timezone;
// layouts without a date mean today.
var absoluteFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// parseTimeSpec parses a set-time argument. A leading '+' or '-' makes
// the spec a relative adjustment parsed as a Go duration ("+5m",
// "-2h30m"); anything else must match one of the absolute layouts.
// Returns the microsecond value to send and whether it is relative.
func parseTimeSpec(spec string, now time.Time) (int64, bool, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return 0, false, fmt.Errorf("empty time specification")
	}

	if spec[0] == '+' || spec[0] == '-' {
		duration, err := time.ParseDuration(strings.TrimPrefix(spec, "+"))
		if err != nil {
			return 0, false, fmt.Errorf("invalid adjustment %q: %w", spec, err)
		}
		return duration.Microseconds(), true, nil
	}

	for _, layout := range absoluteFormats {
		parsed, err := time.ParseInLocation(layout, spec, now.Location())
		if err != nil {
			continue
		}
		// Time-only layouts parse to year 0; transplant them onto
		// today's date.
		if parsed.Year() == 0 {
			parsed = time.Date(now.Year(), now.Month(), now.Day(),
				parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location())
		}
		if parsed.Unix() < 0 {
			return 0, false, fmt.Errorf("time %q is before the epoch", spec)
		}
		return parsed.UnixMicro(), false, nil
	}

	return 0, false, fmt.Errorf("unrecognized time %q (want RFC 3339, \"2006-01-02 15:04:05\", \"15:04:05\", or a +/- duration)", spec)
}
