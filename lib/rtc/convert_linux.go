// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package rtc

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

// rtcYearBase is the offset of the RTC year field, per rtc(4): the
// field counts years since 1900.
const rtcYearBase = 1900

// maxYear bounds the year field. Real hardware reports nothing past
// four digits; anything larger is register garbage, and rejecting it
// keeps the microsecond arithmetic comfortably inside int64.
const maxYear = 9999

// TimeFromFields converts the device's broken-down fields to an
// instant, interpreting the fields as wall-clock time in loc (time.UTC
// when the RTC convention is UTC, the active zone's location when it
// is local). Out-of-range fields, dates the calendar cannot represent,
// and instants before the UTC epoch are rejected rather than
// normalized or wrapped.
func TimeFromFields(rt unix.RTCTime, loc *time.Location) (time.Time, error) {
	year := int(rt.Year) + rtcYearBase
	if year < 1970 || year > maxYear {
		return time.Time{}, ipc.Internalf("RTC year %d out of range", year)
	}
	if rt.Mon < 0 || rt.Mon > 11 {
		return time.Time{}, ipc.Internalf("RTC month %d out of range", rt.Mon)
	}
	if rt.Mday < 1 || rt.Mday > 31 {
		return time.Time{}, ipc.Internalf("RTC day %d out of range", rt.Mday)
	}
	if rt.Hour < 0 || rt.Hour > 23 || rt.Min < 0 || rt.Min > 59 || rt.Sec < 0 || rt.Sec > 59 {
		return time.Time{}, ipc.Internalf("RTC time %02d:%02d:%02d out of range", rt.Hour, rt.Min, rt.Sec)
	}

	t := time.Date(year, time.Month(rt.Mon+1), int(rt.Mday),
		int(rt.Hour), int(rt.Min), int(rt.Sec), 0, loc)

	// time.Date normalizes impossible dates (Feb 30 becomes Mar 2).
	// The device reporting such fields is an error, not an instant.
	if t.Day() != int(rt.Mday) || t.Month() != time.Month(rt.Mon+1) {
		return time.Time{}, ipc.Internalf("RTC date %04d-%02d-%02d does not exist", year, rt.Mon+1, rt.Mday)
	}

	if t.Unix() < 0 {
		return time.Time{}, ipc.Internalf("RTC time precedes the epoch")
	}
	return t, nil
}

// FieldsFromTime converts t to RTC broken-down fields using t's own
// location: pass t.In(time.UTC) for a UTC RTC, t.In(zone) for a
// local-time RTC.
func FieldsFromTime(t time.Time) unix.RTCTime {
	return unix.RTCTime{
		Sec:   int32(t.Second()),
		Min:   int32(t.Minute()),
		Hour:  int32(t.Hour()),
		Mday:  int32(t.Day()),
		Mon:   int32(t.Month() - 1),
		Year:  int32(t.Year() - rtcYearBase),
		Wday:  int32(t.Weekday()),
		Yday:  int32(t.YearDay() - 1),
		Isdst: 0,
	}
}
