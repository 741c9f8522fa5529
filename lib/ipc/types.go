// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package ipc

// Action names understood by the sundiald socket.
const (
	ActionSetTime       = "set-time"
	ActionSetTimezone   = "set-timezone"
	ActionSetLocalRTC   = "set-local-rtc"
	ActionSetNTP        = "set-ntp"
	ActionListTimezones = "list-timezones"
	ActionGetProperty   = "get-property"
	ActionStatus        = "status"
)

// Property names, matching the org.freedesktop.timedate1 interface.
const (
	PropTimezone        = "Timezone"
	PropLocalRTC        = "LocalRTC"
	PropCanNTP          = "CanNTP"
	PropNTP             = "NTP"
	PropNTPSynchronized = "NTPSynchronized"
	PropTimeUSec        = "TimeUSec"
	PropRTCTimeUSec     = "RTCTimeUSec"
)

// Authorization action identifiers sent to the policy authority. These
// keep the reverse-DNS form of the original interface so existing
// policy rules apply unchanged.
const (
	AuthActionSetTime     = "org.freedesktop.timedate1.set-time"
	AuthActionSetTimezone = "org.freedesktop.timedate1.set-timezone"
	AuthActionSetLocalRTC = "org.freedesktop.timedate1.set-local-rtc"
)

// SetTimeRequest changes the system clock. UsecUTC is either an
// absolute microsecond count since the UTC epoch (Relative false) or a
// signed adjustment in microseconds (Relative true).
type SetTimeRequest struct {
	UsecUTC     int64 `cbor:"usec_utc"`
	Relative    bool  `cbor:"relative"`
	Interactive bool  `cbor:"interactive"`
}

// SetTimezoneRequest changes the configured timezone. Timezone is a
// zone database identifier such as "America/New_York".
type SetTimezoneRequest struct {
	Timezone    string `cbor:"timezone"`
	Interactive bool   `cbor:"interactive"`
}

// SetLocalRTCRequest changes whether the RTC keeps local time (true)
// or UTC (false). FixSystem selects the resynchronization direction:
// true sets the system clock from the RTC, false sets the RTC from the
// system clock.
type SetLocalRTCRequest struct {
	LocalRTC    bool `cbor:"local_rtc"`
	FixSystem   bool `cbor:"fix_system"`
	Interactive bool `cbor:"interactive"`
}

// SetNTPRequest asks to enable or disable network time synchronization.
// sundiald integrates no synchronization mechanism, so the daemon
// always rejects this with CodeUnsupported.
type SetNTPRequest struct {
	UseNTP      bool `cbor:"use_ntp"`
	Interactive bool `cbor:"interactive"`
}

// GetPropertyRequest reads one named property.
type GetPropertyRequest struct {
	Name string `cbor:"name"`
}

// PropertyValue carries one property read result. Exactly one value
// field is populated, matching the property's type.
type PropertyValue struct {
	Name   string  `cbor:"name"`
	String *string `cbor:"string,omitempty"`
	Bool   *bool   `cbor:"bool,omitempty"`
	Uint64 *uint64 `cbor:"uint64,omitempty"`
}

// TimezoneList is the response to list-timezones, in zone database
// file order.
type TimezoneList struct {
	Zones []string `cbor:"zones"`
}

// Status aggregates every property for the CLI's status display.
// Properties that are intentionally unsupported (CanNTP, NTP) are nil.
// An RTC read failure does not fail the whole call; RTCError carries
// the failure text and RTCTimeUSec is nil. A present RTCTimeUSec is a
// real reading, including a legitimate zero (the epoch instant).
type Status struct {
	Timezone        string  `cbor:"timezone"`
	LocalRTC        bool    `cbor:"local_rtc"`
	CanNTP          *bool   `cbor:"can_ntp,omitempty"`
	NTP             *bool   `cbor:"ntp,omitempty"`
	NTPSynchronized bool    `cbor:"ntp_synchronized"`
	TimeUSec        uint64  `cbor:"time_usec"`
	RTCTimeUSec     *uint64 `cbor:"rtc_time_usec,omitempty"`
	RTCError        string  `cbor:"rtc_error,omitempty"`
}
