// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package rtc is the bridge to the hardware real-time clock device.
//
// The RTC stores broken-down calendar fields with no zone information:
// the same register contents mean a different instant depending on
// whether the host keeps its RTC in UTC or local time (the adjtime
// convention). This package performs the field↔instant conversion for
// a caller-supplied *time.Location; choosing the right location for
// the configured RTC mode is the caller's job.
//
// The device control calls (RTC_RD_TIME, RTC_SET_TIME) are the only
// unsafe-adjacent surface in sundial; nothing outside this package
// touches the ioctls directly.
package rtc
