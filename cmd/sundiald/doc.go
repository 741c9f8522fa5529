// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Command sundiald is the privileged time administration daemon. It
// owns the host's system clock, configured timezone, and hardware
// clock time-base convention, and serves the timedate interface
// (org.freedesktop.timedate1 semantics) over a Unix socket.
//
// Read-only properties consult the kernel clock, the zone database,
// and the adjtime file directly on every call. Mutations run a fixed
// sequence (validate, authorize against the policy service, mutate,
// resynchronize dependent state) serialized so that concurrent
// callers cannot race on the exclusive RTC device. Network time
// synchronization is intentionally not integrated: SetNTP and the NTP
// properties report unsupported.
package main
