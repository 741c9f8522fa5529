// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package sysclock reads and sets the kernel wall clock and reports
// the kernel's time-synchronization state.
//
// The synchronized flag is derived from adjtimex(2)'s maximum-error
// estimate compared against the kernel's phase limit, the same check
// the kernel applies internally (see NTP_PHASE_LIMIT in
// kernel/time/ntp.c). STA_UNSYNC alone is not reliable on all
// configurations, so the estimate comparison is authoritative here.
// The flag is stale the instant it is read; callers must re-query.
package sysclock

import (
	"math"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

const (
	usecPerSec  = 1_000_000
	nsecPerUsec = 1_000

	// maxPhaseNsec is the kernel's MAXPHASE in nanoseconds.
	maxPhaseNsec = 500_000_000

	// syncMaxErrorUsec is the maximum-error threshold below which the
	// clock counts as synchronized: NTP_PHASE_LIMIT scaled to
	// microseconds ((MAXPHASE / NSEC_PER_USEC) << 5).
	syncMaxErrorUsec = (maxPhaseNsec / nsecPerUsec) << 5
)

// usecFromTimespec converts a clock_gettime result to microseconds
// since the epoch. Readings before the epoch or beyond the int64
// microsecond range are rejected rather than wrapped.
func usecFromTimespec(sec, nsec int64) (uint64, error) {
	if sec < 0 || nsec < 0 {
		return 0, ipc.Internalf("clock reading precedes the epoch")
	}
	if sec > (math.MaxInt64-nsec/nsecPerUsec)/usecPerSec {
		return 0, ipc.Internalf("clock reading overflows microsecond range")
	}
	return uint64(sec*usecPerSec + nsec/nsecPerUsec), nil
}

// synchronizedFromMaxError applies the phase-limit threshold to an
// adjtimex maximum-error estimate (in microseconds).
func synchronizedFromMaxError(maxErrorUsec int64) bool {
	return maxErrorUsec < syncMaxErrorUsec
}
