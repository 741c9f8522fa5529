// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package sysclock

import (
	"errors"
	"math"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

// Now returns CLOCK_REALTIME as microseconds since the UTC epoch.
func Now() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		if errors.Is(err, unix.ENOSYS) {
			return 0, ipc.Unsupportedf("clock_gettime not supported on this system")
		}
		return 0, ipc.Internalf("unable to get current time: %v", err)
	}
	return usecFromTimespec(int64(ts.Sec), int64(ts.Nsec))
}

// Synchronized reports whether the kernel considers the clock
// disciplined by an external synchronization mechanism. It never
// fails: any adjtimex error reads as "not synchronized".
func Synchronized() bool {
	var buf unix.Timex
	if _, err := unix.Adjtimex(&buf); err != nil {
		return false
	}
	return synchronizedFromMaxError(int64(buf.Maxerror))
}

// Set steps CLOCK_REALTIME to the given microsecond count.
func Set(usec uint64) error {
	if usec > math.MaxInt64/nsecPerUsec {
		return ipc.Internalf("time %d µs overflows the kernel timespec range", usec)
	}
	ts := unix.NsecToTimespec(int64(usec) * nsecPerUsec)
	if err := unix.ClockSettime(unix.CLOCK_REALTIME, &ts); err != nil {
		if errors.Is(err, unix.EPERM) {
			return ipc.Errorf(ipc.CodeAuthDenied, "setting the system clock requires CAP_SYS_TIME")
		}
		return ipc.Internalf("clock_settime: %v", err)
	}
	return nil
}

// kernelTimezone mirrors struct timezone from settimeofday(2).
type kernelTimezone struct {
	minuteswest int32
	dsttime     int32
}

// SetKernelTimezone tells the kernel the wall-clock offset (minutes
// west of Greenwich). The kernel uses this to interpret a local-time
// RTC and to timestamp FAT filesystems; it must be refreshed after a
// timezone or RTC-mode change.
func SetKernelTimezone(minutesWest int) error {
	tz := kernelTimezone{minuteswest: int32(minutesWest)}
	_, _, errno := unix.Syscall(unix.SYS_SETTIMEOFDAY, 0, uintptr(unsafe.Pointer(&tz)), 0)
	if errno != 0 {
		return ipc.Internalf("settimeofday timezone update: %v", errno)
	}
	return nil
}
