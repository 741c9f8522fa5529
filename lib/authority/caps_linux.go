// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package authority

import (
	"golang.org/x/sys/unix"
)

// SysCaps probes the current process's capability sets via capget(2).
type SysCaps struct{}

// HasSysTime reports an effective CAP_SYS_TIME. Probe failures read as
// "not held": the fallback then denies, which is the conservative
// outcome.
func (SysCaps) HasSysTime() bool {
	header := unix.CapUserHeader{
		Version: unix.LINUX_CAPABILITY_VERSION_3,
		Pid:     0, // current process
	}
	// Version 3 fills two data elements; CAP_SYS_TIME (25) lives in
	// the first.
	var data [2]unix.CapUserData
	if err := unix.Capget(&header, &data[0]); err != nil {
		return false
	}
	return data[0].Effective&(1<<unix.CAP_SYS_TIME) != 0
}
