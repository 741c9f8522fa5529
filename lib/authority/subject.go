// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package authority

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Subject identifies a unix process to the policy authority. The
// start time pins the identity: a PID alone could be recycled between
// the check and the decision.
type Subject struct {
	PID       uint32 `cbor:"pid"`
	StartTime uint64 `cbor:"start_time"`
	UID       uint32 `cbor:"uid"`
}

// OwnSubject builds the Subject for the current process. It is called
// once at daemon startup and reused for every authorization check.
func OwnSubject() (Subject, error) {
	pid := os.Getpid()
	stat, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return Subject{}, fmt.Errorf("reading process stat: %w", err)
	}
	startTime, err := startTimeFromStat(string(stat))
	if err != nil {
		return Subject{}, err
	}
	return Subject{
		PID:       uint32(pid),
		StartTime: startTime,
		UID:       uint32(os.Getuid()),
	}, nil
}

// startTimeFromStat extracts field 22 (starttime, in clock ticks since
// boot) from a /proc/<pid>/stat line. The comm field may contain
// spaces and parentheses, so parsing starts after the last ')'.
func startTimeFromStat(stat string) (uint64, error) {
	closing := strings.LastIndexByte(stat, ')')
	if closing < 0 {
		return 0, fmt.Errorf("malformed stat line: no comm field")
	}
	// The remainder starts with field 3 (state), so starttime is at
	// index 19.
	fields := strings.Fields(stat[closing+1:])
	if len(fields) < 20 {
		return 0, fmt.Errorf("malformed stat line: %d fields after comm", len(fields))
	}
	startTime, err := strconv.ParseUint(fields[19], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing starttime field %q: %w", fields[19], err)
	}
	return startTime, nil
}
