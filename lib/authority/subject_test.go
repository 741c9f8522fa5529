// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package authority

import (
	"os"
	"testing"
)

func TestStartTimeFromStat(t *testing.T) {
	// Field 22 is 8094418.
	stat := "1234 (sundiald) S 1 1234 1234 0 -1 4194560 1508 0 0 0 2 1 0 0 20 0 1 0 8094418 16248832 1024 18446744073709551615 1 1 0 0 0 0 0 0 0 0 0 0 17 3 0 0 0 0 0\n"

	startTime, err := startTimeFromStat(stat)
	if err != nil {
		t.Fatalf("startTimeFromStat: %v", err)
	}
	if startTime != 8094418 {
		t.Errorf("starttime: got %d, want 8094418", startTime)
	}
}

func TestStartTimeFromStatCommWithSpacesAndParens(t *testing.T) {
	stat := "99 (weird) name)) R 1 99 99 0 -1 4194560 1508 0 0 0 2 1 0 0 20 0 1 0 42 16248832 1024 18446744073709551615 1 1 0 0 0 0 0 0 0 0 0 0 17 3 0 0 0 0 0\n"

	startTime, err := startTimeFromStat(stat)
	if err != nil {
		t.Fatalf("startTimeFromStat: %v", err)
	}
	if startTime != 42 {
		t.Errorf("starttime: got %d, want 42", startTime)
	}
}

func TestStartTimeFromStatMalformed(t *testing.T) {
	for _, stat := range []string{"", "1234 no-comm-field", "1234 (x) S 1 2 3"} {
		if _, err := startTimeFromStat(stat); err == nil {
			t.Errorf("stat %q: expected error", stat)
		}
	}
}

func TestOwnSubject(t *testing.T) {
	subject, err := OwnSubject()
	if err != nil {
		t.Fatalf("OwnSubject: %v", err)
	}
	if subject.PID != uint32(os.Getpid()) {
		t.Errorf("pid: got %d, want %d", subject.PID, os.Getpid())
	}
	if subject.StartTime == 0 {
		t.Error("start time is zero")
	}
	if subject.UID != uint32(os.Getuid()) {
		t.Errorf("uid: got %d, want %d", subject.UID, os.Getuid())
	}
}
