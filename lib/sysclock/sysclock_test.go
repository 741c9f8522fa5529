// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package sysclock

import (
	"math"
	"testing"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

func TestUsecFromTimespec(t *testing.T) {
	tests := []struct {
		name string
		sec  int64
		nsec int64
		want uint64
	}{
		{"zero", 0, 0, 0},
		{"whole seconds", 1_700_000_000, 0, 1_700_000_000_000_000},
		{"nanoseconds truncate", 10, 1_999, 10_000_001},
		{"sub-microsecond drops", 0, 999, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := usecFromTimespec(test.sec, test.nsec)
			if err != nil {
				t.Fatalf("usecFromTimespec: %v", err)
			}
			if got != test.want {
				t.Errorf("got %d, want %d", got, test.want)
			}
		})
	}
}

func TestUsecFromTimespecRejectsNegative(t *testing.T) {
	_, err := usecFromTimespec(-1, 0)
	if ipc.CodeOf(err) != ipc.CodeInternal {
		t.Errorf("code: got %q, want %q", ipc.CodeOf(err), ipc.CodeInternal)
	}
}

func TestUsecFromTimespecRejectsOverflow(t *testing.T) {
	_, err := usecFromTimespec(math.MaxInt64/usecPerSec+1, 0)
	if err == nil {
		t.Error("expected overflow error")
	}
}

func TestSynchronizedThreshold(t *testing.T) {
	tests := []struct {
		maxError int64
		want     bool
	}{
		{0, true},
		{15_999_999, true},
		{16_000_000, false},
		{math.MaxInt64, false},
	}
	for _, test := range tests {
		if got := synchronizedFromMaxError(test.maxError); got != test.want {
			t.Errorf("synchronizedFromMaxError(%d): got %v, want %v", test.maxError, got, test.want)
		}
	}
}
