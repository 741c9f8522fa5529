// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package rtc

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

func TestFieldsRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 25, 14, 3, 59, 0, time.UTC),
		time.Date(2000, time.February, 29, 23, 59, 59, 0, time.UTC),
		time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC),
	}

	for _, want := range instants {
		fields := FieldsFromTime(want)
		got, err := TimeFromFields(fields, time.UTC)
		if err != nil {
			t.Fatalf("TimeFromFields(%v): %v", want, err)
		}
		if !got.Equal(want) {
			t.Errorf("round trip: got %v, want %v", got, want)
		}
	}
}

func TestFieldsRoundTripLocalZone(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	want := time.Date(2026, time.March, 1, 1, 30, 0, 0, zone)

	// A local-mode RTC stores the wall-clock fields of the zone.
	fields := FieldsFromTime(want.In(zone))
	got, err := TimeFromFields(fields, zone)
	if err != nil {
		t.Fatalf("TimeFromFields: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("round trip through local fields: got %v, want %v", got, want)
	}
}

func TestTimeFromFieldsRejectsBadFields(t *testing.T) {
	valid := FieldsFromTime(time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC))

	mutations := []struct {
		name   string
		mutate func(*unix.RTCTime)
	}{
		{"month 12", func(rt *unix.RTCTime) { rt.Mon = 12 }},
		{"negative month", func(rt *unix.RTCTime) { rt.Mon = -1 }},
		{"day zero", func(rt *unix.RTCTime) { rt.Mday = 0 }},
		{"day 32", func(rt *unix.RTCTime) { rt.Mday = 32 }},
		{"hour 24", func(rt *unix.RTCTime) { rt.Hour = 24 }},
		{"minute 60", func(rt *unix.RTCTime) { rt.Min = 60 }},
		{"second 60", func(rt *unix.RTCTime) { rt.Sec = 60 }},
		{"pre-epoch year", func(rt *unix.RTCTime) { rt.Year = 69 }},
		{"absurd year", func(rt *unix.RTCTime) { rt.Year = 1 << 30 }},
		{"feb 30", func(rt *unix.RTCTime) { rt.Mon = 1; rt.Mday = 30 }},
	}

	for _, test := range mutations {
		t.Run(test.name, func(t *testing.T) {
			fields := valid
			test.mutate(&fields)
			_, err := TimeFromFields(fields, time.UTC)
			if err == nil {
				t.Fatal("expected rejection")
			}
			if ipc.CodeOf(err) != ipc.CodeInternal {
				t.Errorf("code: got %q, want %q", ipc.CodeOf(err), ipc.CodeInternal)
			}
		})
	}
}

func TestOpenMissingDeviceIsNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "rtc0"))
	if ipc.CodeOf(err) != ipc.CodeNotFound {
		t.Errorf("code: got %q, want %q", ipc.CodeOf(err), ipc.CodeNotFound)
	}
}

func TestReadTimeOnNonDeviceIsDeviceError(t *testing.T) {
	// The ioctl against a regular file fails with ENOTTY, which must
	// surface as a device error, not a panic or a raw errno.
	path := filepath.Join(t.TempDir(), "not-a-device")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	device, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer device.Close()

	_, err = device.ReadTime()
	if ipc.CodeOf(err) != ipc.CodeDevice {
		t.Errorf("code: got %q, want %q", ipc.CodeOf(err), ipc.CodeDevice)
	}
}

func TestReadClockFoldsCloseError(t *testing.T) {
	// ReadClock against a regular file exercises the open-read-close
	// sequence: the read error must win over any close outcome.
	path := filepath.Join(t.TempDir(), "not-a-device")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := ReadClock(path, time.UTC)
	if ipc.CodeOf(err) != ipc.CodeDevice {
		t.Errorf("code: got %q, want %q", ipc.CodeOf(err), ipc.CodeDevice)
	}
}
