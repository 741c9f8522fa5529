// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package rtc

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

// DefaultDevice is the conventional RTC character device node.
const DefaultDevice = "/dev/rtc"

// Device is an open RTC character device. The kernel grants the node
// to one opener at a time, so concurrent mutations race on EBUSY —
// callers serialize through the daemon's mutation lock.
type Device struct {
	file *os.File
	path string
}

// Open acquires the RTC device for control calls. The device is
// opened read-only; the set-time ioctl does not require write mode,
// only CAP_SYS_TIME.
func Open(path string) (*Device, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ipc.NotFoundf("RTC device %s does not exist", path)
		}
		if errors.Is(err, unix.EBUSY) {
			return nil, ipc.Devicef("RTC device %s is busy", path)
		}
		return nil, ipc.Devicef("opening %s: %v", path, err)
	}
	return &Device{file: file, path: path}, nil
}

// ReadTime issues RTC_RD_TIME and returns the device's broken-down
// time fields.
func (d *Device) ReadTime() (unix.RTCTime, error) {
	rt, err := unix.IoctlGetRTCTime(int(d.file.Fd()))
	if err != nil {
		return unix.RTCTime{}, ipc.Devicef("RTC_RD_TIME on %s: %v", d.path, err)
	}
	return *rt, nil
}

// SetTime issues RTC_SET_TIME with the given broken-down fields.
func (d *Device) SetTime(rt unix.RTCTime) error {
	if err := unix.IoctlSetRTCTime(int(d.file.Fd()), &rt); err != nil {
		return ipc.Devicef("RTC_SET_TIME on %s: %v", d.path, err)
	}
	return nil
}

// Close releases the device.
func (d *Device) Close() error {
	if err := d.file.Close(); err != nil {
		return ipc.Devicef("closing %s: %v", d.path, err)
	}
	return nil
}

// ReadClock opens the device, reads its time interpreted in loc, and
// returns microseconds since the UTC epoch. A close failure is
// reported only when the read itself succeeded.
func ReadClock(path string, loc *time.Location) (uint64, error) {
	device, err := Open(path)
	if err != nil {
		return 0, err
	}

	usec, readErr := func() (uint64, error) {
		rt, err := device.ReadTime()
		if err != nil {
			return 0, err
		}
		t, err := TimeFromFields(rt, loc)
		if err != nil {
			return 0, err
		}
		return uint64(t.UnixMicro()), nil
	}()

	if closeErr := device.Close(); closeErr != nil && readErr == nil {
		return 0, closeErr
	}
	return usec, readErr
}

// WriteClock opens the device and stores t's wall-clock fields in loc.
// A close failure is reported only when the write itself succeeded.
func WriteClock(path string, t time.Time, loc *time.Location) error {
	device, err := Open(path)
	if err != nil {
		return err
	}

	writeErr := device.SetTime(FieldsFromTime(t.In(loc)))

	if closeErr := device.Close(); closeErr != nil && writeErr == nil {
		return closeErr
	}
	return writeErr
}
