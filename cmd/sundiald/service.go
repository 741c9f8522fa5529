// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sundial-foundation/sundial/lib/adjtime"
	"github.com/sundial-foundation/sundial/lib/codec"
	"github.com/sundial-foundation/sundial/lib/ipc"
	"github.com/sundial-foundation/sundial/lib/rtc"
	"github.com/sundial-foundation/sundial/lib/service"
	"github.com/sundial-foundation/sundial/lib/sysclock"
	"github.com/sundial-foundation/sundial/lib/tzdb"
)

// timezoneResolver is the slice of lib/tzdb the service consumes.
type timezoneResolver interface {
	Current() (string, error)
	List() ([]string, error)
	Valid(zone string) (bool, error)
	SetLink(zone string) error
	Location(zone string) (*time.Location, error)
}

// rtcModeStore is the slice of lib/adjtime the service consumes.
type rtcModeStore interface {
	Mode() (adjtime.Mode, error)
	SetMode(mode adjtime.Mode) error
}

// kernelClock abstracts lib/sysclock for tests.
type kernelClock interface {
	Now() (uint64, error)
	Synchronized() bool
	Set(usec uint64) error
	SetKernelTimezone(minutesWest int) error
}

// hardwareClock abstracts the RTC bridge for tests. The location
// selects how the device's zone-less fields are interpreted.
type hardwareClock interface {
	Read(loc *time.Location) (uint64, error)
	Write(t time.Time, loc *time.Location) error
}

// authorizer is the mutation gate.
type authorizer interface {
	Check(ctx context.Context, actionID string, interactive bool) error
}

// TimedateService is the object behind the timedate interface. All
// state lives on the host (the kernel clock, the local-time link, the
// adjtime file, the RTC device), so the struct holds only accessors
// and the mutation lock.
type TimedateService struct {
	tz      timezoneResolver
	rtcMode rtcModeStore
	kernel  kernelClock
	rtcDev  hardwareClock
	gate    authorizer
	logger  *slog.Logger

	// mutationMu serializes the mutating methods end to end. The RTC
	// device admits one opener at a time, so unserialized mutations
	// would race to a device-busy failure; read-only properties never
	// take this lock and are never blocked behind an authorization
	// round-trip.
	mutationMu sync.Mutex
}

// sysClock is the production kernelClock.
type sysClock struct{}

func (sysClock) Now() (uint64, error) { return sysclock.Now() }

func (sysClock) Synchronized() bool { return sysclock.Synchronized() }

func (sysClock) Set(usec uint64) error { return sysclock.Set(usec) }

func (sysClock) SetKernelTimezone(minutesWest int) error {
	return sysclock.SetKernelTimezone(minutesWest)
}

// deviceClock is the production hardwareClock: every operation is an
// open-use-close cycle against the device node.
type deviceClock struct {
	path string
}

func (d deviceClock) Read(loc *time.Location) (uint64, error) {
	return rtc.ReadClock(d.path, loc)
}

func (d deviceClock) Write(t time.Time, loc *time.Location) error {
	return rtc.WriteClock(d.path, t, loc)
}

// registerActions wires the timedate interface onto the socket server.
func (s *TimedateService) registerActions(server *service.SocketServer) {
	server.Handle(ipc.ActionSetTime, s.handleSetTime)
	server.Handle(ipc.ActionSetTimezone, s.handleSetTimezone)
	server.Handle(ipc.ActionSetLocalRTC, s.handleSetLocalRTC)
	server.Handle(ipc.ActionSetNTP, s.handleSetNTP)
	server.Handle(ipc.ActionListTimezones, s.handleListTimezones)
	server.Handle(ipc.ActionGetProperty, s.handleGetProperty)
	server.Handle(ipc.ActionStatus, s.handleStatus)
}

// decodeRequest unpacks action-specific fields, mapping CBOR failures
// to invalid-argument.
func decodeRequest(raw []byte, request any) error {
	if err := codec.Unmarshal(raw, request); err != nil {
		return ipc.InvalidArgumentf("invalid request: %v", err)
	}
	return nil
}

// rtcLocation returns the location under which the RTC's fields are
// currently interpreted: UTC in UTC mode, the active zone in local
// mode.
func (s *TimedateService) rtcLocation() (*time.Location, error) {
	mode, err := s.rtcMode.Mode()
	if err != nil {
		return nil, err
	}
	if mode == adjtime.UTC {
		return time.UTC, nil
	}
	zone, err := s.tz.Current()
	if err != nil {
		return nil, err
	}
	return s.tz.Location(zone)
}

// syncRTCFromSystem rewrites the hardware clock from the current
// system time, encoded under the given location. Used after set-time
// and after a timezone change with a local-mode RTC, and as the
// default direction of set-local-rtc. Recomputes everything from
// currently observable state so a failed attempt can simply be
// retried.
func (s *TimedateService) syncRTCFromSystem(loc *time.Location) error {
	usec, err := s.kernel.Now()
	if err != nil {
		return err
	}
	return s.rtcDev.Write(time.UnixMicro(int64(usec)).UTC(), loc)
}

// syncSystemFromRTC sets the kernel clock from the hardware clock,
// interpreting the device fields under the given location.
func (s *TimedateService) syncSystemFromRTC(loc *time.Location) error {
	usec, err := s.rtcDev.Read(loc)
	if err != nil {
		return err
	}
	return s.kernel.Set(usec)
}

// signalKernelTimezone pushes the active zone's current offset to the
// kernel so it interprets a local-time RTC and FAT timestamps under
// the right convention. Failures are logged, not fatal: the persisted
// configuration is already correct and the warp repeats at next boot.
func (s *TimedateService) signalKernelTimezone() {
	zone, err := s.tz.Current()
	if err != nil {
		s.logger.Warn("kernel timezone signal skipped", "error", err)
		return
	}
	loc, err := s.tz.Location(zone)
	if err != nil {
		s.logger.Warn("kernel timezone signal skipped", "zone", zone, "error", err)
		return
	}
	minutesWest := tzdb.OffsetMinutesWest(loc, time.Now())
	if err := s.kernel.SetKernelTimezone(minutesWest); err != nil {
		s.logger.Warn("kernel timezone signal failed", "minutes_west", minutesWest, "error", err)
	}
}
