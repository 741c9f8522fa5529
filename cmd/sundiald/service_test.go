// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/sundial-foundation/sundial/lib/adjtime"
	"github.com/sundial-foundation/sundial/lib/ipc"
	"github.com/sundial-foundation/sundial/lib/service"
)

// fakeResolver is an in-memory timezoneResolver.
type fakeResolver struct {
	current   string
	zones     []string
	locations map[string]*time.Location

	setLinkCalls []string
	currentErr   error
	setLinkErr   error
}

func (f *fakeResolver) Current() (string, error) {
	if f.currentErr != nil {
		return "", f.currentErr
	}
	return f.current, nil
}

func (f *fakeResolver) List() ([]string, error) {
	return f.zones, nil
}

func (f *fakeResolver) Valid(zone string) (bool, error) {
	for _, z := range f.zones {
		if z == zone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeResolver) SetLink(zone string) error {
	if f.setLinkErr != nil {
		return f.setLinkErr
	}
	f.setLinkCalls = append(f.setLinkCalls, zone)
	f.current = zone
	return nil
}

func (f *fakeResolver) Location(zone string) (*time.Location, error) {
	if loc, ok := f.locations[zone]; ok {
		return loc, nil
	}
	return nil, ipc.NotFoundf("no zone data for %q", zone)
}

// fakeModeStore is an in-memory rtcModeStore.
type fakeModeStore struct {
	mode     adjtime.Mode
	setCalls []adjtime.Mode
	modeErr  error
	setErr   error
}

func (f *fakeModeStore) Mode() (adjtime.Mode, error) {
	if f.modeErr != nil {
		return adjtime.UTC, f.modeErr
	}
	return f.mode, nil
}

func (f *fakeModeStore) SetMode(mode adjtime.Mode) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls = append(f.setCalls, mode)
	f.mode = mode
	return nil
}

// fakeKernel is an in-memory kernelClock.
type fakeKernel struct {
	now          uint64
	synchronized bool

	setCalls []uint64
	tzCalls  []int
	nowErr   error
	setErr   error
}

func (f *fakeKernel) Now() (uint64, error) {
	if f.nowErr != nil {
		return 0, f.nowErr
	}
	return f.now, nil
}

func (f *fakeKernel) Synchronized() bool { return f.synchronized }

func (f *fakeKernel) Set(usec uint64) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls = append(f.setCalls, usec)
	f.now = usec
	return nil
}

func (f *fakeKernel) SetKernelTimezone(minutesWest int) error {
	f.tzCalls = append(f.tzCalls, minutesWest)
	return nil
}

type rtcWrite struct {
	t   time.Time
	loc *time.Location
}

// fakeRTC is an in-memory hardwareClock.
type fakeRTC struct {
	value uint64

	reads    []*time.Location
	writes   []rtcWrite
	readErr  error
	writeErr error
}

func (f *fakeRTC) Read(loc *time.Location) (uint64, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	f.reads = append(f.reads, loc)
	return f.value, nil
}

func (f *fakeRTC) Write(t time.Time, loc *time.Location) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, rtcWrite{t: t, loc: loc})
	return nil
}

type gateCall struct {
	actionID    string
	interactive bool
}

// fakeGate records authorization checks and returns a fixed verdict.
type fakeGate struct {
	err   error
	calls []gateCall
}

func (f *fakeGate) Check(ctx context.Context, actionID string, interactive bool) error {
	f.calls = append(f.calls, gateCall{actionID: actionID, interactive: interactive})
	return f.err
}

// testFixture bundles a service with its fakes.
type testFixture struct {
	service *TimedateService
	tz      *fakeResolver
	mode    *fakeModeStore
	kernel  *fakeKernel
	rtc     *fakeRTC
	gate    *fakeGate
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	berlin := time.FixedZone("CET", 3600)
	fixture := &testFixture{
		tz: &fakeResolver{
			current: "Europe/Berlin",
			zones:   []string{"America/New_York", "Europe/Berlin", "UTC"},
			locations: map[string]*time.Location{
				"Europe/Berlin":    berlin,
				"America/New_York": time.FixedZone("EST", -5*3600),
				"UTC":              time.UTC,
			},
		},
		mode:   &fakeModeStore{mode: adjtime.UTC},
		kernel: &fakeKernel{now: 1_700_000_000_000_000, synchronized: false},
		rtc:    &fakeRTC{value: 1_700_000_000_500_000},
		gate:   &fakeGate{},
	}
	fixture.service = &TimedateService{
		tz:      fixture.tz,
		rtcMode: fixture.mode,
		kernel:  fixture.kernel,
		rtcDev:  fixture.rtc,
		gate:    fixture.gate,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return fixture
}

// startTimedate serves a fixture's service on a real socket and
// returns a client for it.
func startTimedate(t *testing.T, fixture *testFixture) *service.Client {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "timedate.sock")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := service.NewSocketServer(socketPath, logger)
	fixture.service.registerActions(server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not shut down")
		}
	})

	client := service.NewClient(socketPath)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := client.Call(context.Background(), ipc.ActionStatus, nil, new(ipc.Status)); err == nil {
			return client
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("server never became reachable")
	return nil
}

func TestSocketRoundTripStatus(t *testing.T) {
	fixture := newFixture(t)
	client := startTimedate(t, fixture)

	var status ipc.Status
	if err := client.Call(context.Background(), ipc.ActionStatus, nil, &status); err != nil {
		t.Fatalf("status call: %v", err)
	}
	if status.Timezone != "Europe/Berlin" {
		t.Errorf("timezone: got %q, want 'Europe/Berlin'", status.Timezone)
	}
	if status.TimeUSec != fixture.kernel.now {
		t.Errorf("time_usec: got %d, want %d", status.TimeUSec, fixture.kernel.now)
	}
	if status.RTCTimeUSec == nil || *status.RTCTimeUSec != fixture.rtc.value {
		t.Errorf("rtc_time_usec: got %v, want %d", status.RTCTimeUSec, fixture.rtc.value)
	}
}

func TestSocketRoundTripAuthDenied(t *testing.T) {
	fixture := newFixture(t)
	fixture.gate.err = ipc.Errorf(ipc.CodeAuthDenied, "not authorized")
	client := startTimedate(t, fixture)

	err := client.Call(context.Background(), ipc.ActionSetTimezone, map[string]any{
		"timezone": "America/New_York",
	}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var structured *ipc.Error
	if !errors.As(err, &structured) {
		t.Fatalf("error type: got %T, want *ipc.Error", err)
	}
	if structured.Code != ipc.CodeAuthDenied {
		t.Errorf("code: got %q, want %q", structured.Code, ipc.CodeAuthDenied)
	}
	if len(fixture.tz.setLinkCalls) != 0 {
		t.Errorf("link updated despite denial: %v", fixture.tz.setLinkCalls)
	}
}

func TestSocketRoundTripSetNTPUnsupported(t *testing.T) {
	fixture := newFixture(t)
	client := startTimedate(t, fixture)

	err := client.Call(context.Background(), ipc.ActionSetNTP, map[string]any{
		"use_ntp": true,
	}, nil)
	if ipc.CodeOf(err) != ipc.CodeUnsupported {
		t.Errorf("code: got %q, want %q", ipc.CodeOf(err), ipc.CodeUnsupported)
	}
}
