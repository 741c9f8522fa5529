// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"

	"github.com/sundial-foundation/sundial/lib/adjtime"
	"github.com/sundial-foundation/sundial/lib/ipc"
)

// Read-only handlers. These never take the mutation lock: every value
// is read fresh from the host, so a concurrent mutation at worst means
// the reader sees the state from just before or just after it.

func (s *TimedateService) handleListTimezones(ctx context.Context, raw []byte) (any, error) {
	zones, err := s.tz.List()
	if err != nil {
		return nil, err
	}
	return ipc.TimezoneList{Zones: zones}, nil
}

func (s *TimedateService) handleGetProperty(ctx context.Context, raw []byte) (any, error) {
	var request ipc.GetPropertyRequest
	if err := decodeRequest(raw, &request); err != nil {
		return nil, err
	}

	s.logger.Debug("property read", "name", request.Name)

	value := ipc.PropertyValue{Name: request.Name}
	switch request.Name {
	case ipc.PropTimezone:
		zone, err := s.tz.Current()
		if err != nil {
			return nil, err
		}
		value.String = &zone

	case ipc.PropLocalRTC:
		mode, err := s.rtcMode.Mode()
		if err != nil {
			return nil, err
		}
		local := mode == adjtime.Local
		value.Bool = &local

	case ipc.PropCanNTP, ipc.PropNTP:
		return nil, ipc.Unsupportedf("network time synchronization is not supported")

	case ipc.PropNTPSynchronized:
		synchronized := s.kernel.Synchronized()
		value.Bool = &synchronized

	case ipc.PropTimeUSec:
		usec, err := s.kernel.Now()
		if err != nil {
			return nil, err
		}
		value.Uint64 = &usec

	case ipc.PropRTCTimeUSec:
		loc, err := s.rtcLocation()
		if err != nil {
			return nil, err
		}
		usec, err := s.rtcDev.Read(loc)
		if err != nil {
			return nil, err
		}
		value.Uint64 = &usec

	default:
		return nil, ipc.NotFoundf("unknown property %q", request.Name)
	}

	return value, nil
}

// handleStatus aggregates every property in one call for the CLI. An
// RTC read failure degrades to a reported error string instead of
// failing the whole status: a host with no hardware clock still has a
// timezone and a system clock worth showing.
func (s *TimedateService) handleStatus(ctx context.Context, raw []byte) (any, error) {
	s.logger.Debug("status read")

	zone, err := s.tz.Current()
	if err != nil {
		return nil, err
	}
	mode, err := s.rtcMode.Mode()
	if err != nil {
		return nil, err
	}
	usec, err := s.kernel.Now()
	if err != nil {
		return nil, err
	}

	status := ipc.Status{
		Timezone:        zone,
		LocalRTC:        mode == adjtime.Local,
		NTPSynchronized: s.kernel.Synchronized(),
		TimeUSec:        usec,
	}

	loc, err := s.rtcLocation()
	if err == nil {
		var rtcUsec uint64
		rtcUsec, err = s.rtcDev.Read(loc)
		if err == nil {
			status.RTCTimeUSec = &rtcUsec
		}
	}
	if err != nil {
		status.RTCError = err.Error()
	}

	return status, nil
}
