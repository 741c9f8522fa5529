// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"math"
	"time"

	"github.com/sundial-foundation/sundial/lib/adjtime"
	"github.com/sundial-foundation/sundial/lib/ipc"
)

// Mutating handlers. Each one runs the same sequence under the
// mutation lock: validate the request, authorize the caller, apply the
// change, resynchronize dependent state. Recognized no-ops return
// success before the authorization round-trip so idempotent callers
// never trigger an interactive challenge. Once authorization succeeds
// the mutation runs to completion even if the client disconnects.

// handleSetTime sets the system clock.
//
// Interactive authorization can take seconds, so an absolute target
// captured by the client before the round-trip would land in the past.
// The handler records its own arrival time and advances the absolute
// target by however long validation and authorization took. Relative
// adjustments need no compensation: the delta is applied to the clock
// as read after authorization.
func (s *TimedateService) handleSetTime(ctx context.Context, raw []byte) (any, error) {
	started := time.Now()

	var request ipc.SetTimeRequest
	if err := decodeRequest(raw, &request); err != nil {
		return nil, err
	}

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	if request.Relative {
		if request.UsecUTC == 0 {
			return nil, nil
		}
	} else if request.UsecUTC <= 0 {
		return nil, ipc.InvalidArgumentf("absolute time must be after the epoch: %d", request.UsecUTC)
	}

	if err := s.gate.Check(ctx, ipc.AuthActionSetTime, request.Interactive); err != nil {
		return nil, err
	}

	var target int64
	if request.Relative {
		now, err := s.kernel.Now()
		if err != nil {
			return nil, err
		}
		if now > math.MaxInt64 {
			return nil, ipc.Internalf("system time out of range: %d", now)
		}
		target = int64(now) + request.UsecUTC
		if request.UsecUTC > 0 && target < int64(now) {
			return nil, ipc.InvalidArgumentf("adjusted time overflows")
		}
	} else {
		elapsed := time.Since(started).Microseconds()
		target = request.UsecUTC + elapsed
		if target < request.UsecUTC {
			return nil, ipc.InvalidArgumentf("requested time out of range: %d", request.UsecUTC)
		}
	}
	if target < 0 {
		return nil, ipc.InvalidArgumentf("adjusted time is before the epoch")
	}

	if err := s.kernel.Set(uint64(target)); err != nil {
		return nil, err
	}
	s.logger.Info("system clock set",
		"usec", target,
		"relative", request.Relative,
	)

	// The hardware clock now disagrees with the system clock; rewrite
	// it under the active interpretation. A failure here surfaces to
	// the caller but does not undo the clock change: the system clock
	// is correct and a retry recomputes the RTC image from it.
	loc, err := s.rtcLocation()
	if err != nil {
		return nil, err
	}
	if err := s.syncRTCFromSystem(loc); err != nil {
		return nil, err
	}
	return nil, nil
}

// handleSetTimezone repoints the local-time link.
func (s *TimedateService) handleSetTimezone(ctx context.Context, raw []byte) (any, error) {
	var request ipc.SetTimezoneRequest
	if err := decodeRequest(raw, &request); err != nil {
		return nil, err
	}

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	ok, err := s.tz.Valid(request.Timezone)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ipc.InvalidArgumentf("invalid timezone %q", request.Timezone)
	}

	current, err := s.tz.Current()
	if err != nil {
		return nil, err
	}
	if request.Timezone == current {
		return nil, nil
	}

	if err := s.gate.Check(ctx, ipc.AuthActionSetTimezone, request.Interactive); err != nil {
		return nil, err
	}

	if err := s.tz.SetLink(request.Timezone); err != nil {
		return nil, err
	}
	s.logger.Info("timezone set", "timezone", request.Timezone, "previous", current)

	s.signalKernelTimezone()

	// A local-mode RTC stores wall-clock fields, which just changed
	// meaning. Rewrite them under the new zone. The link stays
	// repointed on failure: the failure surfaces so the caller knows
	// clock and RTC still disagree, and a retry recomputes the rewrite
	// from observable state.
	mode, err := s.rtcMode.Mode()
	if err != nil {
		return nil, err
	}
	if mode == adjtime.Local {
		loc, err := s.tz.Location(request.Timezone)
		if err != nil {
			return nil, err
		}
		if err := s.syncRTCFromSystem(loc); err != nil {
			s.logger.Warn("hardware clock rewrite failed after timezone change", "error", err)
			return nil, err
		}
	}
	return nil, nil
}

// handleSetLocalRTC switches the hardware clock between UTC and local
// time and resynchronizes one clock from the other. FixSystem picks
// the direction: true trusts the RTC and warps the system clock, false
// trusts the system clock and rewrites the RTC.
func (s *TimedateService) handleSetLocalRTC(ctx context.Context, raw []byte) (any, error) {
	var request ipc.SetLocalRTCRequest
	if err := decodeRequest(raw, &request); err != nil {
		return nil, err
	}

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	target := adjtime.UTC
	if request.LocalRTC {
		target = adjtime.Local
	}

	current, err := s.rtcMode.Mode()
	if err != nil {
		return nil, err
	}
	// An unchanged mode with no sync request is a no-op. With
	// FixSystem the caller explicitly wants the resynchronization even
	// if the mode already matches.
	if target == current && !request.FixSystem {
		return nil, nil
	}

	if err := s.gate.Check(ctx, ipc.AuthActionSetLocalRTC, request.Interactive); err != nil {
		return nil, err
	}

	if target != current {
		if err := s.rtcMode.SetMode(target); err != nil {
			return nil, err
		}
		s.logger.Info("rtc mode set", "mode", target.String())
	}

	s.signalKernelTimezone()

	loc, err := s.rtcLocation()
	if err != nil {
		return nil, err
	}
	if request.FixSystem {
		err = s.syncSystemFromRTC(loc)
	} else {
		err = s.syncRTCFromSystem(loc)
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// handleSetNTP always reports unsupported: sundiald integrates no
// network time synchronization service. Rejected before authorization
// so callers learn the capability is absent without a challenge.
func (s *TimedateService) handleSetNTP(ctx context.Context, raw []byte) (any, error) {
	var request ipc.SetNTPRequest
	if err := decodeRequest(raw, &request); err != nil {
		return nil, err
	}
	return nil, ipc.Unsupportedf("network time synchronization is not supported")
}
