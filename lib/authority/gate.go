// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package authority

import (
	"context"
	"fmt"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

// Decision is the policy authority's verdict on one action.
type Decision struct {
	// Authorized means the action may proceed.
	Authorized bool `cbor:"authorized"`

	// Challenge means the action could be authorized after interactive
	// confirmation. Only meaningful when Authorized is false.
	Challenge bool `cbor:"challenge"`
}

// Authority renders policy decisions for privileged actions. The
// production implementation talks to the external policy service; tests
// substitute fakes.
type Authority interface {
	// CheckAuthorization asks whether subject may perform actionID.
	// interactive permits the authority to escalate to the user. The
	// error reports transport or protocol failures, not denials —
	// denials are Decisions.
	CheckAuthorization(ctx context.Context, subject Subject, actionID string, interactive bool) (Decision, error)
}

// CapabilityProber reports process capabilities. Split from the Gate
// so tests can model privileged and unprivileged daemons.
type CapabilityProber interface {
	// HasSysTime reports whether the process holds an effective
	// CAP_SYS_TIME.
	HasSysTime() bool
}

// Gate wraps every mutating timedate call. It holds the daemon's own
// Subject, built once at startup and passed by reference into every
// check.
type Gate struct {
	authority Authority
	subject   Subject
	caps      CapabilityProber
}

// NewGate builds a Gate for the given authority, acting subject, and
// capability prober.
func NewGate(auth Authority, subject Subject, caps CapabilityProber) *Gate {
	return &Gate{authority: auth, subject: subject, caps: caps}
}

// Check authorizes actionID. A fully authorized verdict returns nil. A
// challenge verdict returns auth-required: the caller needed to permit
// interaction and did not. A plain denial consults the capability
// prober: CAP_SYS_TIME overrides the denial, modelling a privileged
// daemon operating with no interactive user present; otherwise the
// result is auth-denied. Authority transport failures surface as
// internal errors — an unreachable policy service is an operational
// fault, not a denial.
func (g *Gate) Check(ctx context.Context, actionID string, interactive bool) error {
	decision, err := g.authority.CheckAuthorization(ctx, g.subject, actionID, interactive)
	if err != nil {
		return ipc.Internalf("authorization check for %s: %v", actionID, err)
	}

	if decision.Authorized {
		return nil
	}
	if decision.Challenge {
		return ipc.Errorf(ipc.CodeAuthRequired, "interactive authentication required for %s", actionID)
	}
	if g.caps.HasSysTime() {
		return nil
	}
	return ipc.Errorf(ipc.CodeAuthDenied, "not authorized for %s and CAP_SYS_TIME is not held", actionID)
}

// Subject returns the acting subject, for logging.
func (g *Gate) Subject() Subject {
	return g.subject
}

var _ fmt.Stringer = Subject{}

func (s Subject) String() string {
	return fmt.Sprintf("pid=%d start=%d uid=%d", s.PID, s.StartTime, s.UID)
}
