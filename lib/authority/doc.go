// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package authority gates mutations behind the external policy
// service, with a capability fallback.
//
// Every mutating timedate call asks the policy authority whether the
// reverse-DNS action (org.freedesktop.timedate1.set-time and friends)
// is permitted for the daemon's own process identity. The daemon — not
// the connecting peer — is the acting principal, because the
// privileged syscalls are made by the daemon. A plain denial is
// downgraded to success when the process holds CAP_SYS_TIME: a daemon
// already privileged to change the clock does not need a logged-in
// user to approve it.
//
// Decisions are computed fresh for every call and never cached; policy
// can change between calls.
package authority
