// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package service provides the Unix-socket CBOR transport shared by
// sundiald and its clients.
//
// The protocol is one request-response cycle per connection: the
// client writes a single CBOR value containing at least an "action"
// field, the server dispatches to the registered handler and writes a
// single CBOR response, then the connection closes. CBOR is
// self-delimiting so no framing is needed.
//
// Responses are an envelope {ok, error, code, data}. Handler failures
// carry their ipc.Code in the envelope; the client reconstructs them
// as *ipc.Error so callers can branch on the taxonomy rather than on
// error text.
//
// Access control is filesystem permissions on the socket path. The
// daemon authorizes mutations through the policy authority using its
// own process identity, not the connecting peer's, because the
// privileged syscalls are made by the daemon itself.
package service
