// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package ipc defines the CBOR wire types for the timedate socket
// protocol. Both cmd/sundiald and cmd/sundialctl import this package
// so the request/response shapes and the error taxonomy are defined
// once rather than mirrored.
//
// The protocol carries the org.freedesktop.timedate1 interface over a
// Unix socket: each method is an action ("set-time", "set-timezone",
// "set-local-rtc", "set-ntp", "list-timezones"), and properties are
// read through "get-property" or the aggregate "status" action.
package ipc
