// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Command sundialctl is the operator CLI for sundiald. It queries and
// changes the system clock, the configured timezone, and the hardware
// clock's time base over the daemon's Unix socket.
//
// With no arguments it prints the current time status, like running
// the status subcommand.
package main
