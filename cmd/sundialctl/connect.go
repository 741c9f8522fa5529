// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/sundial-foundation/sundial/lib/config"
	"github.com/sundial-foundation/sundial/lib/service"
)

// callTimeout bounds one request including a possible interactive
// authorization challenge on the daemon side.
const callTimeout = 2 * time.Minute

// connection holds the flags shared by every subcommand that talks to
// the daemon.
type connection struct {
	socketPath     string
	noninteractive bool
}

// defaultSocketPath is the daemon socket, overridable through the
// SUNDIAL_SOCKET environment variable for non-standard installs.
func defaultSocketPath() string {
	if path := os.Getenv("SUNDIAL_SOCKET"); path != "" {
		return path
	}
	return config.Default().SocketPath
}

func defaultConnection() connection {
	return connection{socketPath: defaultSocketPath()}
}

// registerFlags adds the shared connection flags to a subcommand's
// flag set.
func (c *connection) registerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.socketPath, "socket", defaultSocketPath(), "sundiald socket path")
	flags.BoolVar(&c.noninteractive, "noninteractive", false, "never request interactive authorization")
}

// interactive reports whether mutations should permit an interactive
// authorization challenge: only when stdin is a terminal and the user
// did not opt out.
func (c *connection) interactive() bool {
	return !c.noninteractive && term.IsTerminal(int(os.Stdin.Fd()))
}

// call performs one request against the daemon.
func (c *connection) call(action string, fields map[string]any, result any) error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	return service.NewClient(c.socketPath).Call(ctx, action, fields, result)
}
