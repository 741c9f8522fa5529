// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/sundial-foundation/sundial/cmd/sundialctl/cli"
	"github.com/sundial-foundation/sundial/lib/ipc"
)

func setTimezoneCommand() *cli.Command {
	conn := defaultConnection()
	return &cli.Command{
		Name:    "set-timezone",
		Summary: "Change the system timezone",
		Usage:   "sundialctl set-timezone <zone> [flags]",
		Examples: []cli.Example{
			{Command: "sundialctl set-timezone Europe/Berlin"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("set-timezone", pflag.ContinueOnError)
			conn.registerFlags(flags)
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("exactly one timezone is required (see 'sundialctl list-timezones')")
			}
			return conn.call(ipc.ActionSetTimezone, map[string]any{
				"timezone":    args[0],
				"interactive": conn.interactive(),
			}, nil)
		},
	}
}
