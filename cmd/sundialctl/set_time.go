// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/sundial-foundation/sundial/cmd/sundialctl/cli"
	"github.com/sundial-foundation/sundial/lib/ipc"
)

func setTimeCommand() *cli.Command {
	conn := defaultConnection()
	return &cli.Command{
		Name:    "set-time",
		Summary: "Set the system clock",
		Usage:   "sundialctl set-time <time> [flags]",
		Description: "Set the system clock to an absolute time, or adjust it by a\n" +
			"signed duration. The hardware clock is updated to match.",
		Examples: []cli.Example{
			{Description: "set an absolute local time", Command: `sundialctl set-time "2026-08-25 14:30:00"`},
			{Description: "advance the clock five minutes", Command: "sundialctl set-time +5m"},
			{Description: "step the clock back two minutes ('--' keeps the adjustment out of flag parsing)", Command: "sundialctl set-time -- -2m"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("set-time", pflag.ContinueOnError)
			conn.registerFlags(flags)
			return flags
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("a time is required (e.g. \"2026-08-25 14:30:00\" or +5m)")
			}
			// Unquoted "2026-08-25 14:30:00" arrives as two args.
			spec := strings.Join(args, " ")

			usec, relative, err := parseTimeSpec(spec, time.Now())
			if err != nil {
				return err
			}
			return conn.call(ipc.ActionSetTime, map[string]any{
				"usec_utc":    usec,
				"relative":    relative,
				"interactive": conn.interactive(),
			}, nil)
		},
	}
}
