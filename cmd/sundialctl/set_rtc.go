// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/sundial-foundation/sundial/cmd/sundialctl/cli"
	"github.com/sundial-foundation/sundial/lib/ipc"
)

func setRTCCommand() *cli.Command {
	conn := defaultConnection()
	var syncFrom string
	return &cli.Command{
		Name:    "set-rtc",
		Summary: "Switch the hardware clock between UTC and local time",
		Usage:   "sundialctl set-rtc <utc|local> [flags]",
		Description: "Switch the time base the hardware clock is assumed to keep, then\n" +
			"resynchronize. By default the hardware clock is rewritten from the\n" +
			"system clock; --sync-from rtc trusts the hardware clock instead and\n" +
			"warps the system clock to it.",
		Examples: []cli.Example{
			{Description: "keep the RTC in UTC (recommended)", Command: "sundialctl set-rtc utc"},
			{Description: "local-time RTC, trusting the RTC's reading", Command: "sundialctl set-rtc local --sync-from rtc"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("set-rtc", pflag.ContinueOnError)
			conn.registerFlags(flags)
			flags.StringVar(&syncFrom, "sync-from", "system", "resynchronization source: system or rtc")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 || (args[0] != "utc" && args[0] != "local") {
				return fmt.Errorf("expected exactly one argument: utc or local")
			}
			if syncFrom != "system" && syncFrom != "rtc" {
				return fmt.Errorf("invalid --sync-from %q: want system or rtc", syncFrom)
			}
			return conn.call(ipc.ActionSetLocalRTC, map[string]any{
				"local_rtc":   args[0] == "local",
				"fix_system":  syncFrom == "rtc",
				"interactive": conn.interactive(),
			}, nil)
		},
	}
}
