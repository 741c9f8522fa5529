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

func statusCommand() *cli.Command {
	conn := defaultConnection()
	return &cli.Command{
		Name:    "status",
		Summary: "Show the current time, timezone, and hardware clock settings",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("status", pflag.ContinueOnError)
			conn.registerFlags(flags)
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("status takes no arguments")
			}
			return runStatus(&conn)
		},
	}
}

func runStatus(conn *connection) error {
	var status ipc.Status
	if err := conn.call(ipc.ActionStatus, nil, &status); err != nil {
		return err
	}

	// Zone data is loaded locally for display. The daemon and the CLI
	// run on the same host, so the zone database is shared; an
	// unloadable zone degrades to UTC display rather than failing.
	loc, err := time.LoadLocation(status.Timezone)
	if err != nil {
		loc = time.UTC
	}

	fmt.Print(renderStatus(status, loc))
	return nil
}

// statusTimeFormat matches the conventional timedatectl layout.
const statusTimeFormat = "Mon 2006-01-02 15:04:05"

// renderStatus formats the daemon's status report for display. loc is
// the display location for local time, resolved from the reported
// timezone.
func renderStatus(status ipc.Status, loc *time.Location) string {
	var out strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&out, "%26s: %s\n", label, value)
	}

	local := time.UnixMicro(int64(status.TimeUSec)).In(loc)
	zoneName, _ := local.Zone()

	row("Local time", local.Format(statusTimeFormat+" MST"))
	row("Universal time", local.UTC().Format(statusTimeFormat+" MST"))

	switch {
	case status.RTCError != "":
		row("RTC time", fmt.Sprintf("(unavailable: %s)", status.RTCError))
	case status.RTCTimeUSec == nil:
		row("RTC time", "n/a")
	default:
		row("RTC time", time.UnixMicro(int64(*status.RTCTimeUSec)).UTC().Format(statusTimeFormat))
	}

	row("Time zone", fmt.Sprintf("%s (%s, %s)", status.Timezone, zoneName, local.Format("-0700")))
	row("System clock synchronized", yesNo(status.NTPSynchronized))

	switch {
	case status.NTP != nil && *status.NTP:
		row("NTP service", "active")
	case status.NTP != nil:
		row("NTP service", "inactive")
	default:
		row("NTP service", "n/a")
	}

	row("RTC in local TZ", yesNo(status.LocalRTC))

	return out.String()
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
