// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/sundial-foundation/sundial/cmd/sundialctl/cli"
	"github.com/sundial-foundation/sundial/lib/version"
)

func main() {
	if err := rootCommand().Execute(os.Args[1:]); err != nil {
		// Commands that already printed their own output return an
		// ExitError carrying just the status code.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    "sundialctl",
		Summary: "Query and change the system clock, timezone, and hardware clock",
		Description: "sundialctl controls the sundiald time administration daemon.\n" +
			"It can show the current time configuration, set the system clock,\n" +
			"change the timezone, and switch the hardware clock between UTC\n" +
			"and local time.",
		Subcommands: []*cli.Command{
			statusCommand(),
			setTimeCommand(),
			setTimezoneCommand(),
			listTimezonesCommand(),
			setRTCCommand(),
			versionCommand(),
		},
		// Bare invocation shows the status, like timedatectl.
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("unexpected arguments: %v", args)
			}
			conn := defaultConnection()
			return runStatus(&conn)
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			fmt.Printf("sundialctl %s\n", version.Full())
			return nil
		},
	}
}
