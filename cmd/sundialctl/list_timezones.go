// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/sundial-foundation/sundial/cmd/sundialctl/cli"
	"github.com/sundial-foundation/sundial/lib/ipc"
)

func listTimezonesCommand() *cli.Command {
	conn := defaultConnection()
	return &cli.Command{
		Name:    "list-timezones",
		Summary: "List available timezone identifiers",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("list-timezones", pflag.ContinueOnError)
			conn.registerFlags(flags)
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("list-timezones takes no arguments")
			}
			var list ipc.TimezoneList
			if err := conn.call(ipc.ActionListTimezones, nil, &list); err != nil {
				return err
			}
			for _, zone := range list.Zones {
				fmt.Println(zone)
			}
			return nil
		},
	}
}
