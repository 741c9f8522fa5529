// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind sundialctl.
// It handles subcommand dispatch, pflag parsing, structured help
// output, and typo suggestions for unknown commands and flags.
package cli
