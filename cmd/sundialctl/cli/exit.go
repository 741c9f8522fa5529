// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError signals a non-zero exit code without an extra error line.
// The command has already written its own output; main only sets the
// process exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode is checked by main via an anonymous interface to separate
// handled non-zero exits from unexpected errors.
func (e *ExitError) ExitCode() int {
	return e.Code
}
