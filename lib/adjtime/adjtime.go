// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

// Package adjtime reads and writes the RTC time-base convention from
// the adjtime configuration file (see adjtime_config(5)).
//
// The file is the sole authority on whether the hardware clock keeps
// local time or UTC: the third line is "LOCAL" for local time, and
// anything else — including "UTC", an empty line, a short file, or a
// missing file — means UTC. This is a documented on-disk contract, not
// a cache; the package rereads the file on every query.
package adjtime

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sundial-foundation/sundial/lib/ipc"
)

// Mode is the RTC time-base convention.
type Mode int

const (
	// UTC means the RTC stores coordinated universal time.
	UTC Mode = iota
	// Local means the RTC stores local wall-clock time.
	Local
)

func (m Mode) String() string {
	if m == Local {
		return "local"
	}
	return "utc"
}

// localToken is the literal third-line value selecting local mode.
const localToken = "LOCAL"

// defaultDriftLine and defaultEpochLine fill lines 1-2 when writing a
// file that does not exist yet. The drift factors belong to hwclock's
// calibration machinery, which sundiald leaves untouched.
const (
	defaultDriftLine = "0.0 0 0.0"
	defaultEpochLine = "0"
)

// Store reads and writes one adjtime file.
type Store struct {
	path string
}

// NewStore returns a Store for the adjtime file at path
// (conventionally /etc/adjtime).
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Mode reports the configured RTC convention. A missing file means
// UTC. Read failures other than absence are reported as io-error.
func (s *Store) Mode() (Mode, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return UTC, nil
		}
		return UTC, ipc.IOf("reading %s: %v", s.path, err)
	}
	return modeFromContent(string(data)), nil
}

// modeFromContent inspects exactly the third line. Anything other than
// the literal LOCAL token selects UTC.
func modeFromContent(content string) Mode {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 {
		return UTC
	}
	if lines[2] == localToken {
		return Local
	}
	return UTC
}

// SetMode persists the RTC convention, preserving the drift and epoch
// lines of an existing file. The write is atomic: a temporary file in
// the same directory is renamed over the target.
func (s *Store) SetMode(mode Mode) error {
	driftLine := defaultDriftLine
	epochLine := defaultEpochLine

	if data, err := os.ReadFile(s.path); err == nil {
		lines := strings.Split(string(data), "\n")
		if len(lines) >= 1 && lines[0] != "" {
			driftLine = lines[0]
		}
		if len(lines) >= 2 && lines[1] != "" {
			epochLine = lines[1]
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return ipc.IOf("reading %s: %v", s.path, err)
	}

	token := "UTC"
	if mode == Local {
		token = localToken
	}
	content := fmt.Sprintf("%s\n%s\n%s\n", driftLine, epochLine, token)

	temp, err := os.CreateTemp(filepath.Dir(s.path), ".adjtime-*")
	if err != nil {
		return ipc.IOf("creating temporary adjtime file: %v", err)
	}
	tempPath := temp.Name()

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		os.Remove(tempPath)
		return ipc.IOf("writing %s: %v", tempPath, err)
	}
	if err := temp.Close(); err != nil {
		os.Remove(tempPath)
		return ipc.IOf("closing %s: %v", tempPath, err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		os.Remove(tempPath)
		return ipc.IOf("setting mode on %s: %v", tempPath, err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return ipc.IOf("replacing %s: %v", s.path, err)
	}
	return nil
}
