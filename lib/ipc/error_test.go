// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package ipc

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOfStructured(t *testing.T) {
	err := InvalidArgumentf("bad zone %q", "Mars/Olympus")
	if code := CodeOf(err); code != CodeInvalidArgument {
		t.Errorf("code: got %q, want %q", code, CodeInvalidArgument)
	}
	if err.Error() != `bad zone "Mars/Olympus"` {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestCodeOfWrapped(t *testing.T) {
	inner := Devicef("RTC_RD_TIME failed: EIO")
	wrapped := fmt.Errorf("reading hardware clock: %w", inner)
	if code := CodeOf(wrapped); code != CodeDevice {
		t.Errorf("code through wrapping: got %q, want %q", code, CodeDevice)
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if code := CodeOf(errors.New("something broke")); code != CodeInternal {
		t.Errorf("plain error code: got %q, want %q", code, CodeInternal)
	}
}
