// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package adjtime

import (
	"os"
	"path/filepath"
	"testing"
)

func storeWithContent(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adjtime")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return NewStore(path)
}

func TestModeMissingFileIsUTC(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "adjtime"))
	mode, err := store.Mode()
	if err != nil {
		t.Fatalf("Mode: %v", err)
	}
	if mode != UTC {
		t.Errorf("mode: got %v, want UTC", mode)
	}
}

func TestModeThirdLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Mode
	}{
		{"local token", "0.0 0 0.0\n0\nLOCAL\n", Local},
		{"utc token", "0.0 0 0.0\n0\nUTC\n", UTC},
		{"empty third line", "0.0 0 0.0\n0\n\n", UTC},
		{"two lines only", "0.0 0 0.0\n0\n", UTC},
		{"one line only", "0.0 0 0.0\n", UTC},
		{"empty file", "", UTC},
		{"lowercase local", "0.0 0 0.0\n0\nlocal\n", UTC},
		{"padded local", "0.0 0 0.0\n0\n LOCAL\n", UTC},
		{"local without trailing newline", "0.0 0 0.0\n0\nLOCAL", Local},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := storeWithContent(t, test.content)
			mode, err := store.Mode()
			if err != nil {
				t.Fatalf("Mode: %v", err)
			}
			if mode != test.want {
				t.Errorf("mode: got %v, want %v", mode, test.want)
			}
		})
	}
}

func TestSetModeCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adjtime")
	store := NewStore(path)

	if err := store.SetMode(Local); err != nil {
		t.Fatalf("SetMode: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading result: %v", err)
	}
	if string(data) != "0.0 0 0.0\n0\nLOCAL\n" {
		t.Errorf("content: got %q", data)
	}

	mode, err := store.Mode()
	if err != nil {
		t.Fatalf("Mode: %v", err)
	}
	if mode != Local {
		t.Errorf("round trip mode: got %v, want Local", mode)
	}
}

func TestSetModePreservesDriftLines(t *testing.T) {
	store := storeWithContent(t, "12.456 1702000000 0.001\n1702000000\nLOCAL\n")

	if err := store.SetMode(UTC); err != nil {
		t.Fatalf("SetMode: %v", err)
	}

	data, err := os.ReadFile(store.path)
	if err != nil {
		t.Fatalf("reading result: %v", err)
	}
	if string(data) != "12.456 1702000000 0.001\n1702000000\nUTC\n" {
		t.Errorf("content: got %q", data)
	}
}

func TestModeString(t *testing.T) {
	if UTC.String() != "utc" {
		t.Errorf("UTC string: got %q", UTC.String())
	}
	if Local.String() != "local" {
		t.Errorf("Local string: got %q", Local.String())
	}
}
