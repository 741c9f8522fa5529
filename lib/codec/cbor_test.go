// Copyright 2026 The Sundial Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

func TestMarshalDeterministic(t *testing.T) {
	value := map[string]any{
		"zeta":   1,
		"alpha":  "x",
		"middle": true,
	}

	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding produced different bytes:\n%x\n%x", first, second)
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	data, err := Marshal(map[string]any{
		"timezone": "America/New_York",
		"future":   "field",
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded struct {
		Timezone string `cbor:"timezone"`
	}
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Timezone != "America/New_York" {
		t.Errorf("timezone: got %q, want 'America/New_York'", decoded.Timezone)
	}
}

func TestDecoderDefaultMapType(t *testing.T) {
	data, err := Marshal(map[string]any{"nested": map[string]any{"k": "v"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	nested, ok := decoded["nested"].(map[string]any)
	if !ok {
		t.Fatalf("nested value decoded as %T, want map[string]any", decoded["nested"])
	}
	if nested["k"] != "v" {
		t.Errorf("nested k: got %v, want 'v'", nested["k"])
	}
}
