// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package seat

import "testing"

// TestKeysymRune tests character extraction across the encoding ranges.
func TestKeysymRune(t *testing.T) {
	tests := []struct {
		name string
		sym  Keysym
		want rune
	}{
		{"ascii letter", KeysymA, 'a'},
		{"ascii space", KeysymSpace, ' '},
		{"latin-1 high", Keysym(0xe9), 'é'},
		{"unicode offset", Keysym(0x01000000 | 0x20ac), '€'},
		{"function key has none", KeysymF1, 0},
		{"modifier has none", KeysymShiftL, 0},
		{"control range excluded", Keysym(0x1b), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sym.Rune(); got != tt.want {
				t.Errorf("Rune(%#x) = %q, want %q", uint32(tt.sym), got, tt.want)
			}
		})
	}
}

// TestKeysymIsUnicode tests the 0x01000000 convention.
func TestKeysymIsUnicode(t *testing.T) {
	if !Keysym(0x010020ac).IsUnicode() {
		t.Error("0x0100-offset keysym should be unicode")
	}
	if KeysymA.IsUnicode() {
		t.Error("latin-1 keysym is not unicode-encoded")
	}
	if KeysymF1.IsUnicode() {
		t.Error("function keysym is not unicode-encoded")
	}
}
