package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyState_PressRelease(t *testing.T) {
	ks := NewKeyState()

	_, ok := ks.LastKeyPressed()
	assert.False(t, ok)

	ks.Press(0x3)
	ks.Press(0xC)
	assert.True(t, ks.IsKeyHeld(0x3))
	assert.True(t, ks.IsKeyHeld(0xC))
	assert.False(t, ks.IsKeyHeld(0x4))

	key, ok := ks.LastKeyPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xC), key)

	ks.Release(0xC)
	assert.False(t, ks.IsKeyHeld(0xC))
	key, ok = ks.LastKeyPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x3), key)

	ks.Release(0x3)
	_, ok = ks.LastKeyPressed()
	assert.False(t, ok)
}

func TestKeyState_ReleaseUnheld(t *testing.T) {
	ks := NewKeyState()

	ks.Release(0x5)
	assert.False(t, ks.IsKeyHeld(0x5))

	ks.Press(0x5)
	ks.Press(0x5)
	ks.Release(0x5)
	assert.False(t, ks.IsKeyHeld(0x5))
}

func TestKeyState_OutOfRange(t *testing.T) {
	ks := NewKeyState()

	ks.Press(0x10)
	ks.Press(0xFF)
	assert.False(t, ks.IsKeyHeld(0x10))
	assert.False(t, ks.IsKeyHeld(0xFF))
	_, ok := ks.LastKeyPressed()
	assert.False(t, ok)
	assert.False(t, ks.Poll())
}

func TestKeyForRune(t *testing.T) {
	layout := []struct {
		keys  string
		codes []uint8
	}{
		{"1234", []uint8{0x1, 0x2, 0x3, 0xC}},
		{"qwer", []uint8{0x4, 0x5, 0x6, 0xD}},
		{"asdf", []uint8{0x7, 0x8, 0x9, 0xE}},
		{"zxcv", []uint8{0xA, 0x0, 0xB, 0xF}},
		{"QWER", []uint8{0x4, 0x5, 0x6, 0xD}},
	}

	for _, row := range layout {
		for i, r := range row.keys {
			code, ok := KeyForRune(r)
			assert.True(t, ok, "key %q", r)
			assert.Equal(t, row.codes[i], code, "key %q", r)
		}
	}

	for _, r := range "5tgb0 \x1b" {
		_, ok := KeyForRune(r)
		assert.False(t, ok, "key %q", r)
	}
}
