package internal

import "unicode"

// NumKeys is the number of keys on the CHIP-8 hexadecimal keypad
const NumKeys = 16

// Keypad is the input capability the VM queries
type Keypad interface {
	IsKeyHeld(key uint8) bool
	// LastKeyPressed returns the most recently pressed key that is still held.
	LastKeyPressed() (uint8, bool)
	// Poll drains pending host events and reports whether the host asked to quit.
	Poll() bool
}

// KeyState tracks which keypad keys are held. Host frontends embed it and
// feed it from their event loop.
type KeyState struct {
	// A 16-bit integer to hold the current key values in the form of individual bits.
	// So when 0 is pushed in the keypad, the 0'th bit will be set and so on.
	key uint16

	last    uint8
	hasLast bool
}

// NewKeyState returns a keypad with no keys held
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press marks the key as held and makes it the most recently pressed key
func (ks *KeyState) Press(code uint8) {
	if code >= NumKeys {
		return
	}
	ks.key |= 1 << code
	ks.last = code
	ks.hasLast = true
}

// Release marks the key as no longer held
func (ks *KeyState) Release(code uint8) {
	if code >= NumKeys {
		return
	}
	ks.key &^= 1 << code
	if ks.hasLast && ks.last == code {
		ks.hasLast = false
	}
}

// IsKeyHeld returns whether the key is currently held. Codes outside the
// keypad are never held.
func (ks *KeyState) IsKeyHeld(code uint8) bool {
	if code >= NumKeys {
		return false
	}
	mask := uint16(1) << code
	return ks.key&mask == mask
}

// LastKeyPressed returns the most recently pressed key if it is still held,
// otherwise the lowest held key.
func (ks *KeyState) LastKeyPressed() (uint8, bool) {
	if ks.hasLast && ks.IsKeyHeld(ks.last) {
		return ks.last, true
	}
	for code := uint8(0); code < NumKeys; code++ {
		if ks.IsKeyHeld(code) {
			return code, true
		}
	}
	return 0, false
}

// Poll never requests a quit, there is no host behind a bare KeyState
func (ks *KeyState) Poll() bool {
	return false
}

// Maps keys from a QWERTY keyboard to the keypad used by CHIP-8
// +--------+--------+--------+--------+
// | 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
// +--------+--------+--------+--------+
// | Q -> 4 | W -> 5 | E -> 6 | R -> D |
// +--------+--------+--------+--------+
// | A -> 7 | S -> 8 | D -> 9 | F -> E |
// +--------+--------+--------+--------+
// | Z -> A | X -> 0 | C -> B | V -> F |
// +--------+--------+--------+--------+
var runeKeymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyForRune maps a typed character to its keypad code, case-insensitively
func KeyForRune(r rune) (uint8, bool) {
	code, ok := runeKeymap[unicode.ToLower(r)]
	return code, ok
}
