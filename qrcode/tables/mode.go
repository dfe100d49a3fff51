package tables

import (
	"fmt"
	"strings"
)

// Mode represents a QR code data encoding mode. Its value is the 4-bit mode
// indicator.
type Mode int

const (
	ModeNumeric      Mode = 0x01
	ModeAlphanumeric Mode = 0x02
	ModeByte         Mode = 0x04
	ModeECI          Mode = 0x07
	ModeKanji        Mode = 0x08
)

// characterCountBits contains [v1-9, v10-26, v27-40] bit counts.
var characterCountBits = map[Mode][3]int{
	ModeNumeric:      {10, 12, 14},
	ModeAlphanumeric: {9, 11, 13},
	ModeByte:         {8, 16, 16},
	ModeKanji:        {8, 10, 12},
}

// ModeForBits returns the Mode for the given 4-bit value.
func ModeForBits(bits int) (Mode, error) {
	switch m := Mode(bits); m {
	case ModeNumeric, ModeAlphanumeric, ModeByte, ModeECI, ModeKanji:
		return m, nil
	}
	return 0, fmt.Errorf("%w: indicator %#x", ErrInvalidMode, bits)
}

// ParseMode accepts a mode name in any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric":
		return ModeNumeric, nil
	case "alphanumeric":
		return ModeAlphanumeric, nil
	case "byte":
		return ModeByte, nil
	case "kanji":
		return ModeKanji, nil
	case "eci":
		return ModeECI, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// VersionTier returns 0 for versions 1-9, 1 for 10-26 and 2 for 27-40.
func VersionTier(version int) int {
	switch {
	case version <= 9:
		return 0
	case version <= 26:
		return 1
	}
	return 2
}

// CharacterCountBits returns the number of bits used to encode the character
// count for this mode in the given version.
func (m Mode) CharacterCountBits(version int) (int, error) {
	if version < 1 || version > 40 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
	widths, ok := characterCountBits[m]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no character count", ErrInvalidMode, m)
	}
	return widths[VersionTier(version)], nil
}

// Bits returns the 4-bit encoding of this mode.
func (m Mode) Bits() int {
	return int(m)
}

func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	case ModeByte:
		return "byte"
	case ModeECI:
		return "eci"
	case ModeKanji:
		return "kanji"
	}
	return fmt.Sprintf("Mode(%#x)", int(m))
}
