// Package tables holds the fixed data of the QR code standard: versions,
// block structure, modes, format and version information, and mask patterns.
package tables

import (
	"fmt"
	"strings"
)

// ErrorCorrectionLevel represents the four QR code error correction levels.
type ErrorCorrectionLevel int

const (
	ECLevelL ErrorCorrectionLevel = iota // ~7% correction
	ECLevelM                             // ~15% correction
	ECLevelQ                             // ~25% correction
	ECLevelH                             // ~30% correction
)

// ECLevels lists the levels in ascending strength.
var ECLevels = [4]ErrorCorrectionLevel{ECLevelL, ECLevelM, ECLevelQ, ECLevelH}

// Bits returns the 2-bit encoding of this level used in format information.
func (ecl ErrorCorrectionLevel) Bits() int {
	switch ecl {
	case ECLevelL:
		return 0x01
	case ECLevelM:
		return 0x00
	case ECLevelQ:
		return 0x03
	case ECLevelH:
		return 0x02
	}
	return 0
}

// Valid reports whether ecl is one of the four defined levels.
func (ecl ErrorCorrectionLevel) Valid() bool {
	return ecl >= ECLevelL && ecl <= ECLevelH
}

// String returns the level name.
func (ecl ErrorCorrectionLevel) String() string {
	switch ecl {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	}
	return "?"
}

// ECLevelForBits returns the ErrorCorrectionLevel for the given 2-bit value.
func ECLevelForBits(bits int) (ErrorCorrectionLevel, error) {
	switch bits {
	case 0:
		return ECLevelM, nil
	case 1:
		return ECLevelL, nil
	case 2:
		return ECLevelH, nil
	case 3:
		return ECLevelQ, nil
	}
	return 0, fmt.Errorf("%w: bits %d", ErrInvalidECLevel, bits)
}

// ParseECLevel accepts a level letter or its long name, in any case.
func ParseECLevel(s string) (ErrorCorrectionLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return ECLevelL, nil
	case "m", "medium":
		return ECLevelM, nil
	case "q", "quartile":
		return ECLevelQ, nil
	case "h", "high":
		return ECLevelH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidECLevel, s)
}
