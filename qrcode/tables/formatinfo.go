package tables

import (
	"fmt"
	"math/bits"
)

const (
	formatInfoPoly  = 0x537
	formatInfoMask  = 0x5412
	versionInfoPoly = 0x1f25
)

// formatInfoDecodeLookup pairs each masked 15-bit format word with its 5 data
// bits (2-bit EC level, 3-bit mask).
var formatInfoDecodeLookup = [][2]int{
	{0x5412, 0x00}, {0x5125, 0x01}, {0x5E7C, 0x02}, {0x5B4B, 0x03},
	{0x45F9, 0x04}, {0x40CE, 0x05}, {0x4F97, 0x06}, {0x4AA0, 0x07},
	{0x77C4, 0x08}, {0x72F3, 0x09}, {0x7DAA, 0x0A}, {0x789D, 0x0B},
	{0x662F, 0x0C}, {0x6318, 0x0D}, {0x6C41, 0x0E}, {0x6976, 0x0F},
	{0x1689, 0x10}, {0x13BE, 0x11}, {0x1CE7, 0x12}, {0x19D0, 0x13},
	{0x0762, 0x14}, {0x0255, 0x15}, {0x0D0C, 0x16}, {0x083B, 0x17},
	{0x355F, 0x18}, {0x3068, 0x19}, {0x3F31, 0x1A}, {0x3A06, 0x1B},
	{0x24B4, 0x1C}, {0x2183, 0x1D}, {0x2EDA, 0x1E}, {0x2BED, 0x1F},
}

// versionDecodeInfo holds the 18-bit version words for versions 7+.
var versionDecodeInfo = []int{
	0x07C94, 0x085BC, 0x09A99, 0x0A4D3, 0x0BBF6,
	0x0C762, 0x0D847, 0x0E60D, 0x0F928, 0x10B78,
	0x1145D, 0x12A17, 0x13532, 0x149A6, 0x15683,
	0x168C9, 0x177EC, 0x18EC4, 0x191E1, 0x1AFAB,
	0x1B08E, 0x1CC1A, 0x1D33F, 0x1ED75, 0x1F250,
	0x209D5, 0x216F0, 0x228BA, 0x2379F, 0x24B0B,
	0x2542E, 0x26A64, 0x27541, 0x28C69,
}

// FormatInfoBits returns the masked 15-bit format information word for the
// given level and mask: 5 data bits followed by a BCH(15,5) remainder, XORed
// with 0x5412.
func FormatInfoBits(ecLevel ErrorCorrectionLevel, maskPattern int) (int, error) {
	if !ecLevel.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidECLevel, int(ecLevel))
	}
	if maskPattern < 0 || maskPattern >= NumMaskPatterns {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidMask, maskPattern)
	}
	typeInfo := (ecLevel.Bits() << 3) | maskPattern
	bchCode := calculateBCHCode(typeInfo, formatInfoPoly)
	return ((typeInfo << 10) | bchCode) ^ formatInfoMask, nil
}

// DecodeFormatInfo recovers the level and mask from a masked format word,
// tolerating up to 3 bit errors.
func DecodeFormatInfo(maskedFormatInfo int) (ErrorCorrectionLevel, int, bool) {
	bestDifference := 32
	bestFormatInfo := -1
	for _, entry := range formatInfoDecodeLookup {
		if entry[0] == maskedFormatInfo {
			bestFormatInfo = entry[1]
			bestDifference = 0
			break
		}
		if diff := bits.OnesCount(uint(maskedFormatInfo ^ entry[0])); diff < bestDifference {
			bestFormatInfo = entry[1]
			bestDifference = diff
		}
	}
	if bestDifference > 3 {
		return 0, 0, false
	}
	ecLevel, err := ECLevelForBits((bestFormatInfo >> 3) & 0x03)
	if err != nil {
		return 0, 0, false
	}
	return ecLevel, bestFormatInfo & 0x07, true
}

// VersionInfoBits returns the 18-bit version information word: 6 version bits
// followed by a BCH(18,6) remainder. Only versions 7 and up carry one.
func VersionInfoBits(version int) (int, error) {
	if version < 7 || version > MaxVersion {
		return 0, fmt.Errorf("%w: no version information for version %d", ErrInvalidVersion, version)
	}
	return (version << 12) | calculateBCHCode(version, versionInfoPoly), nil
}

// DecodeVersionInfo returns the version whose information word is nearest to
// versionBits, tolerating up to 3 bit errors.
func DecodeVersionInfo(versionBits int) (int, bool) {
	bestDifference := 32
	bestVersion := 0
	for i, target := range versionDecodeInfo {
		if target == versionBits {
			return i + 7, true
		}
		if diff := bits.OnesCount(uint(versionBits ^ target)); diff < bestDifference {
			bestVersion = i + 7
			bestDifference = diff
		}
	}
	if bestDifference <= 3 {
		return bestVersion, true
	}
	return 0, false
}

func calculateBCHCode(value, poly int) int {
	msbSetInPoly := bits.Len(uint(poly))
	value <<= uint(msbSetInPoly - 1)
	for bits.Len(uint(value)) >= msbSetInPoly {
		value ^= poly << uint(bits.Len(uint(value))-msbSetInPoly)
	}
	return value
}
