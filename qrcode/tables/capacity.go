package tables

import "fmt"

// modeIndicatorBits is the width of the mode indicator in every version.
const modeIndicatorBits = 4

// DataBits returns the number of data bits a version holds at a level.
func DataBits(version int, ecLevel ErrorCorrectionLevel) (int, error) {
	v, err := VersionForNumber(version)
	if err != nil {
		return 0, err
	}
	if !ecLevel.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidECLevel, int(ecLevel))
	}
	return v.DataCodewords(ecLevel) * 8, nil
}

// CharacterCapacity returns the largest number of input characters a single
// segment of the given mode can carry in a version at a level.
func CharacterCapacity(version int, ecLevel ErrorCorrectionLevel, mode Mode) (int, error) {
	dataBits, err := DataBits(version, ecLevel)
	if err != nil {
		return 0, err
	}
	countBits, err := mode.CharacterCountBits(version)
	if err != nil {
		return 0, err
	}
	available := dataBits - modeIndicatorBits - countBits

	var chars int
	switch mode {
	case ModeNumeric:
		chars = available / 10 * 3
		switch rem := available % 10; {
		case rem >= 7:
			chars += 2
		case rem >= 4:
			chars++
		}
	case ModeAlphanumeric:
		chars = available / 11 * 2
		if available%11 >= 6 {
			chars++
		}
	case ModeByte:
		chars = available / 8
	case ModeKanji:
		chars = available / 13
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}

	if limit := 1<<countBits - 1; chars > limit {
		chars = limit
	}
	return chars, nil
}
