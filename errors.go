package qrenc

import (
	"errors"

	"github.com/ericlevine/qrenc/bitutil"
	"github.com/ericlevine/qrenc/qrcode/tables"
	"github.com/ericlevine/qrenc/reedsolomon"
)

var (
	// ErrUnsupportedMode is returned for Kanji or ECI modes, or when the
	// requested mode cannot represent the content.
	ErrUnsupportedMode = errors.New("unsupported encoding mode")

	// ErrCapacityOverflow is returned when content does not fit the
	// requested version.
	ErrCapacityOverflow = errors.New("content exceeds version capacity")

	// ErrNoVersionFits is returned when content does not fit any version at
	// the requested error correction level.
	ErrNoVersionFits = errors.New("content too large for any version")

	// ErrOverflow is returned when placement runs out of free modules
	// before all codeword bits are written.
	ErrOverflow = errors.New("codewords overflow symbol")

	// ErrInvalidOption is returned for malformed encode options.
	ErrInvalidOption = errors.New("invalid option")
)

// Errors from the lower-level packages, re-exported so callers can match every
// encoding failure against this package.
var (
	ErrDomain           = reedsolomon.ErrDomain
	ErrAlgorithm        = reedsolomon.ErrAlgorithm
	ErrUncorrectable    = reedsolomon.ErrUncorrectable
	ErrInvalidMask      = tables.ErrInvalidMask
	ErrInvalidVersion   = tables.ErrInvalidVersion
	ErrInvalidECLevel   = tables.ErrInvalidECLevel
	ErrIncompleteSymbol = bitutil.ErrIncompleteSymbol
	ErrInvalidScale     = bitutil.ErrInvalidScale
)
