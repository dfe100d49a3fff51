package qrenc

import "github.com/ericlevine/qrenc/bitutil"

// EncodeOptions configures symbol encoding. The zero value selects error
// correction M, automatic mode, version and mask, a border of 2 modules, scale
// 1 and raw output.
type EncodeOptions struct {
	// ErrorCorrection is one of "L", "M", "Q", "H" (or "low", "medium",
	// "quartile", "high").
	ErrorCorrection string

	// Mode forces "numeric", "alphanumeric" or "byte".
	Mode string

	// Version forces a specific version (1-40). Zero picks the smallest fit.
	Version int

	// Mask forces a specific mask pattern (0-7).
	Mask *int

	// Border is the quiet zone in modules around the symbol.
	Border *int

	// Scale is the number of pixels or grid cells per module.
	Scale int

	// Format selects the renderer.
	Format OutputFormat

	// SVGRects emits one rect per dark module instead of a single path.
	SVGRects bool

	// Alpha adds an alpha channel to FormatImage output.
	Alpha bool

	// CharacterSet selects the byte-mode encoding, "UTF-8" (default) or
	// "ISO-8859-1".
	CharacterSet string
}

// Writer encodes contents into a symbol scaled to fit a pixel box.
type Writer interface {
	Encode(contents string, width, height int, opts *EncodeOptions) (*bitutil.Bitmap, error)
}
