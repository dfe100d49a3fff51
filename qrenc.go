// Package qrenc encodes text into QR code symbols and renders them as raw
// grids, text, SVG or images.
package qrenc

import (
	"fmt"
	"strings"
)

// OutputFormat selects how an encoded symbol is rendered.
type OutputFormat int

const (
	FormatRaw OutputFormat = iota
	FormatASCII
	FormatSVG
	FormatGIF
	FormatTerm
	FormatImage
)

// String returns the name of the output format.
func (f OutputFormat) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatASCII:
		return "ascii"
	case FormatSVG:
		return "svg"
	case FormatGIF:
		return "gif"
	case FormatTerm:
		return "term"
	case FormatImage:
		return "image"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// IsText reports whether the format produces a string rather than bytes or a
// grid.
func (f OutputFormat) IsText() bool {
	return f == FormatASCII || f == FormatSVG || f == FormatTerm
}

// ParseOutputFormat returns the output format with the given name.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(name) {
	case "raw":
		return FormatRaw, nil
	case "ascii":
		return FormatASCII, nil
	case "svg":
		return FormatSVG, nil
	case "gif":
		return FormatGIF, nil
	case "term":
		return FormatTerm, nil
	case "image", "rgba":
		return FormatImage, nil
	}
	return 0, fmt.Errorf("%w: unknown output format %q", ErrInvalidOption, name)
}
