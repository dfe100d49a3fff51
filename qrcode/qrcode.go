// Package qrcode turns text into rendered QR code symbols.
package qrcode

import (
	"fmt"

	qrenc "github.com/ericlevine/qrenc"
	"github.com/ericlevine/qrenc/bitutil"
	"github.com/ericlevine/qrenc/charset"
	"github.com/ericlevine/qrenc/qrcode/encoder"
	"github.com/ericlevine/qrenc/qrcode/tables"
)

const (
	defaultBorder  = 2
	defaultECLevel = tables.ECLevelM
)

// Output is a rendered symbol. Exactly one of Grid, Text and Data is set,
// depending on Format.
type Output struct {
	Format qrenc.OutputFormat
	Grid   [][]bool // FormatRaw, true is dark
	Text   string   // FormatASCII, FormatSVG, FormatTerm
	Data   []byte   // FormatGIF, FormatImage
	Border int      // quiet zone in modules, before scaling
	Code   *encoder.QRCode
}

// settings are EncodeOptions resolved against defaults.
type settings struct {
	ecLevel tables.ErrorCorrectionLevel
	hints   encoder.Hints
	border  int
	scale   int
}

func resolveOptions(opts *qrenc.EncodeOptions, ecLevel tables.ErrorCorrectionLevel, border int) (settings, error) {
	s := settings{
		ecLevel: ecLevel,
		hints:   encoder.Hints{Mask: encoder.AutoMask},
		border:  border,
		scale:   1,
	}
	if opts == nil {
		return s, nil
	}

	var err error
	if opts.ErrorCorrection != "" {
		if s.ecLevel, err = tables.ParseECLevel(opts.ErrorCorrection); err != nil {
			return s, fmt.Errorf("%w: %w", qrenc.ErrInvalidOption, err)
		}
	}
	if opts.Mode != "" {
		if s.hints.Mode, err = tables.ParseMode(opts.Mode); err != nil {
			return s, fmt.Errorf("%w: %w", qrenc.ErrInvalidOption, err)
		}
	}
	if opts.CharacterSet != "" {
		if s.hints.Charset, err = charset.Lookup(opts.CharacterSet); err != nil {
			return s, fmt.Errorf("%w: %w", qrenc.ErrInvalidOption, err)
		}
	}
	if opts.Version != 0 {
		s.hints.Version = opts.Version
	}
	if opts.Mask != nil {
		s.hints.Mask = *opts.Mask
		if s.hints.Mask == encoder.AutoMask {
			return s, fmt.Errorf("%w: got %d", qrenc.ErrInvalidMask, s.hints.Mask)
		}
	}
	if opts.Border != nil {
		if *opts.Border < 0 {
			return s, fmt.Errorf("%w: negative border %d", qrenc.ErrInvalidOption, *opts.Border)
		}
		s.border = *opts.Border
	}
	switch {
	case opts.Scale < 0:
		return s, fmt.Errorf("%w: negative scale %d", qrenc.ErrInvalidOption, opts.Scale)
	case opts.Scale > 0:
		s.scale = opts.Scale
	}
	return s, nil
}

// Encode encodes content and renders it in opts.Format. A nil opts selects
// error correction M, automatic mode, version and mask, a 2-module border,
// scale 1 and raw output.
func Encode(content string, opts *qrenc.EncodeOptions) (*Output, error) {
	s, err := resolveOptions(opts, defaultECLevel, defaultBorder)
	if err != nil {
		return nil, err
	}
	format := qrenc.FormatRaw
	if opts != nil {
		format = opts.Format
	}

	code, err := encoder.Encode(content, s.ecLevel, s.hints)
	if err != nil {
		return nil, err
	}
	framed := code.Matrix.Border(s.border, false)

	out := &Output{Format: format, Border: s.border, Code: code}
	switch format {
	case qrenc.FormatRaw, qrenc.FormatASCII, qrenc.FormatTerm:
		scaled, err := framed.Scale(s.scale)
		if err != nil {
			return nil, err
		}
		switch format {
		case qrenc.FormatRaw:
			out.Grid, err = scaled.Bools()
		case qrenc.FormatASCII:
			out.Text, err = scaled.ASCII()
		default:
			out.Text, err = scaled.Term()
		}
		if err != nil {
			return nil, err
		}
	case qrenc.FormatSVG:
		svgOpts := bitutil.SVGOptions{Rects: opts.SVGRects, Scale: s.scale}
		if out.Text, err = framed.SVG(svgOpts); err != nil {
			return nil, err
		}
	case qrenc.FormatGIF:
		if out.Data, err = framed.GIF(s.scale); err != nil {
			return nil, err
		}
	case qrenc.FormatImage:
		if out.Data, err = framed.Image(s.scale, opts.Alpha); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown output format %s", qrenc.ErrInvalidOption, format)
	}
	return out, nil
}
