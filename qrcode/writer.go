package qrcode

import (
	"fmt"

	qrenc "github.com/ericlevine/qrenc"
	"github.com/ericlevine/qrenc/bitutil"
	"github.com/ericlevine/qrenc/qrcode/encoder"
	"github.com/ericlevine/qrenc/qrcode/tables"
)

const defaultQuietZoneSize = 4

// Writer encodes QR codes into bitmaps sized for a pixel box.
type Writer struct{}

var _ qrenc.Writer = (*Writer)(nil)

// NewWriter creates a new QR code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode encodes the given contents into a bitmap of at least width x height
// modules. The symbol is scaled by the largest whole factor that fits and
// centered. Only the error correction, mode, version, mask, border and
// character set options apply.
func (w *Writer) Encode(contents string, width, height int, opts *qrenc.EncodeOptions) (*bitutil.Bitmap, error) {
	if contents == "" {
		return nil, fmt.Errorf("%w: found empty contents", qrenc.ErrInvalidOption)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: requested dimensions are too small: %dx%d", qrenc.ErrInvalidOption, width, height)
	}

	s, err := resolveOptions(opts, tables.ECLevelL, defaultQuietZoneSize)
	if err != nil {
		return nil, err
	}
	code, err := encoder.Encode(contents, s.ecLevel, s.hints)
	if err != nil {
		return nil, err
	}
	return RenderResult(code, width, height, s.border), nil
}

// RenderResult renders a QRCode into a light bitmap of at least width x
// height, scaling each module by the largest whole factor that leaves room
// for quietZone modules on every side.
func RenderResult(code *encoder.QRCode, width, height, quietZone int) *bitutil.Bitmap {
	input := code.Matrix
	inputWidth := input.Width()
	inputHeight := input.Height()
	qrWidth := inputWidth + quietZone*2
	qrHeight := inputHeight + quietZone*2
	outputWidth := max(width, qrWidth)
	outputHeight := max(height, qrHeight)

	multiple := min(outputWidth/qrWidth, outputHeight/qrHeight)

	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	output := bitutil.NewBitmap(outputWidth, outputHeight)
	output.Rect(0, 0, outputWidth, outputHeight, bitutil.Constant(false))

	dark := bitutil.Constant(true)
	for inputY := 0; inputY < inputHeight; inputY++ {
		outputY := topPadding + inputY*multiple
		for inputX := 0; inputX < inputWidth; inputX++ {
			if input.Get(inputX, inputY) {
				outputX := leftPadding + inputX*multiple
				output.Rect(outputX, outputY, multiple, multiple, dark)
			}
		}
	}
	return output
}
