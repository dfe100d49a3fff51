package qrcode

import (
	"bytes"
	"image/gif"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	qrenc "github.com/ericlevine/qrenc"
	"github.com/ericlevine/qrenc/qrcode/tables"
)

func intPtr(v int) *int { return &v }

func TestEncodeDefaults(t *testing.T) {
	out, err := Encode("HELLO WORLD", nil)
	require.NoError(t, err)
	require.Equal(t, qrenc.FormatRaw, out.Format)
	require.Equal(t, tables.ECLevelM, out.Code.ECLevel)
	require.Equal(t, 1, out.Code.Version.Number)
	require.Equal(t, 2, out.Border)
	// 21 modules plus a 2-module border on each side
	require.Len(t, out.Grid, 25)
	require.Len(t, out.Grid[0], 25)
	for i := 0; i < 25; i++ {
		require.False(t, out.Grid[0][i], "border row must be light")
		require.False(t, out.Grid[i][24], "border column must be light")
	}
	require.True(t, out.Grid[2][2], "finder corner")
}

func TestEncodeHelloWorldReference(t *testing.T) {
	opts := &qrenc.EncodeOptions{ErrorCorrection: "low", Version: 1, Border: intPtr(0)}
	out, err := Encode("HELLO WORLD", opts)
	require.NoError(t, err)
	require.Len(t, out.Grid, 21)
	require.Equal(t, tables.ModeAlphanumeric, out.Code.Mode)
	require.Equal(t, 7, out.Code.MaskPattern)
	require.Equal(t, 234, out.Code.Matrix.CountDark())
	require.Equal(t, 0, out.Border)

	again, err := Encode("HELLO WORLD", opts)
	require.NoError(t, err)
	require.Equal(t, out.Grid, again.Grid)
	require.Equal(t, out.Code.MaskPattern, again.Code.MaskPattern)
}

func TestEncodeScale(t *testing.T) {
	out, err := Encode("12345", &qrenc.EncodeOptions{Border: intPtr(1), Scale: 3})
	require.NoError(t, err)
	require.Len(t, out.Grid, (21+2)*3)
	// the top-left finder starts after 3 pixels of border
	require.False(t, out.Grid[2][2])
	require.True(t, out.Grid[3][3])
	require.True(t, out.Grid[5][5])
}

func TestEncodeFormats(t *testing.T) {
	ascii, err := Encode("TEST", &qrenc.EncodeOptions{Format: qrenc.FormatASCII})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(ascii.Text, "\n"), "\n")
	require.Len(t, lines, 13) // 25 rows, two per line
	require.Equal(t, 25, len([]rune(lines[0])))

	term, err := Encode("TEST", &qrenc.EncodeOptions{Format: qrenc.FormatTerm})
	require.NoError(t, err)
	require.Len(t, strings.Split(term.Text, "\n"), 25)

	svg, err := Encode("TEST", &qrenc.EncodeOptions{Format: qrenc.FormatSVG, Scale: 4})
	require.NoError(t, err)
	require.Contains(t, svg.Text, `viewBox="0 0 25 25"`)
	require.Contains(t, svg.Text, `width="100"`)
	require.Contains(t, svg.Text, "<path")

	rects, err := Encode("TEST", &qrenc.EncodeOptions{Format: qrenc.FormatSVG, SVGRects: true})
	require.NoError(t, err)
	require.Equal(t, rects.Code.Matrix.CountDark(), strings.Count(rects.Text, `width="1" height="1"`))

	g, err := Encode("TEST", &qrenc.EncodeOptions{Format: qrenc.FormatGIF, Scale: 2})
	require.NoError(t, err)
	img, err := gif.Decode(bytes.NewReader(g.Data))
	require.NoError(t, err)
	require.Equal(t, 50, img.Bounds().Dx())

	raw, err := Encode("TEST", &qrenc.EncodeOptions{Format: qrenc.FormatImage, Alpha: true})
	require.NoError(t, err)
	require.Len(t, raw.Data, 25*25*4)
}

func TestEncodeOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opts *qrenc.EncodeOptions
		want error
	}{
		{"ec level", &qrenc.EncodeOptions{ErrorCorrection: "X"}, qrenc.ErrInvalidOption},
		{"mode name", &qrenc.EncodeOptions{Mode: "binary"}, qrenc.ErrInvalidOption},
		{"kanji", &qrenc.EncodeOptions{Mode: "kanji"}, qrenc.ErrUnsupportedMode},
		{"charset", &qrenc.EncodeOptions{CharacterSet: "EBCDIC"}, qrenc.ErrInvalidOption},
		{"border", &qrenc.EncodeOptions{Border: intPtr(-1)}, qrenc.ErrInvalidOption},
		{"scale", &qrenc.EncodeOptions{Scale: -2}, qrenc.ErrInvalidOption},
		{"mask", &qrenc.EncodeOptions{Mask: intPtr(9)}, qrenc.ErrInvalidMask},
		{"negative mask", &qrenc.EncodeOptions{Mask: intPtr(-1)}, qrenc.ErrInvalidMask},
		{"version", &qrenc.EncodeOptions{Version: 99}, qrenc.ErrInvalidVersion},
		{"format", &qrenc.EncodeOptions{Format: qrenc.OutputFormat(42)}, qrenc.ErrInvalidOption},
		{"capacity", &qrenc.EncodeOptions{Version: 1, ErrorCorrection: "H", Mode: "byte"}, qrenc.ErrCapacityOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode("THIS CONTENT IS TOO LONG FOR 1-H", tt.opts)
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, out)
		})
	}
}

func TestEncodePinnedMask(t *testing.T) {
	for mask := 0; mask < tables.NumMaskPatterns; mask++ {
		out, err := Encode("PINNED", &qrenc.EncodeOptions{Mask: intPtr(mask), Version: 2})
		require.NoError(t, err)
		require.Equal(t, mask, out.Code.MaskPattern)
	}
}

func TestWriterEncode(t *testing.T) {
	w := NewWriter()
	result, err := w.Encode("Hello", 100, 100, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.Width(), 100)
	require.GreaterOrEqual(t, result.Height(), 100)
	require.NoError(t, result.AssertResolved())
}

func TestWriterEncodeWithOptions(t *testing.T) {
	w := NewWriter()
	opts := &qrenc.EncodeOptions{
		ErrorCorrection: "H",
		Border:          intPtr(2),
	}
	result, err := w.Encode("Test", 200, 200, opts)
	require.NoError(t, err)
	require.Equal(t, 200, result.Width())
	// 21 modules + 4 border fit 8 times into 200; the symbol is centered.
	padding := (200 - 21*8) / 2
	require.False(t, result.Get(padding-1, padding))
	require.True(t, result.Get(padding, padding))
	require.True(t, result.Get(padding+7*8-1, padding))
	require.False(t, result.Get(padding+7*8, padding+8))
}

func TestWriterEmptyContents(t *testing.T) {
	_, err := NewWriter().Encode("", 100, 100, nil)
	require.ErrorIs(t, err, qrenc.ErrInvalidOption)
}

func TestWriterNegativeDimensions(t *testing.T) {
	_, err := NewWriter().Encode("Hello", -1, 100, nil)
	require.ErrorIs(t, err, qrenc.ErrInvalidOption)
}
