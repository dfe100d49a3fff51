package bitutil

import (
	"bytes"
	"image/gif"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, repr string) *Bitmap {
	t.Helper()
	bm, err := ParseBitmap(repr, "#", ".")
	require.NoError(t, err)
	return bm
}

func TestRenderersRejectUnresolved(t *testing.T) {
	bm := mustParse(t, "#?\n..")
	_, err := bm.ASCII()
	require.ErrorIs(t, err, ErrIncompleteSymbol)
	_, err = bm.Term()
	require.ErrorIs(t, err, ErrIncompleteSymbol)
	_, err = bm.SVG(SVGOptions{})
	require.ErrorIs(t, err, ErrIncompleteSymbol)
	_, err = bm.GIF(1)
	require.ErrorIs(t, err, ErrIncompleteSymbol)
	_, err = bm.Image(1, false)
	require.ErrorIs(t, err, ErrIncompleteSymbol)
}

func TestASCII(t *testing.T) {
	bm := mustParse(t, "#..#\n#.#.\n.#..")
	out, err := bm.ASCII()
	require.NoError(t, err)
	// The third row pairs with an implicit dark row.
	require.Equal(t, " █▀▄\n▀ ▀▀\n", out)
}

func TestTerm(t *testing.T) {
	bm := mustParse(t, "#.\n.#")
	out, err := bm.Term()
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, termDark+termLight, lines[0])
	require.Equal(t, termLight+termDark, lines[1])
}

func TestSVGPath(t *testing.T) {
	bm := mustParse(t, "###.\n.#.#")
	out, err := bm.SVG(SVGOptions{Scale: 10})
	require.NoError(t, err)
	require.Contains(t, out, `viewBox="0 0 4 2"`)
	require.Contains(t, out, `width="40" height="20"`)
	require.Contains(t, out, `<path d="M0,0h3v1h-3zM1,1h1v1h-1zM3,1h1v1h-1z"/>`)
	require.True(t, strings.HasSuffix(out, "</svg>"))
}

func TestSVGRects(t *testing.T) {
	bm := mustParse(t, "#.\n.#")
	out, err := bm.SVG(SVGOptions{Rects: true})
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, `width="1" height="1"`))
	require.Contains(t, out, `<rect x="1" y="1" width="1" height="1"/>`)
	require.NotContains(t, out, "<path")
}

func TestGIFDecodes(t *testing.T) {
	bm := mustParse(t, "#.\n.#")
	data, err := bm.GIF(3)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("GIF89a")))

	img, err := gif.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 6, img.Bounds().Dx())
	require.Equal(t, 6, img.Bounds().Dy())
	r, _, _, _ := img.At(0, 0).RGBA()
	require.Zero(t, r)
	r, _, _, _ = img.At(4, 1).RGBA()
	require.Equal(t, uint32(0xFFFF), r)
}

func TestToImageScale(t *testing.T) {
	bm := mustParse(t, "#.\n..")
	img, err := bm.ToImage(4)
	require.NoError(t, err)
	require.Equal(t, uint8(1), img.ColorIndexAt(3, 3))
	require.Equal(t, uint8(0), img.ColorIndexAt(4, 3))
	require.Equal(t, uint8(0), img.ColorIndexAt(0, 4))

	_, err = bm.ToImage(0)
	require.ErrorIs(t, err, ErrInvalidScale)
}

func TestImageBuffer(t *testing.T) {
	bm := mustParse(t, "#.")
	rgb, err := bm.Image(2, false)
	require.NoError(t, err)
	require.Len(t, rgb, 2*4*3)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, rgb[:12])

	rgba, err := bm.Image(1, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, rgba)
}
