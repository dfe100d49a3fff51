package bitutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"strings"

	"golang.org/x/image/draw"
)

// Palette is the two-entry palette used by the image renderers. Index 0 is
// the light module color, index 1 the dark one.
var Palette = color.Palette{color.White, color.Black}

const (
	termReset = "\x1b[0m"
	termDark  = "\x1b[40m  " + termReset
	termLight = "\x1b[1;47m  " + termReset
)

// ASCII renders the bitmap with half-height block characters, two rows per
// line. Light modules are drawn as blocks so the symbol reads correctly on a
// dark terminal background. A missing row below an odd height counts as dark.
func (b *Bitmap) ASCII() (string, error) {
	if err := b.AssertResolved(); err != nil {
		return "", err
	}
	var sb strings.Builder
	for y := 0; y < b.height; y += 2 {
		for x := 0; x < b.width; x++ {
			top := b.Get(x, y)
			bottom := y+1 >= b.height || b.Get(x, y+1)
			switch {
			case !top && !bottom:
				sb.WriteRune('█')
			case !top && bottom:
				sb.WriteRune('▀')
			case top && !bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Term renders the bitmap with ANSI background colors, two spaces per module.
func (b *Bitmap) Term() (string, error) {
	if err := b.AssertResolved(); err != nil {
		return "", err
	}
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) {
				sb.WriteString(termDark)
			} else {
				sb.WriteString(termLight)
			}
		}
	}
	return sb.String(), nil
}

// SVGOptions controls SVG output.
type SVGOptions struct {
	// Rects emits one <rect> per dark module instead of a single path.
	Rects bool
	// Scale sets the width and height attributes in pixels per module.
	// Zero means 1.
	Scale int
}

// SVG renders the bitmap as an SVG document whose viewBox covers one unit per
// module. By default dark modules are merged into horizontal runs of a single
// path.
func (b *Bitmap) SVG(opts SVGOptions) (string, error) {
	if err := b.AssertResolved(); err != nil {
		return "", err
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`,
		b.width, b.height, b.width*scale, b.height*scale)
	sb.WriteString(`<rect width="100%" height="100%" fill="#fff"/>`)
	if opts.Rects {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				if b.Get(x, y) {
					fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="1" height="1"/>`, x, y)
				}
			}
		}
	} else {
		sb.WriteString(`<path d="`)
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; {
				if !b.Get(x, y) {
					x++
					continue
				}
				start := x
				for x < b.width && b.Get(x, y) {
					x++
				}
				fmt.Fprintf(&sb, "M%d,%dh%dv1h-%dz", start, y, x-start, x-start)
			}
		}
		sb.WriteString(`"/>`)
	}
	sb.WriteString("</svg>")
	return sb.String(), nil
}

// ToImage returns the bitmap as a paletted image with scale pixels per module.
func (b *Bitmap) ToImage(scale int) (*image.Paletted, error) {
	if err := b.AssertResolved(); err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	src := image.NewPaletted(image.Rect(0, 0, b.width, b.height), Palette)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) {
				src.SetColorIndex(x, y, 1)
			}
		}
	}
	if scale == 1 {
		return src, nil
	}
	dst := image.NewPaletted(image.Rect(0, 0, b.width*scale, b.height*scale), Palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// GIF renders the bitmap as a single-frame two-color GIF89a image.
func (b *Bitmap) GIF(scale int) ([]byte, error) {
	img, err := b.ToImage(scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, &gif.Options{NumColors: len(Palette)}); err != nil {
		return nil, fmt.Errorf("bitmap: encoding gif: %w", err)
	}
	return buf.Bytes(), nil
}

// Image renders the bitmap as a raw row-major pixel buffer with scale pixels
// per module: 3 bytes per pixel, or 4 when alpha is set.
func (b *Bitmap) Image(scale int, alpha bool) ([]byte, error) {
	if err := b.AssertResolved(); err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, scale)
	}
	bpp := 3
	if alpha {
		bpp = 4
	}
	w, h := b.width*scale, b.height*scale
	out := make([]byte, 0, w*h*bpp)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(0xFF)
			if b.Get(x/scale, y/scale) {
				v = 0
			}
			out = append(out, v, v, v)
			if alpha {
				out = append(out, 0xFF)
			}
		}
	}
	return out, nil
}
