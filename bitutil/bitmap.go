package bitutil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteSymbol is returned when a bitmap still has unset cells
	// where a fully resolved grid is required.
	ErrIncompleteSymbol = errors.New("bitutil: bitmap has unresolved cells")

	// ErrInvalidScale is returned for non-positive scale factors.
	ErrInvalidScale = errors.New("bitutil: scale must be positive")
)

// Cell is the state of one module.
type Cell uint8

const (
	Unset Cell = iota
	Light
	Dark
)

// CellOf returns Dark for true and Light for false.
func CellOf(dark bool) Cell {
	if dark {
		return Dark
	}
	return Light
}

// Fill supplies the values written by Rect. Use Constant or Computed.
type Fill struct {
	value bool
	fn    func(x, y int, prev Cell) bool
}

// Constant fills every cell with the same value.
func Constant(dark bool) Fill {
	return Fill{value: dark}
}

// Computed fills each cell with fn's result. fn receives coordinates local to
// the rectangle and the cell's previous state.
func Computed(fn func(x, y int, prev Cell) bool) Fill {
	return Fill{fn: fn}
}

func (f Fill) at(x, y int, prev Cell) bool {
	if f.fn != nil {
		return f.fn(x, y, prev)
	}
	return f.value
}

// Bitmap is a rectangular grid of tri-state cells. x is the column and y the
// row; the origin is at the top-left.
type Bitmap struct {
	width  int
	height int
	cells  []Cell
}

// NewBitmap creates a bitmap whose cells are all Unset.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 || height < 0 {
		panic("bitmap: negative dimensions")
	}
	return &Bitmap{width: width, height: height, cells: make([]Cell, width*height)}
}

// NewSquareBitmap creates a dimension x dimension bitmap.
func NewSquareBitmap(dimension int) *Bitmap {
	return NewBitmap(dimension, dimension)
}

// FromBools builds a resolved bitmap from rows of booleans, true being dark.
func FromBools(rows [][]bool) *Bitmap {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	bm := NewBitmap(width, height)
	for y, row := range rows {
		for x := 0; x < width && x < len(row); x++ {
			bm.Set(x, y, row[x])
		}
	}
	return bm
}

// ParseBitmap builds a bitmap from one string per row, using setStr for dark
// cells, unsetStr for light cells and '?' for Unset cells.
func ParseBitmap(repr, setStr, unsetStr string) (*Bitmap, error) {
	var rows [][]Cell
	for _, line := range strings.Split(repr, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		var row []Cell
		for pos := 0; pos < len(line); {
			switch {
			case strings.HasPrefix(line[pos:], setStr):
				row = append(row, Dark)
				pos += len(setStr)
			case strings.HasPrefix(line[pos:], unsetStr):
				row = append(row, Light)
				pos += len(unsetStr)
			case line[pos] == '?':
				row = append(row, Unset)
				pos++
			default:
				return nil, fmt.Errorf("bitmap: illegal character %q in row %d", line[pos], len(rows))
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("bitmap: row %d has %d cells, want %d", len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return NewBitmap(0, 0), nil
	}
	bm := NewBitmap(len(rows[0]), len(rows))
	for y, row := range rows {
		copy(bm.cells[y*bm.width:], row)
	}
	return bm, nil
}

// Width returns the number of columns.
func (b *Bitmap) Width() int { return b.width }

// Height returns the number of rows.
func (b *Bitmap) Height() int { return b.height }

func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Cell returns the state at (x, y); cells outside the bitmap are Unset.
func (b *Bitmap) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Unset
	}
	return b.cells[y*b.width+x]
}

// Get reports whether (x, y) is dark.
func (b *Bitmap) Get(x, y int) bool {
	return b.Cell(x, y) == Dark
}

// IsSet reports whether (x, y) has been resolved to light or dark.
func (b *Bitmap) IsSet(x, y int) bool {
	return b.Cell(x, y) != Unset
}

// Set resolves (x, y). Writes outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, dark bool) {
	if b.inBounds(x, y) {
		b.cells[y*b.width+x] = CellOf(dark)
	}
}

// Rect fills the width x height region with its top-left corner at (left,
// top). The region is clipped to the bitmap.
func (b *Bitmap) Rect(left, top, width, height int, fill Fill) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			x, y := left+dx, top+dy
			if !b.inBounds(x, y) {
				continue
			}
			i := y*b.width + x
			b.cells[i] = CellOf(fill.at(dx, dy, b.cells[i]))
		}
	}
}

// Embed copies the resolved cells of other onto b with other's origin at
// (left, top).
func (b *Bitmap) Embed(left, top int, other *Bitmap) {
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			if c := other.cells[y*other.width+x]; c != Unset && b.inBounds(left+x, top+y) {
				b.cells[(top+y)*b.width+left+x] = c
			}
		}
	}
}

// Border returns a copy of b surrounded by width modules of the given value.
func (b *Bitmap) Border(width int, dark bool) *Bitmap {
	if width < 0 {
		width = 0
	}
	out := NewBitmap(b.width+2*width, b.height+2*width)
	out.Rect(0, 0, out.width, out.height, Constant(dark))
	for y := 0; y < b.height; y++ {
		copy(out.cells[(y+width)*out.width+width:], b.cells[y*b.width:(y+1)*b.width])
	}
	return out
}

// Slice returns a copy of the width x height region at (left, top). Cells
// outside b are Unset.
func (b *Bitmap) Slice(left, top, width, height int) *Bitmap {
	out := NewBitmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.cells[y*width+x] = b.Cell(left+x, top+y)
		}
	}
	return out
}

// Scale returns a copy of b in which each cell becomes a factor x factor
// block.
func (b *Bitmap) Scale(factor int) (*Bitmap, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScale, factor)
	}
	if factor == 1 {
		return b.Clone(), nil
	}
	out := NewBitmap(b.width*factor, b.height*factor)
	for y := 0; y < out.height; y++ {
		src := b.cells[(y/factor)*b.width:]
		row := out.cells[y*out.width : (y+1)*out.width]
		for x := range row {
			row[x] = src[x/factor]
		}
	}
	return out, nil
}

// Transpose returns b mirrored along its main diagonal.
func (b *Bitmap) Transpose() *Bitmap {
	out := NewBitmap(b.height, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			out.cells[x*out.width+y] = b.cells[y*b.width+x]
		}
	}
	return out
}

// Invert returns a copy of b with dark and light swapped. Unset cells stay
// unset.
func (b *Bitmap) Invert() *Bitmap {
	out := b.Clone()
	for i, c := range out.cells {
		switch c {
		case Dark:
			out.cells[i] = Light
		case Light:
			out.cells[i] = Dark
		}
	}
	return out
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Bitmap{width: b.width, height: b.height, cells: cells}
}

// CountDark returns the number of dark cells.
func (b *Bitmap) CountDark() int {
	n := 0
	for _, c := range b.cells {
		if c == Dark {
			n++
		}
	}
	return n
}

// CountUnset returns the number of unresolved cells.
func (b *Bitmap) CountUnset() int {
	n := 0
	for _, c := range b.cells {
		if c == Unset {
			n++
		}
	}
	return n
}

// AssertResolved returns ErrIncompleteSymbol if any cell is Unset.
func (b *Bitmap) AssertResolved() error {
	for i, c := range b.cells {
		if c == Unset {
			return fmt.Errorf("%w: first at (%d, %d)", ErrIncompleteSymbol, i%b.width, i/b.width)
		}
	}
	return nil
}

// Bools returns the grid as rows of booleans, true being dark.
func (b *Bitmap) Bools() ([][]bool, error) {
	if err := b.AssertResolved(); err != nil {
		return nil, err
	}
	rows := make([][]bool, b.height)
	for y := range rows {
		rows[y] = make([]bool, b.width)
		for x := range rows[y] {
			rows[y][x] = b.cells[y*b.width+x] == Dark
		}
	}
	return rows, nil
}

// Equal reports whether both bitmaps have the same size and cells.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, c := range b.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String returns a representation using "X " for dark, "  " for light and
// "? " for unset cells.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (2*b.width + 1))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			switch b.cells[y*b.width+x] {
			case Dark:
				sb.WriteString("X ")
			case Light:
				sb.WriteString("  ")
			default:
				sb.WriteString("? ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
