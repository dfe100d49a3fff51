package bitutil

import (
	"errors"
	"testing"
)

func TestBitmapSetGet(t *testing.T) {
	bm := NewSquareBitmap(5)
	if bm.IsSet(2, 3) || bm.Cell(2, 3) != Unset {
		t.Fatal("new bitmap should be unset")
	}
	bm.Set(2, 3, true)
	bm.Set(3, 2, false)
	if !bm.Get(2, 3) || bm.Cell(3, 2) != Light || !bm.IsSet(3, 2) {
		t.Errorf("unexpected cells:\n%s", bm)
	}
	// out of bounds writes are dropped, reads are unset
	bm.Set(-1, 0, true)
	bm.Set(5, 5, true)
	if bm.IsSet(5, 5) || bm.Get(-1, 0) {
		t.Error("out-of-bounds cells should read as unset")
	}
}

func TestBitmapRectClipped(t *testing.T) {
	bm := NewBitmap(4, 3)
	bm.Rect(2, 1, 5, 5, Constant(true))
	want, _ := ParseBitmap("????\n??##\n??##\n", "#", ".")
	if !bm.Equal(want) {
		t.Errorf("got\n%swant\n%s", bm, want)
	}
}

func TestBitmapRectComputed(t *testing.T) {
	bm := NewBitmap(6, 1)
	bm.Set(0, 0, true)
	bm.Rect(0, 0, 6, 1, Computed(func(x, y int, prev Cell) bool {
		if prev != Unset {
			return prev == Dark
		}
		return x%2 == 0
	}))
	want, _ := ParseBitmap("#.#.#.", "#", ".")
	if !bm.Equal(want) {
		t.Errorf("got\n%swant\n%s", bm, want)
	}

	// coordinates passed to the fill are local to the rectangle
	bm = NewBitmap(4, 4)
	bm.Rect(1, 1, 2, 2, Computed(func(x, y int, _ Cell) bool { return x == 0 && y == 0 }))
	if !bm.Get(1, 1) || bm.Get(2, 2) || bm.IsSet(0, 0) {
		t.Errorf("unexpected local coordinates:\n%s", bm)
	}
}

func TestBitmapEmbedSkipsUnset(t *testing.T) {
	dst := NewBitmap(4, 4)
	dst.Rect(0, 0, 4, 4, Constant(false))
	src, err := ParseBitmap("#?\n?#", "#", ".")
	if err != nil {
		t.Fatal(err)
	}
	dst.Embed(1, 1, src)
	want, _ := ParseBitmap("....\n.#..\n..#.\n....", "#", ".")
	if !dst.Equal(want) {
		t.Errorf("got\n%swant\n%s", dst, want)
	}
}

func TestBitmapBorderAndSlice(t *testing.T) {
	src, _ := ParseBitmap("#.\n.#", "#", ".")
	framed := src.Border(2, false)
	if framed.Width() != 6 || framed.Height() != 6 {
		t.Fatalf("size = %dx%d, want 6x6", framed.Width(), framed.Height())
	}
	if framed.CountDark() != 2 || !framed.Get(2, 2) || !framed.Get(3, 3) {
		t.Errorf("unexpected border:\n%s", framed)
	}
	if back := framed.Slice(2, 2, 2, 2); !back.Equal(src) {
		t.Errorf("slice = \n%s", back)
	}
	// slicing past the edge yields unset cells
	if s := src.Slice(1, 1, 2, 2); s.IsSet(1, 1) || !s.Get(0, 0) {
		t.Errorf("edge slice = \n%s", s)
	}
}

func TestBitmapScale(t *testing.T) {
	src, _ := ParseBitmap("#.\n.?", "#", ".")
	out, err := src.Scale(2)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := ParseBitmap("##..\n##..\n..??\n..??", "#", ".")
	if !out.Equal(want) {
		t.Errorf("got\n%swant\n%s", out, want)
	}
	if _, err := src.Scale(0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("err = %v, want ErrInvalidScale", err)
	}
}

func TestBitmapTransposeInvert(t *testing.T) {
	src, _ := ParseBitmap("##.\n..?", "#", ".")
	tr := src.Transpose()
	want, _ := ParseBitmap("#.\n#.\n.?", "#", ".")
	if !tr.Equal(want) {
		t.Errorf("transpose got\n%swant\n%s", tr, want)
	}
	inv := src.Invert()
	want, _ = ParseBitmap("..#\n##?", "#", ".")
	if !inv.Equal(want) {
		t.Errorf("invert got\n%swant\n%s", inv, want)
	}
}

func TestBitmapAssertResolved(t *testing.T) {
	bm := NewBitmap(3, 2)
	if err := bm.AssertResolved(); !errors.Is(err, ErrIncompleteSymbol) {
		t.Errorf("err = %v, want ErrIncompleteSymbol", err)
	}
	if _, err := bm.Bools(); !errors.Is(err, ErrIncompleteSymbol) {
		t.Errorf("Bools err = %v, want ErrIncompleteSymbol", err)
	}
	bm.Rect(0, 0, 3, 2, Constant(false))
	bm.Set(1, 1, true)
	rows, err := bm.Bools()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || len(rows[0]) != 3 || !rows[1][1] || rows[0][1] {
		t.Errorf("rows = %v", rows)
	}
	if !FromBools(rows).Equal(bm) {
		t.Error("FromBools(Bools()) should round-trip")
	}
}

func TestBitmapClone(t *testing.T) {
	bm := NewSquareBitmap(3)
	bm.Set(1, 1, true)
	clone := bm.Clone()
	clone.Set(2, 2, true)
	if bm.IsSet(2, 2) {
		t.Error("modifying clone should not affect original")
	}
	if bm.Equal(clone) {
		t.Error("different bitmaps should not be equal")
	}
}

func TestParseBitmapErrors(t *testing.T) {
	if _, err := ParseBitmap("#.\n#", "#", "."); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := ParseBitmap("#x", "#", "."); err == nil {
		t.Error("expected error for illegal character")
	}
	bm, err := ParseBitmap("X X \n  X ", "X ", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width() != 2 || bm.CountDark() != 3 || bm.CountUnset() != 0 {
		t.Errorf("parsed:\n%s", bm)
	}
}
