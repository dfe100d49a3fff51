package bitutil

import (
	"bytes"
	"testing"
)

func TestNewBitArrayClear(t *testing.T) {
	ba := NewBitArray(33)
	if ba.Size() != 33 {
		t.Fatalf("size = %d, want 33", ba.Size())
	}
	for i := 0; i < 33; i++ {
		if ba.Get(i) {
			t.Errorf("bit %d should not be set", i)
		}
	}
	ba.AppendBit(true)
	if !ba.Get(33) || ba.Get(32) {
		t.Error("appended bit should follow the initial bits")
	}
}

func TestBitArrayAppendBit(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBit(true)
	ba.AppendBit(false)
	ba.AppendBit(true)
	if ba.Size() != 3 {
		t.Errorf("size = %d, want 3", ba.Size())
	}
	if !ba.Get(0) || ba.Get(1) || !ba.Get(2) {
		t.Error("incorrect bits after append")
	}
}

func TestBitArrayAppendBits(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x1E, 6) // 011110
	if ba.Size() != 6 {
		t.Fatalf("size = %d, want 6", ba.Size())
	}
	expected := []bool{false, true, true, true, true, false}
	for i, exp := range expected {
		if ba.Get(i) != exp {
			t.Errorf("bit %d = %v, want %v", i, ba.Get(i), exp)
		}
	}
}

func TestBitArrayBytes(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBits(0x2, 4)
	ba.AppendBits(11, 9)
	ba.AppendBytes([]byte{0xEC})
	// 0010 000001011 11101100 -> 00100000 01011111 01100[000]
	want := []byte{0x20, 0x5F, 0x60}
	if got := ba.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %x, want %x", got, want)
	}
	if ba.SizeInBytes() != 3 {
		t.Errorf("SizeInBytes = %d, want 3", ba.SizeInBytes())
	}
}

func TestBitArrayAppendBitArray(t *testing.T) {
	a := &BitArray{}
	a.AppendBits(0x5, 3)
	b := &BitArray{}
	for i := 0; i < 40; i++ {
		b.AppendBit(i%3 == 0)
	}
	a.AppendBitArray(b)
	if a.Size() != 43 {
		t.Fatalf("size = %d, want 43", a.Size())
	}
	for i := 0; i < 40; i++ {
		if a.Get(i+3) != (i%3 == 0) {
			t.Fatalf("bit %d wrong after append", i+3)
		}
	}
}
