package reedsolomon

import (
	"bytes"
	"errors"
	"testing"
)

func encodeBlock(t *testing.T, data []byte, ecSize int) []byte {
	t.Helper()
	ec, err := NewEncoder(QRCodeField256).Encode(data, ecSize)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return append(append([]byte(nil), data...), ec...)
}

func TestEncodeDecodeQR(t *testing.T) {
	dataSize := 10
	ecSize := 7
	data := make([]byte, dataSize)
	for i := range data {
		data[i] = byte(i + 1)
	}
	block := encodeBlock(t, data, ecSize)

	received := append([]byte(nil), block...)
	received[0] = 0
	received[3] = 200
	received[6] = 100

	dec := NewDecoder(QRCodeField256)
	corrected, n, err := dec.Decode(received, ecSize)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 3 {
		t.Errorf("corrected = %d, want 3", n)
	}
	if !bytes.Equal(corrected, block) {
		t.Errorf("after correction got %v, want %v", corrected, block)
	}
	if received[0] != 0 {
		t.Error("Decode modified its input")
	}
}

// Known vector: "HELLO WORLD" at 1-M.
func TestEncodeKnownVector(t *testing.T) {
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}
	want := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	ec, err := NewEncoder(QRCodeField256).Encode(data, 10)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(ec, want) {
		t.Errorf("ec = %v, want %v", ec, want)
	}
}

func TestDecodeNoErrors(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	block := encodeBlock(t, data, 4)

	corrected, n, err := NewDecoder(QRCodeField256).Decode(block, 4)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if n != 0 {
		t.Errorf("corrected = %d, want 0 (no errors)", n)
	}
	if !bytes.Equal(corrected, block) {
		t.Errorf("got %v, want %v", corrected, block)
	}
}

func TestDecodeUpToCapacity(t *testing.T) {
	data := make([]byte, 30)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	const ecSize = 16
	block := encodeBlock(t, data, ecSize)

	for numErrors := 1; numErrors <= ecSize/2; numErrors++ {
		received := append([]byte(nil), block...)
		for i := 0; i < numErrors; i++ {
			received[i*5] ^= byte(0x5A + i)
		}
		corrected, n, err := NewDecoder(QRCodeField256).Decode(received, ecSize)
		if err != nil {
			t.Fatalf("%d errors: Decode failed: %v", numErrors, err)
		}
		if n != numErrors {
			t.Errorf("%d errors: corrected = %d", numErrors, n)
		}
		if !bytes.Equal(corrected, block) {
			t.Errorf("%d errors: wrong correction", numErrors)
		}
	}
}

func TestDecodeTooManyErrors(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	block := encodeBlock(t, data, 4)

	received := append([]byte(nil), block...)
	received[0] = 0
	received[1] = 0
	received[2] = 0 // 3 errors, ecSize/2 = 2

	_, _, err := NewDecoder(QRCodeField256).Decode(received, 4)
	if !errors.Is(err, ErrUncorrectable) {
		t.Errorf("err = %v, want ErrUncorrectable", err)
	}
}

func TestEncodeRejectsBadArguments(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	if _, err := enc.Encode([]byte{1, 2}, 0); err == nil {
		t.Error("expected error for zero ec bytes")
	}
	if _, err := enc.Encode(nil, 4); err == nil {
		t.Error("expected error for empty data")
	}
	if _, err := enc.Encode(make([]byte, 250), 10); err == nil {
		t.Error("expected error for oversized block")
	}
}

func TestGeneratorRoots(t *testing.T) {
	enc := NewEncoder(QRCodeField256)
	for _, degree := range []int{7, 10, 30} {
		g := enc.Generator(degree)
		if g.Degree() != degree {
			t.Fatalf("degree = %d, want %d", g.Degree(), degree)
		}
		for i := 0; i < degree; i++ {
			if v := g.EvaluateAt(QRCodeField256.Exp(i)); v != 0 {
				t.Errorf("g%d(2^%d) = %d, want 0", degree, i, v)
			}
		}
	}
}
