package tables

import "fmt"

// NumMaskPatterns is the number of data mask patterns.
const NumMaskPatterns = 8

// MaskFunc reports whether the module at (row, col) is inverted by a mask.
type MaskFunc func(row, col int) bool

// Masks contains the 8 QR code data mask patterns.
var Masks = [NumMaskPatterns]MaskFunc{
	func(i, j int) bool { return (i+j)&0x01 == 0 },             // 000
	func(i, j int) bool { return i&0x01 == 0 },                 // 001
	func(i, j int) bool { return j%3 == 0 },                    // 010
	func(i, j int) bool { return (i+j)%3 == 0 },                // 011
	func(i, j int) bool { return ((i/2)+(j/3))&0x01 == 0 },     // 100
	func(i, j int) bool { return (i*j)%2+(i*j)%3 == 0 },        // 101
	func(i, j int) bool { return ((i*j)%2+(i*j)%3)&0x01 == 0 }, // 110
	func(i, j int) bool { return ((i+j)%2+(i*j)%3)&0x01 == 0 }, // 111
}

// MaskForIndex returns the mask pattern with the given index.
func MaskForIndex(index int) (MaskFunc, error) {
	if index < 0 || index >= NumMaskPatterns {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMask, index)
	}
	return Masks[index], nil
}
