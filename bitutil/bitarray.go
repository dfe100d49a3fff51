// Package bitutil provides the bit string and module grid types used to build
// QR code symbols, together with the renderers for finished grids.
package bitutil

const loadFactor = 0.75

// BitArray is a growable sequence of bits packed into uint32 words. Bits are
// appended most significant first, matching the order in which codewords are
// read out of a symbol.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a new BitArray with the given size, all bits clear.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{
		bits: makeArray(size),
		size: size,
	}
}

// Size returns the number of bits in the array.
func (ba *BitArray) Size() int {
	return ba.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (ba *BitArray) SizeInBytes() int {
	return (ba.size + 7) / 8
}

func (ba *BitArray) ensureCapacity(newSize int) {
	if newSize > len(ba.bits)*32 {
		newBits := makeArray(int(float64(newSize) / loadFactor))
		copy(newBits, ba.bits)
		ba.bits = newBits
	}
}

// Get returns true if bit i is set.
func (ba *BitArray) Get(i int) bool {
	return (ba.bits[i/32] & (1 << uint(i&0x1F))) != 0
}

// AppendBit appends a single bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.ensureCapacity(ba.size + 1)
	if bit {
		ba.bits[ba.size/32] |= 1 << uint(ba.size&0x1F)
	}
	ba.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	nextSize := ba.size
	ba.ensureCapacity(nextSize + numBits)
	for numBitsLeft := numBits - 1; numBitsLeft >= 0; numBitsLeft-- {
		if (value & (1 << uint(numBitsLeft))) != 0 {
			ba.bits[nextSize/32] |= 1 << uint(nextSize&0x1F)
		}
		nextSize++
	}
	ba.size = nextSize
}

// AppendBitArray appends another BitArray to this one.
func (ba *BitArray) AppendBitArray(other *BitArray) {
	ba.ensureCapacity(ba.size + other.size)
	for i := 0; i < other.size; i++ {
		ba.AppendBit(other.Get(i))
	}
}

// AppendBytes appends every byte of data, eight bits each.
func (ba *BitArray) AppendBytes(data []byte) {
	ba.ensureCapacity(ba.size + 8*len(data))
	for _, b := range data {
		ba.AppendBits(uint32(b), 8)
	}
}

// Bytes returns the bits packed into bytes, most significant bit first. A
// trailing partial byte is padded with zero bits.
func (ba *BitArray) Bytes() []byte {
	out := make([]byte, ba.SizeInBytes())
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			out[i/8] |= 0x80 >> uint(i&0x07)
		}
	}
	return out
}

func makeArray(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
