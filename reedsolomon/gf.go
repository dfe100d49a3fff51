// Package reedsolomon implements GF(256) arithmetic and the Reed-Solomon
// coding used by QR code symbols.
package reedsolomon

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned for field operations that are undefined for zero.
	ErrDomain = errors.New("reedsolomon: operation undefined for zero")

	// ErrAlgorithm indicates an internal invariant violation during decoding.
	ErrAlgorithm = errors.New("reedsolomon: algorithm invariant violated")

	// ErrUncorrectable is returned when a block holds more errors than the
	// code can correct.
	ErrUncorrectable = errors.New("reedsolomon: too many errors to correct")
)

// GenericGF represents a Galois Field for Reed-Solomon coding.
type GenericGF struct {
	expTable      []int
	logTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
	size          int
	primitive     int
	generatorBase int
}

// QRCodeField256 is GF(256) reduced by x^8 + x^4 + x^3 + x^2 + 1.
var QRCodeField256 = NewGenericGF(0x011D, 256, 0)

// NewGenericGF creates a GF(size) using the given primitive polynomial. The
// tables are filled by repeated doubling of the primitive element 2.
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}

	gf.zero = newGenericGFPoly(gf, []int{0})
	gf.one = newGenericGFPoly(gf, []int{1})

	return gf
}

// Zero returns the zero polynomial.
func (gf *GenericGF) Zero() *GenericGFPoly { return gf.zero }

// One returns the one polynomial.
func (gf *GenericGF) One() *GenericGFPoly { return gf.one }

// BuildMonomial returns coefficient * x^degree.
func (gf *GenericGF) BuildMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGenericGFPoly(gf, coefficients)
}

// NewPoly builds a normalized polynomial from coefficients ordered from the
// highest degree down. The slice is copied.
func (gf *GenericGF) NewPoly(coefficients []int) *GenericGFPoly {
	if len(coefficients) == 0 {
		return gf.zero
	}
	c := make([]int, len(coefficients))
	for i, v := range coefficients {
		c[i] = v & (gf.size - 1)
	}
	return newGenericGFPoly(gf, c)
}

// AddOrSubtract computes a XOR b (addition and subtraction are the same in GF(2^n)).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns 2^a in this field. Any integer exponent is accepted.
func (gf *GenericGF) Exp(a int) int {
	order := gf.size - 1
	a %= order
	if a < 0 {
		a += order
	}
	return gf.expTable[a]
}

// Log returns log2(a) in this field.
func (gf *GenericGF) Log(a int) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: log(0)", ErrDomain)
	}
	return gf.logTable[a], nil
}

// Inverse returns the multiplicative inverse of a.
func (gf *GenericGF) Inverse(a int) (int, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: inverse(0)", ErrDomain)
	}
	return gf.expTable[gf.size-gf.logTable[a]-1], nil
}

// Multiply returns a * b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Divide returns a / b in this field.
func (gf *GenericGF) Divide(a, b int) (int, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	if a == 0 {
		return 0, nil
	}
	return gf.Exp(gf.logTable[a] - gf.logTable[b]), nil
}

// Pow returns a^n. Negative exponents are allowed for non-zero a.
func (gf *GenericGF) Pow(a, n int) (int, error) {
	if a == 0 {
		switch {
		case n == 0:
			return 1, nil
		case n < 0:
			return 0, fmt.Errorf("%w: negative power of zero", ErrDomain)
		}
		return 0, nil
	}
	return gf.Exp(gf.logTable[a] * (n % (gf.size - 1))), nil
}

// Size returns the size of the field.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the generator base.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// String returns a string representation.
func (gf *GenericGF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
