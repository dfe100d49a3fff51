package reedsolomon

import (
	"fmt"
	"sync"
)

// Encoder performs systematic Reed-Solomon encoding. It is safe for
// concurrent use.
type Encoder struct {
	field *GenericGF

	mu               sync.Mutex
	cachedGenerators []*GenericGFPoly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *GenericGF) *Encoder {
	e := &Encoder{
		field:            field,
		cachedGenerators: make([]*GenericGFPoly, 1),
	}
	e.cachedGenerators[0] = newGenericGFPoly(field, []int{1})
	return e
}

// Generator returns (x - 2^b)(x - 2^(b+1))...(x - 2^(b+degree-1)) where b is
// the field's generator base.
func (e *Encoder) Generator(degree int) *GenericGFPoly {
	e.mu.Lock()
	defer e.mu.Unlock()
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	lastGenerator := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		nextGenerator := lastGenerator.MultiplyPoly(
			newGenericGFPoly(e.field, []int{1, e.field.Exp(d - 1 + e.field.GeneratorBase())}))
		e.cachedGenerators = append(e.cachedGenerators, nextGenerator)
		lastGenerator = nextGenerator
	}
	return e.cachedGenerators[degree]
}

// Encode returns the ecBytes error-correction codewords for data. data is not
// modified.
func (e *Encoder) Encode(data []byte, ecBytes int) ([]byte, error) {
	if ecBytes <= 0 {
		return nil, fmt.Errorf("reedsolomon: no error correction bytes requested")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("reedsolomon: no data bytes provided")
	}
	if len(data)+ecBytes > e.field.Size()-1 {
		return nil, fmt.Errorf("reedsolomon: block of %d codewords exceeds field size", len(data)+ecBytes)
	}
	generator := e.Generator(ecBytes)
	infoCoefficients := make([]int, len(data))
	for i, b := range data {
		infoCoefficients[i] = int(b)
	}
	info := newGenericGFPoly(e.field, infoCoefficients)
	info = info.MultiplyByMonomial(ecBytes, 1)
	remainder, err := info.Remainder(generator)
	if err != nil {
		return nil, err
	}
	coefficients := remainder.Coefficients()
	if remainder.IsZero() {
		coefficients = nil
	}
	ec := make([]byte, ecBytes)
	numZero := ecBytes - len(coefficients)
	for i, c := range coefficients {
		ec[numZero+i] = byte(c)
	}
	return ec, nil
}

// defaultEncoder is shared by the block helpers.
var defaultEncoder = NewEncoder(QRCodeField256)
