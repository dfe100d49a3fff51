package reedsolomon

import "fmt"

// Decoder performs Reed-Solomon error correction decoding.
type Decoder struct {
	field *GenericGF
}

// NewDecoder creates a new Decoder for the given field.
func NewDecoder(field *GenericGF) *Decoder {
	return &Decoder{field: field}
}

// Decode corrects errors in a received block of data followed by twoS
// error-correction codewords. It returns a corrected copy of the block and the
// number of codewords that were repaired; received is left untouched.
func (d *Decoder) Decode(received []byte, twoS int) ([]byte, int, error) {
	if twoS <= 0 || twoS >= len(received) {
		return nil, 0, fmt.Errorf("reedsolomon: %d ec codewords for a block of %d", twoS, len(received))
	}
	if len(received) > d.field.Size()-1 {
		return nil, 0, fmt.Errorf("reedsolomon: block of %d codewords exceeds field size", len(received))
	}
	corrected := make([]byte, len(received))
	copy(corrected, received)

	coefficients := make([]int, len(received))
	for i, b := range received {
		coefficients[i] = int(b)
	}
	poly := newGenericGFPoly(d.field, coefficients)
	syndromeCoefficients := make([]int, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := poly.EvaluateAt(d.field.Exp(i + d.field.GeneratorBase()))
		syndromeCoefficients[twoS-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return corrected, 0, nil
	}

	syndrome := newGenericGFPoly(d.field, syndromeCoefficients)
	sigma, omega, err := d.runEuclideanAlgorithm(d.field.BuildMonomial(twoS, 1), syndrome, twoS)
	if err != nil {
		return nil, 0, err
	}
	errorLocations, err := d.findErrorLocations(sigma)
	if err != nil {
		return nil, 0, err
	}
	errorMagnitudes, err := d.findErrorMagnitudes(omega, errorLocations)
	if err != nil {
		return nil, 0, err
	}
	for i, location := range errorLocations {
		logLocation, err := d.field.Log(location)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrUncorrectable, err)
		}
		position := len(received) - 1 - logLocation
		if position < 0 {
			return nil, 0, fmt.Errorf("%w: error location outside block", ErrUncorrectable)
		}
		corrected[position] ^= byte(errorMagnitudes[i])
	}
	return corrected, len(errorLocations), nil
}

// runEuclideanAlgorithm returns the error locator and error evaluator
// polynomials for the syndrome b, using a = x^R.
func (d *Decoder) runEuclideanAlgorithm(a, b *GenericGFPoly, R int) (sigma, omega *GenericGFPoly, err error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast := a
	r := b
	tLast := d.field.Zero()
	t := d.field.One()

	for 2*r.Degree() >= R {
		rLastLast := rLast
		tLastLast := tLast
		rLast = r
		tLast = t

		if rLast.IsZero() {
			return nil, nil, fmt.Errorf("%w: remainder vanished early", ErrUncorrectable)
		}
		r = rLastLast
		q := d.field.Zero()
		dltInverse, err := d.field.Inverse(rLast.Coefficient(rLast.Degree()))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: zero leading coefficient", ErrAlgorithm)
		}
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := d.field.Multiply(r.Coefficient(r.Degree()), dltInverse)
			q = q.AddOrSubtractPoly(d.field.BuildMonomial(degreeDiff, scale))
			r = r.AddOrSubtractPoly(rLast.MultiplyByMonomial(degreeDiff, scale))
		}

		t = q.MultiplyPoly(tLast).AddOrSubtractPoly(tLastLast)

		if r.Degree() >= rLast.Degree() {
			return nil, nil, fmt.Errorf("%w: division failed to reduce degree", ErrAlgorithm)
		}
	}

	sigmaTildeAtZero := t.Coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, fmt.Errorf("%w: sigma(0) is zero", ErrUncorrectable)
	}

	inverse, err := d.field.Inverse(sigmaTildeAtZero)
	if err != nil {
		return nil, nil, err
	}
	return t.MultiplyScalar(inverse), r.MultiplyScalar(inverse), nil
}

// findErrorLocations returns the inverses of the roots of errorLocator, found
// by evaluating it at every non-zero field element.
func (d *Decoder) findErrorLocations(errorLocator *GenericGFPoly) ([]int, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []int{errorLocator.Coefficient(1)}, nil
	}
	result := make([]int, 0, numErrors)
	for i := 1; i < d.field.Size() && len(result) < numErrors; i++ {
		if errorLocator.EvaluateAt(i) == 0 {
			inverse, err := d.field.Inverse(i)
			if err != nil {
				return nil, err
			}
			result = append(result, inverse)
		}
	}
	if len(result) != numErrors {
		return nil, fmt.Errorf("%w: found %d roots for a locator of degree %d", ErrUncorrectable, len(result), numErrors)
	}
	return result, nil
}

// findErrorMagnitudes applies Forney's formula, using the product of
// (1 - Xj/Xi) in place of the locator derivative.
func (d *Decoder) findErrorMagnitudes(errorEvaluator *GenericGFPoly, errorLocations []int) ([]int, error) {
	s := len(errorLocations)
	result := make([]int, s)
	for i := 0; i < s; i++ {
		xiInverse, err := d.field.Inverse(errorLocations[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUncorrectable, err)
		}
		denominator := 1
		for j := 0; j < s; j++ {
			if i != j {
				term := d.field.Multiply(errorLocations[j], xiInverse)
				denominator = d.field.Multiply(denominator, AddOrSubtract(1, term))
			}
		}
		inverseDenominator, err := d.field.Inverse(denominator)
		if err != nil {
			return nil, fmt.Errorf("%w: repeated error location", ErrUncorrectable)
		}
		result[i] = d.field.Multiply(errorEvaluator.EvaluateAt(xiInverse), inverseDenominator)
		if d.field.GeneratorBase() != 0 {
			result[i] = d.field.Multiply(result[i], xiInverse)
		}
	}
	return result, nil
}

// defaultDecoder is shared by the block helpers.
var defaultDecoder = NewDecoder(QRCodeField256)
