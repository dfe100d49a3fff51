package reedsolomon

import (
	"errors"
	"testing"
)

func TestGaloisFieldBasics(t *testing.T) {
	field := QRCodeField256
	if field.Size() != 256 {
		t.Errorf("size = %d, want 256", field.Size())
	}
	if field.GeneratorBase() != 0 {
		t.Errorf("generatorBase = %d, want 0", field.GeneratorBase())
	}

	// a * inverse(a) should be 1
	for a := 1; a < 256; a++ {
		inv, err := field.Inverse(a)
		if err != nil {
			t.Fatalf("Inverse(%d): %v", a, err)
		}
		if product := field.Multiply(a, inv); product != 1 {
			t.Errorf("a=%d: a*inv(a) = %d, want 1", a, product)
		}
	}

	if field.Multiply(0, 100) != 0 || field.Multiply(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}
}

func TestAddIsSelfInverse(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if AddOrSubtract(AddOrSubtract(a, b), b) != a {
				t.Fatalf("(%d+%d)+%d != %d", a, b, b, a)
			}
		}
	}
}

func TestPowFieldOrder(t *testing.T) {
	field := QRCodeField256
	for a := 1; a < 256; a++ {
		v, err := field.Pow(a, 255)
		if err != nil {
			t.Fatalf("Pow(%d, 255): %v", a, err)
		}
		if v != 1 {
			t.Errorf("%d^255 = %d, want 1", a, v)
		}
	}
	if v, _ := field.Pow(0, 0); v != 1 {
		t.Errorf("0^0 = %d, want 1", v)
	}
	if v, _ := field.Pow(0, 3); v != 0 {
		t.Errorf("0^3 = %d, want 0", v)
	}
	if v, _ := field.Pow(2, 8); v != 0x1D {
		t.Errorf("2^8 = %#x, want 0x1d", v)
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	field := QRCodeField256
	seen := make(map[int]bool)
	for i := 0; i < 255; i++ {
		x := field.Exp(i)
		if seen[x] {
			t.Fatalf("2^%d = %d repeats; 2 is not primitive", i, x)
		}
		seen[x] = true
		l, err := field.Log(x)
		if err != nil || l != i {
			t.Fatalf("Log(Exp(%d)) = %d, %v", i, l, err)
		}
	}
}

func TestZeroDomainErrors(t *testing.T) {
	field := QRCodeField256
	if _, err := field.Log(0); !errors.Is(err, ErrDomain) {
		t.Errorf("Log(0) err = %v, want ErrDomain", err)
	}
	if _, err := field.Inverse(0); !errors.Is(err, ErrDomain) {
		t.Errorf("Inverse(0) err = %v, want ErrDomain", err)
	}
	if _, err := field.Divide(5, 0); !errors.Is(err, ErrDomain) {
		t.Errorf("Divide(5, 0) err = %v, want ErrDomain", err)
	}
	if _, _, err := field.One().Divide(field.Zero()); !errors.Is(err, ErrDomain) {
		t.Errorf("poly divide by zero err = %v, want ErrDomain", err)
	}
}

func TestGenericGFPoly(t *testing.T) {
	field := QRCodeField256

	zero := field.Zero()
	if !zero.IsZero() {
		t.Error("zero should be zero")
	}
	one := field.One()
	if one.IsZero() || one.Degree() != 0 {
		t.Errorf("one: zero=%v degree=%d", one.IsZero(), one.Degree())
	}

	// p(x) = 2x + 3
	p := field.NewPoly([]int{2, 3})
	if p.EvaluateAt(0) != 3 {
		t.Errorf("p(0) = %d, want 3", p.EvaluateAt(0))
	}
	if p.EvaluateAt(1) != 1 {
		t.Errorf("p(1) = %d, want 1", p.EvaluateAt(1))
	}
	if p.MultiplyScalar(1) != p {
		t.Error("multiply by 1 should return same polynomial")
	}

	if q := field.NewPoly([]int{0, 0, 5, 1}); q.Degree() != 1 || q.Coefficient(1) != 5 {
		t.Errorf("leading zeros not stripped: %v", q.Coefficients())
	}
	if q := field.NewPoly([]int{0, 0}); !q.IsZero() || q.Degree() != 0 {
		t.Errorf("all-zero poly not normalized: %v", q.Coefficients())
	}
}

func TestPolyDivide(t *testing.T) {
	field := QRCodeField256
	a := field.NewPoly([]int{7, 0, 19, 200, 4, 99})
	b := field.NewPoly([]int{3, 1, 45})
	q, r, err := a.Divide(b)
	if err != nil {
		t.Fatalf("Divide: %v", err)
	}
	if r.Degree() >= b.Degree() {
		t.Errorf("remainder degree %d not below divisor degree %d", r.Degree(), b.Degree())
	}
	if back := q.MultiplyPoly(b).AddOrSubtractPoly(r); !back.Equal(a) {
		t.Errorf("q*b + r = %v, want %v", back, a)
	}
}

func TestFormalDerivative(t *testing.T) {
	field := QRCodeField256
	// d/dx (5x^3 + 9x^2 + 4x + 1) = 5x^2 + 4 in characteristic 2
	p := field.NewPoly([]int{5, 9, 4, 1})
	want := field.NewPoly([]int{5, 0, 4})
	if got := p.FormalDerivative(); !got.Equal(want) {
		t.Errorf("derivative = %v, want %v", got.Coefficients(), want.Coefficients())
	}
	if !field.NewPoly([]int{9}).FormalDerivative().IsZero() {
		t.Error("derivative of a constant should be zero")
	}
}
