package field

import (
	"fmt"
	"strconv"
)

// Element is a value of a GaloisField. Elements are immutable; every
// operation returns a new Element. The zero Element has no field and is
// only useful as a placeholder; obtain elements from a GaloisField.
type Element struct {
	field *GaloisField // owning field
	value int          // residue (n = 1) or exponent/zeroExp (n > 1)
}

// Field returns the field e belongs to.
func (e Element) Field() *GaloisField {
	return e.field
}

// check returns ErrFieldMismatch unless e and b belong to the same field.
func (e Element) check(b Element, op string) error {
	if e.field == nil || b.field == nil || !e.field.Equal(b.field) {
		return fmt.Errorf("%s %s: %w", op, mismatchDetail(e, b), ErrFieldMismatch)
	}
	return nil
}

func mismatchDetail(a, b Element) string {
	name := func(f *GaloisField) string {
		if f == nil {
			return "<nil>"
		}
		return f.String()
	}
	return fmt.Sprintf("%s and %s", name(a.field), name(b.field))
}

// Add returns e + b.
func (e Element) Add(b Element) (Element, error) {
	if err := e.check(b, "add"); err != nil {
		return Element{}, err
	}
	return Element{field: e.field, value: e.field.add(e.value, b.value)}, nil
}

// Sub returns e - b.
func (e Element) Sub(b Element) (Element, error) {
	if err := e.check(b, "sub"); err != nil {
		return Element{}, err
	}
	return Element{field: e.field, value: e.field.sub(e.value, b.value)}, nil
}

// Neg returns -e. The zero Element is returned unchanged.
func (e Element) Neg() Element {
	if e.field == nil {
		return e
	}
	return Element{field: e.field, value: e.field.neg(e.value)}
}

// Mul returns e * b.
func (e Element) Mul(b Element) (Element, error) {
	if err := e.check(b, "mul"); err != nil {
		return Element{}, err
	}
	return Element{field: e.field, value: e.field.mul(e.value, b.value)}, nil
}

// Div returns e / b.
func (e Element) Div(b Element) (Element, error) {
	if err := e.check(b, "div"); err != nil {
		return Element{}, err
	}
	if b.IsZero() {
		return Element{}, fmt.Errorf("div %s by zero: %w", e, ErrDivisionByZero)
	}
	f := e.field
	return Element{field: f, value: f.mul(e.value, f.inv(b.value))}, nil
}

// Inv returns the multiplicative inverse of e.
func (e Element) Inv() (Element, error) {
	if e.field == nil {
		return Element{}, fmt.Errorf("inverse of element without field: %w", ErrFieldMismatch)
	}
	if e.IsZero() {
		return Element{}, fmt.Errorf("inverse of zero: %w", ErrDivisionByZero)
	}
	return Element{field: e.field, value: e.field.inv(e.value)}, nil
}

// Pow returns e^k. Negative k inverts first. Any element to the power 0,
// zero included, is 1.
func (e Element) Pow(k int) (Element, error) {
	if e.field == nil {
		return Element{}, fmt.Errorf("power of element without field: %w", ErrFieldMismatch)
	}
	if e.IsZero() && k < 0 {
		return Element{}, fmt.Errorf("zero to the power %d: %w", k, ErrDivisionByZero)
	}
	return Element{field: e.field, value: e.field.pow(e.value, k)}, nil
}

// Scale returns k*e for an integer k, i.e. e added to itself k times.
func (e Element) Scale(k int) Element {
	if e.field == nil {
		return e
	}
	return Element{field: e.field, value: e.field.scale(e.value, k)}
}

// IsZero returns true if e is the additive identity.
func (e Element) IsZero() bool {
	return e.field != nil && e.field.isZero(e.value)
}

// IsOne returns true if e is the multiplicative identity.
func (e Element) IsOne() bool {
	return e.field != nil && e.value == e.field.One().value
}

// Equal returns true if e and b are the same element of the same field.
func (e Element) Equal(b Element) bool {
	return e.field != nil && e.field.Equal(b.field) && e.value == b.value
}

// Exponent returns i with e = x^i for a nonzero element of an extension
// field. ok is false for zero and for prime-field elements.
func (e Element) Exponent() (i int, ok bool) {
	if e.field == nil || e.field.n == 1 || e.value == zeroExp {
		return 0, false
	}
	return e.value, true
}

// Index returns i such that Field().At(i) equals e.
func (e Element) Index() int {
	f := e.field
	switch {
	case f == nil:
		return 0
	case f.n == 1:
		return e.value
	case e.value == zeroExp:
		return 0
	case e.value == 0:
		return f.order - 1
	default:
		return e.value
	}
}

// Residue returns the value of a prime-field element, or of an extension
// element lying in the prime subfield. ok is false otherwise.
func (e Element) Residue() (r int, ok bool) {
	if e.field == nil {
		return 0, false
	}
	v := e.field.vector(e.value)
	for _, c := range v[1:] {
		if c != 0 {
			return 0, false
		}
	}
	return v[0], true
}

// PolynomialCoordinates returns the coordinates of e over 1, x, ..., x^{n-1}.
func (e Element) PolynomialCoordinates() []int {
	if e.field == nil {
		return nil
	}
	return e.field.vector(e.value)
}

// Coordinates returns the coordinates of e in the field's active basis.
func (e Element) Coordinates() []int {
	if e.field == nil {
		return nil
	}
	return e.field.toActive(e.field.vector(e.value))
}

// String returns the residue for prime fields and the coordinate vector in
// the active basis for extension fields.
func (e Element) String() string {
	if e.field == nil {
		return "<nil>"
	}
	if e.field.n == 1 {
		return strconv.Itoa(e.value)
	}
	return fmt.Sprint(e.Coordinates())
}
