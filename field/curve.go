package field

import "fmt"

// Coefficient is a curve coefficient: either a field element or an integer
// standing for its image k*1 in the prime subfield.
type Coefficient struct {
	elem    Element
	integer int
	isElem  bool
}

// Int returns an integer coefficient.
func Int(k int) Coefficient {
	return Coefficient{integer: k}
}

// Elem returns a field-element coefficient.
func Elem(e Element) Coefficient {
	return Coefficient{elem: e, isElem: true}
}

// IsElement reports whether c holds a field element.
func (c Coefficient) IsElement() bool {
	return c.isElem
}

// resolve returns the raw value of c in f.
func (c Coefficient) resolve(f *GaloisField) (int, error) {
	if !c.isElem {
		return f.FromInt(c.integer).value, nil
	}
	if c.elem.field == nil || !f.Equal(c.elem.field) {
		return 0, fmt.Errorf("coefficient %s not in %s: %w", c.elem, f, ErrFieldMismatch)
	}
	return c.elem.value, nil
}

func (c Coefficient) String() string {
	if c.isElem {
		return c.elem.String()
	}
	return fmt.Sprint(c.integer)
}

// Evaluate computes c_0 + c_1 α + ... + c_k α^k by Horner's rule. An empty
// coefficient list evaluates to zero.
func (f *GaloisField) Evaluate(coefs []Coefficient, point Element) (Element, error) {
	if point.field == nil || !f.Equal(point.field) {
		return Element{}, fmt.Errorf("evaluation point %s not in %s: %w", point, f, ErrFieldMismatch)
	}

	acc := f.Zero().value
	for i := len(coefs) - 1; i >= 0; i-- {
		c, err := coefs[i].resolve(f)
		if err != nil {
			return Element{}, fmt.Errorf("coefficient %d: %w", i, err)
		}
		acc = f.add(f.mul(acc, point.value), c)
	}
	return Element{field: f, value: acc}, nil
}
