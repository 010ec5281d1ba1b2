package field

import "fmt"

// table is the discrete-log table of GF(p^n), n > 1.
//
// powers[i] holds the polynomial-basis coordinates of x^i for
// 0 <= i < p^n-1. logs maps the base-p index of a coordinate vector
// (sum of v[j]*p^j) back to its exponent; logs[0] is the zero vector and
// holds zeroExp.
type table struct {
	p, n   int
	powers [][]int
	logs   []int
}

// zeroExp is the exponent sentinel for the zero element.
const zeroExp = -1

// newTable walks x^0, x^1, ... by repeated multiplication by x modulo poly.
// poly must already be reduced mod p and monic, with len(poly) == n+1.
func newTable(p, n int, poly []int, order int) (*table, error) {
	t := &table{
		p:      p,
		n:      n,
		powers: make([][]int, order-1),
		logs:   make([]int, order),
	}
	for i := range t.logs {
		t.logs[i] = zeroExp
	}

	v := make([]int, n)
	v[0] = 1
	for i := 0; i < order-1; i++ {
		idx := t.index(v)
		if idx == 0 {
			return nil, fmt.Errorf("x^%d reduces to zero: %w", i, ErrInvalidPolynomial)
		}
		if prev := t.logs[idx]; prev != zeroExp {
			return nil, fmt.Errorf("x^%d repeats x^%d, cycle shorter than %d: %w",
				i, prev, order-1, ErrInvalidPolynomial)
		}
		t.logs[idx] = i
		t.powers[i] = append([]int(nil), v...)
		v = mulX(v, poly, p)
	}

	// The walk must close exactly at x^(p^n-1) = 1.
	if t.index(v) != 1 {
		return nil, fmt.Errorf("x^%d = %v is not 1: %w", order-1, v, ErrInvalidPolynomial)
	}
	return t, nil
}

// mulX returns v*x reduced by x^n = -(c_0 + ... + c_{n-1} x^{n-1}).
func mulX(v, poly []int, p int) []int {
	n := len(v)
	carry := v[n-1]
	out := make([]int, n)
	copy(out[1:], v[:n-1])
	if carry != 0 {
		for j := 0; j < n; j++ {
			out[j] = modSub(out[j], modMul(carry, poly[j], p), p)
		}
	}
	return out
}

// index encodes a reduced coordinate vector as a base-p integer.
func (t *table) index(v []int) int {
	idx := 0
	for j := len(v) - 1; j >= 0; j-- {
		idx = idx*t.p + v[j]
	}
	return idx
}

// vector returns a copy of the coordinates of x^e, or the zero vector for zeroExp.
func (t *table) vector(e int) []int {
	if e == zeroExp {
		return make([]int, t.n)
	}
	return append([]int(nil), t.powers[e]...)
}

// exponent looks up the exponent of a coordinate vector, reducing it mod p first.
func (t *table) exponent(v []int) (int, error) {
	if len(v) != t.n {
		return 0, fmt.Errorf("vector of length %d in degree-%d field: %w", len(v), t.n, ErrElementNotInField)
	}
	r := make([]int, t.n)
	for j := range v {
		r[j] = reduce(v[j], t.p)
	}
	return t.logs[t.index(r)], nil
}
