package field

import (
	"fmt"
	"math"
	"math/cmplx"
)

// RootOfUnity is ω_p^k where ω_p = exp(2πi/p). It is kept symbolic; the
// exponent is always reduced into [0, p).
type RootOfUnity struct {
	p int
	k int
}

// NewRootOfUnity returns ω_p^k.
func NewRootOfUnity(p, k int) (RootOfUnity, error) {
	if p < 2 {
		return RootOfUnity{}, fmt.Errorf("root of unity with p=%d: %w", p, ErrInvalidParameters)
	}
	return RootOfUnity{p: p, k: reduce(k, p)}, nil
}

// Prime returns p.
func (w RootOfUnity) Prime() int {
	return w.p
}

// Exponent returns k in [0, p).
func (w RootOfUnity) Exponent() int {
	return w.k
}

// Mul returns w * u, adding exponents mod p.
func (w RootOfUnity) Mul(u RootOfUnity) (RootOfUnity, error) {
	if w.p != u.p {
		return RootOfUnity{}, fmt.Errorf("ω_%d * ω_%d: %w", w.p, u.p, ErrFieldMismatch)
	}
	return RootOfUnity{p: w.p, k: modAdd(w.k, u.k, w.p)}, nil
}

// Div returns w / u, subtracting exponents mod p.
func (w RootOfUnity) Div(u RootOfUnity) (RootOfUnity, error) {
	if w.p != u.p {
		return RootOfUnity{}, fmt.Errorf("ω_%d / ω_%d: %w", w.p, u.p, ErrFieldMismatch)
	}
	return RootOfUnity{p: w.p, k: modSub(w.k, u.k, w.p)}, nil
}

// Pow returns w^e.
func (w RootOfUnity) Pow(e int) RootOfUnity {
	return RootOfUnity{p: w.p, k: modMul(w.k, e, w.p)}
}

// Inv returns the complex conjugate ω_p^{-k}.
func (w RootOfUnity) Inv() RootOfUnity {
	return RootOfUnity{p: w.p, k: modNeg(w.k, w.p)}
}

// IsOne reports whether the exponent is zero.
func (w RootOfUnity) IsOne() bool {
	return w.k == 0
}

// Equal returns true if w and u denote the same root.
func (w RootOfUnity) Equal(u RootOfUnity) bool {
	return w.p == u.p && w.k == u.k
}

// Complex materializes exp(2πik/p).
func (w RootOfUnity) Complex() complex128 {
	if w.p == 0 {
		return 1
	}
	theta := 2 * math.Pi * float64(w.k) / float64(w.p)
	return cmplx.Exp(complex(0, theta))
}

// String returns "w^k".
func (w RootOfUnity) String() string {
	return fmt.Sprintf("w^%d", w.k)
}
