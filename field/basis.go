package field

import "fmt"

// A self-dual basis {θ_1..θ_n} satisfies tr(θ_i θ_j) = δ_ij. The coordinates
// of α in such a basis are c_i = tr(α θ_i), and α = Σ c_i θ_i. With M the
// matrix whose rows are the polynomial coordinates of θ_i, polynomial
// coordinates v and self-dual coordinates c are related by v = Mᵀc.

// VerifySelfDual checks that the elements x^{e_i} form a self-dual basis.
func (f *GaloisField) VerifySelfDual(exponents []int) error {
	if f.n == 1 {
		return fmt.Errorf("prime field GF(%d) has no self-dual basis: %w", f.p, ErrInvalidBasis)
	}
	if len(exponents) != f.n {
		return fmt.Errorf("%d basis elements for degree-%d field: %w", len(exponents), f.n, ErrInvalidBasis)
	}

	theta := f.basisValues(exponents)
	rows := make([][]int, f.n)
	for i, t := range theta {
		rows[i] = f.vector(t)
	}
	if !IsLinearlyIndependent(rows, f.p) {
		return fmt.Errorf("basis %v is linearly dependent: %w", exponents, ErrInvalidBasis)
	}

	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			tr := f.trace(f.mul(theta[i], theta[j]))
			want := 0
			if i == j {
				want = 1
			}
			if tr != want {
				return fmt.Errorf("tr(x^%d * x^%d) = %d, want %d: %w",
					exponents[i], exponents[j], tr, want, ErrInvalidBasis)
			}
		}
	}
	return nil
}

// ToSelfDual switches coordinate reporting to the self-dual basis
// {x^{e_1}, ..., x^{e_n}}. The basis is verified first; on failure the
// field is left unchanged.
func (f *GaloisField) ToSelfDual(exponents []int) error {
	if err := f.VerifySelfDual(exponents); err != nil {
		log.Warnf("rejected self-dual basis %v for %s: %v", exponents, f, err)
		return err
	}

	theta := f.basisValues(exponents)
	M := make([][]int, f.n)
	for i, t := range theta {
		M[i] = f.vector(t)
	}
	fromSDB := Transpose(M)
	toSDB, err := InvertMatrix(fromSDB, f.p)
	if err != nil {
		return fmt.Errorf("basis %v: %v: %w", exponents, err, ErrInvalidBasis)
	}
	if !isIdentity(MatrixMultiply(fromSDB, toSDB, f.p), f.n) {
		return fmt.Errorf("basis %v: change of basis does not invert: %w", exponents, ErrInvalidBasis)
	}

	f.mutex.Lock()
	f.basis = SelfDualBasis
	f.sdb = append([]int(nil), exponents...)
	f.fromSDB = fromSDB
	f.toSDB = toSDB
	f.mutex.Unlock()

	log.Debugf("GF(%d^%d) switched to self-dual basis %v", f.p, f.n, exponents)
	return nil
}

// ToPolynomial switches coordinate reporting back to the polynomial basis.
func (f *GaloisField) ToPolynomial() {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if f.basis == PolynomialBasis {
		return
	}
	f.basis = PolynomialBasis
	f.sdb = nil
	f.fromSDB = nil
	f.toSDB = nil
	log.Debugf("GF(%d^%d) switched to polynomial basis", f.p, f.n)
}

// Basis returns the active basis.
func (f *GaloisField) Basis() Basis {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.basis
}

// IsSelfDual reports whether coordinates are reported in a self-dual basis.
func (f *GaloisField) IsSelfDual() bool {
	return f.Basis() == SelfDualBasis
}

// SelfDualBasis returns the exponents of the active self-dual basis, or nil.
func (f *GaloisField) SelfDualBasis() []int {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	if f.sdb == nil {
		return nil
	}
	return append([]int(nil), f.sdb...)
}

// basisValues maps basis exponents to raw values.
func (f *GaloisField) basisValues(exponents []int) []int {
	out := make([]int, len(exponents))
	for i, e := range exponents {
		out[i] = reduce(e, f.order-1)
	}
	return out
}

// toActive converts polynomial coordinates to the active basis.
func (f *GaloisField) toActive(v []int) []int {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	if f.basis != SelfDualBasis {
		return v
	}
	return MatrixVector(f.toSDB, v, f.p)
}

// fromActive converts coordinates in the active basis to polynomial coordinates.
func (f *GaloisField) fromActive(c []int) []int {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	if f.basis != SelfDualBasis {
		return c
	}
	return MatrixVector(f.fromSDB, c, f.p)
}
