package field

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	logging "github.com/ipfs/go-log/v2"
	"golang.org/x/crypto/sha3"
)

var log = logging.Logger("field")

// Basis selects how coordinate vectors of elements are reported.
type Basis int

const (
	// PolynomialBasis reports coordinates over 1, x, ..., x^{n-1}.
	PolynomialBasis Basis = iota
	// SelfDualBasis reports coordinates over the basis set by ToSelfDual.
	SelfDualBasis
)

func (b Basis) String() string {
	switch b {
	case PolynomialBasis:
		return "polynomial"
	case SelfDualBasis:
		return "self-dual"
	default:
		return fmt.Sprintf("Basis(%d)", int(b))
	}
}

// GaloisField represents the finite field GF(p^n).
//
// Extension fields (n > 1) are built from a polynomial of degree n whose
// root x generates the multiplicative group. Every nonzero element is some
// x^i, and the field keeps a table between exponents and polynomial-basis
// coordinates so that addition works on coordinates and multiplication on
// exponents. Prime fields (n = 1) need no table.
//
// Arithmetic never modifies a GaloisField and is safe for concurrent use.
// The basis state changed by ToSelfDual and ToPolynomial only affects how
// coordinates are reported, never which element an exponent denotes.
type GaloisField struct {
	p     int      // characteristic
	n     int      // extension degree
	order int      // p^n
	poly  []int    // monic polynomial c_0..c_n, nil for prime fields
	table *table   // nil for prime fields
	id    [32]byte // SHA3-256 over (p, n, poly)

	mutex   sync.RWMutex // protects the basis state below
	basis   Basis
	sdb     []int   // exponents of the self-dual basis
	toSDB   [][]int // polynomial coordinates -> self-dual coordinates
	fromSDB [][]int // self-dual coordinates -> polynomial coordinates
}

// NewPrimeField creates GF(p).
func NewPrimeField(p int, opts ...Option) (*GaloisField, error) {
	return New(p, 1, nil, opts...)
}

// NewExtensionField creates GF(p^n) from the coefficients c_0..c_n of a
// degree-n polynomial whose root is a primitive element. n must be at least 2.
func NewExtensionField(p, n int, poly []int, opts ...Option) (*GaloisField, error) {
	if n < 2 {
		return nil, fmt.Errorf("extension degree %d must be at least 2: %w", n, ErrInvalidParameters)
	}
	return New(p, n, poly, opts...)
}

// New creates GF(p) when n is 1 (poly must then be empty) and GF(p^n)
// otherwise.
func New(p, n int, poly []int, opts ...Option) (*GaloisField, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	if p < 2 {
		return nil, fmt.Errorf("characteristic %d: %w", p, ErrInvalidParameters)
	}
	if !isPrime(p) {
		return nil, fmt.Errorf("characteristic %d is not prime: %w", p, ErrInvalidParameters)
	}
	if n < 1 {
		return nil, fmt.Errorf("extension degree %d must be positive: %w", n, ErrInvalidParameters)
	}
	// MaxOrder bounds the exponent table, which prime fields do not build.
	order := p
	if n > 1 {
		var ok bool
		if order, ok = ipow(p, n, cfg.MaxOrder); !ok {
			return nil, fmt.Errorf("order %d^%d exceeds maximum %d: %w", p, n, cfg.MaxOrder, ErrInvalidParameters)
		}
	}

	f := &GaloisField{
		p:     p,
		n:     n,
		order: order,
	}

	if n == 1 {
		if len(poly) != 0 {
			return nil, fmt.Errorf("prime field takes no polynomial, got %v: %w", poly, ErrInvalidPolynomial)
		}
	} else {
		f.poly, err = normalizePolynomial(p, n, poly)
		if err != nil {
			log.Warnf("rejected polynomial %v over GF(%d): %v", poly, p, err)
			return nil, err
		}
		f.table, err = newTable(p, n, f.poly, order)
		if err != nil {
			log.Warnf("rejected polynomial %s over GF(%d): %v", polyString(f.poly), p, err)
			return nil, err
		}
		log.Debugf("built table for GF(%d^%d) from %s, %d nonzero elements", p, n, polyString(f.poly), order-1)
	}
	f.id = fingerprint(p, n, f.poly)

	if len(cfg.SelfDualBasis) > 0 {
		if err := f.ToSelfDual(cfg.SelfDualBasis); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// normalizePolynomial reduces the coefficients mod p and scales the
// polynomial to be monic.
func normalizePolynomial(p, n int, poly []int) ([]int, error) {
	if len(poly) != n+1 {
		return nil, fmt.Errorf("degree-%d field needs %d coefficients, got %d: %w", n, n+1, len(poly), ErrInvalidPolynomial)
	}
	lead := reduce(poly[n], p)
	if lead == 0 {
		return nil, fmt.Errorf("leading coefficient of %v vanishes mod %d: %w", poly, p, ErrInvalidPolynomial)
	}
	inv := modInv(lead, p)
	out := make([]int, n+1)
	for i, c := range poly {
		out[i] = modMul(c, inv, p)
	}
	return out, nil
}

func fingerprint(p, n int, poly []int) [32]byte {
	buf := binary.AppendUvarint(nil, uint64(p))
	buf = binary.AppendUvarint(buf, uint64(n))
	for _, c := range poly {
		buf = binary.AppendUvarint(buf, uint64(c))
	}
	return sha3.Sum256(buf)
}

// Characteristic returns p.
func (f *GaloisField) Characteristic() int {
	return f.p
}

// Degree returns n.
func (f *GaloisField) Degree() int {
	return f.n
}

// Order returns p^n.
func (f *GaloisField) Order() int {
	return f.order
}

// IsPrimeField reports whether n is 1.
func (f *GaloisField) IsPrimeField() bool {
	return f.n == 1
}

// Polynomial returns the monic coefficients c_0..c_n, or nil for a prime field.
func (f *GaloisField) Polynomial() []int {
	if f.poly == nil {
		return nil
	}
	return append([]int(nil), f.poly...)
}

// Fingerprint returns a SHA3-256 digest of (p, n, polynomial). Two fields
// with the same fingerprint have interchangeable elements.
func (f *GaloisField) Fingerprint() [32]byte {
	return f.id
}

// Equal reports whether g has the same parameters as f.
func (f *GaloisField) Equal(g *GaloisField) bool {
	return f == g || (f != nil && g != nil && f.id == g.id)
}

// At returns the element with index i. Index 0 is the additive identity.
// In a prime field index i is the residue i. In an extension field index i,
// 1 <= i < p^n, is x^i, so index p^n-1 is x^0 = 1.
func (f *GaloisField) At(i int) (Element, error) {
	if i < 0 || i >= f.order {
		return Element{}, fmt.Errorf("index %d outside [0, %d): %w", i, f.order, ErrIndexOutOfRange)
	}
	if f.n == 1 {
		return Element{field: f, value: i}, nil
	}
	if i == 0 {
		return f.Zero(), nil
	}
	return Element{field: f, value: i % (f.order - 1)}, nil
}

// Zero returns the additive identity.
func (f *GaloisField) Zero() Element {
	if f.n == 1 {
		return Element{field: f, value: 0}
	}
	return Element{field: f, value: zeroExp}
}

// One returns the multiplicative identity.
func (f *GaloisField) One() Element {
	if f.n == 1 {
		return Element{field: f, value: 1}
	}
	return Element{field: f, value: 0}
}

// Primitive returns a generator of the multiplicative group: x for an
// extension field, the smallest primitive root for a prime field.
func (f *GaloisField) Primitive() Element {
	if f.n > 1 {
		return Element{field: f, value: 1}
	}
	return Element{field: f, value: primitiveRoot(f.p)}
}

// primitiveRoot finds the smallest g whose order mod p is p-1.
func primitiveRoot(p int) int {
	if p == 2 {
		return 1
	}
	var factors []int
	m := p - 1
	for q := 2; q*q <= m; q++ {
		if m%q == 0 {
			factors = append(factors, q)
			for m%q == 0 {
				m /= q
			}
		}
	}
	if m > 1 {
		factors = append(factors, m)
	}

	for g := 2; g < p; g++ {
		generator := true
		for _, q := range factors {
			if modExp(g, (p-1)/q, p) == 1 {
				generator = false
				break
			}
		}
		if generator {
			return g
		}
	}
	return 1
}

// FromInt returns the image of k in the prime subfield, k*1.
func (f *GaloisField) FromInt(k int) Element {
	r := reduce(k, f.p)
	if f.n == 1 {
		return Element{field: f, value: r}
	}
	v := make([]int, f.n)
	v[0] = r
	return Element{field: f, value: f.mustExponent(v)}
}

// FromCoordinates returns the element with the given coordinates in the
// active basis.
func (f *GaloisField) FromCoordinates(coords []int) (Element, error) {
	if len(coords) != f.n {
		return Element{}, fmt.Errorf("%d coordinates for degree-%d field: %w", len(coords), f.n, ErrElementNotInField)
	}
	v := f.fromActive(coords)
	value, err := f.fromVector(v)
	if err != nil {
		return Element{}, err
	}
	return Element{field: f, value: value}, nil
}

// Elements returns every element in index order, f.At(0) through f.At(p^n-1).
func (f *GaloisField) Elements() []Element {
	out := make([]Element, f.order)
	for i := range out {
		out[i], _ = f.At(i)
	}
	return out
}

// String summarizes the field, e.g. "GF(2^3) mod 1 + x + x^3, polynomial basis".
func (f *GaloisField) String() string {
	if f.n == 1 {
		return fmt.Sprintf("GF(%d)", f.p)
	}
	return fmt.Sprintf("GF(%d^%d) mod %s, %s basis", f.p, f.n, polyString(f.poly), f.Basis())
}

func polyString(poly []int) string {
	var terms []string
	for i, c := range poly {
		if c == 0 {
			continue
		}
		var term string
		switch {
		case i == 0:
			term = fmt.Sprint(c)
		case c == 1:
			term = "x"
		default:
			term = fmt.Sprintf("%dx", c)
		}
		if i > 1 {
			term += fmt.Sprintf("^%d", i)
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Raw values are residues for prime fields and exponents (or zeroExp) for
// extension fields. The helpers below assume both operands are valid values
// of f.

func (f *GaloisField) isZero(a int) bool {
	if f.n == 1 {
		return a == 0
	}
	return a == zeroExp
}

// vector returns the polynomial-basis coordinates of a raw value.
func (f *GaloisField) vector(a int) []int {
	if f.n == 1 {
		return []int{a}
	}
	return f.table.vector(a)
}

func (f *GaloisField) fromVector(v []int) (int, error) {
	if f.n == 1 {
		if len(v) != 1 {
			return 0, fmt.Errorf("vector of length %d in prime field: %w", len(v), ErrElementNotInField)
		}
		return reduce(v[0], f.p), nil
	}
	return f.table.exponent(v)
}

// mustExponent looks up a vector of the right length. The table covers every
// nonzero vector, so a failure means the table itself is corrupt.
func (f *GaloisField) mustExponent(v []int) int {
	e, err := f.table.exponent(v)
	if err != nil {
		panic(fmt.Sprintf("field table inconsistent: %v", err))
	}
	return e
}

func (f *GaloisField) add(a, b int) int {
	if f.n == 1 {
		return modAdd(a, b, f.p)
	}
	if a == zeroExp {
		return b
	}
	if b == zeroExp {
		return a
	}
	va, vb := f.table.powers[a], f.table.powers[b]
	sum := make([]int, f.n)
	for j := range sum {
		sum[j] = modAdd(va[j], vb[j], f.p)
	}
	return f.mustExponent(sum)
}

func (f *GaloisField) neg(a int) int {
	if f.n == 1 {
		return modNeg(a, f.p)
	}
	if a == zeroExp {
		return a
	}
	va := f.table.powers[a]
	out := make([]int, f.n)
	for j := range out {
		out[j] = modNeg(va[j], f.p)
	}
	return f.mustExponent(out)
}

func (f *GaloisField) sub(a, b int) int {
	return f.add(a, f.neg(b))
}

func (f *GaloisField) mul(a, b int) int {
	if f.n == 1 {
		return modMul(a, b, f.p)
	}
	if a == zeroExp || b == zeroExp {
		return zeroExp
	}
	return (a + b) % (f.order - 1)
}

// inv assumes a is nonzero.
func (f *GaloisField) inv(a int) int {
	if f.n == 1 {
		return modInv(a, f.p)
	}
	return modNeg(a, f.order-1)
}

// pow raises a nonzero a to any k, or zero to k >= 0.
func (f *GaloisField) pow(a, k int) int {
	if f.isZero(a) {
		if k == 0 {
			return f.One().value
		}
		return a
	}
	if f.n == 1 {
		e := reduce(k, f.p-1)
		return modExp(a, e, f.p)
	}
	return modMul(a, reduce(k, f.order-1), f.order-1)
}

// scale returns k*a for an integer k.
func (f *GaloisField) scale(a, k int) int {
	return f.mul(a, f.FromInt(k).value)
}
