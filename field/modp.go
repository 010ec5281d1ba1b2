package field

import (
	"math/bits"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// Scalar arithmetic modulo a word-sized prime. Elements of GF(p) are plain
// residues in [0, p), so these helpers are all a prime field needs.

// reduce maps any integer, including negative ones, into [0, m).
func reduce(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// modAdd and modSub work on reduced operands so that the carry out of
// bit 63 is seen for p close to MaxInt64.
func modAdd(a, b, p int) int {
	s, carry := bits.Add64(uint64(reduce(a, p)), uint64(reduce(b, p)), 0)
	if carry != 0 || s >= uint64(p) {
		s -= uint64(p)
	}
	return int(s)
}

func modSub(a, b, p int) int {
	d, borrow := bits.Sub64(uint64(reduce(a, p)), uint64(reduce(b, p)), 0)
	if borrow != 0 {
		d += uint64(p)
	}
	return int(d)
}

func modNeg(a, p int) int {
	return reduce(-a, p)
}

func modMul(a, b, p int) int {
	hi, lo := bits.Mul64(uint64(reduce(a, p)), uint64(reduce(b, p)))
	_, rem := bits.Div64(hi, lo, uint64(p))
	return int(rem)
}

// Barrett reduction in ring.ModExp needs the modulus below 2^61.
const barrettLimit = 1 << 61

// modExp returns a^e mod p for e >= 0.
func modExp(a, e, p int) int {
	if p < barrettLimit {
		return int(ring.ModExp(uint64(reduce(a, p)), uint64(e), uint64(p)))
	}
	result, x := 1, reduce(a, p)
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = modMul(result, x, p)
		}
		x = modMul(x, x, p)
	}
	return result
}

// modInv returns the inverse of a modulo the prime p using Fermat's little
// theorem. a must be nonzero mod p.
func modInv(a, p int) int {
	return modExp(a, p-2, p)
}

// isPrime reports whether p is prime.
func isPrime(p int) bool {
	if p < 2 {
		return false
	}
	return ring.IsPrime(uint64(p))
}

// ipow returns base^exp, or ok=false if the result exceeds limit.
func ipow(base, exp, limit int) (int, bool) {
	result := 1
	for i := 0; i < exp; i++ {
		if result > limit/base {
			return 0, false
		}
		result *= base
	}
	return result, true
}
