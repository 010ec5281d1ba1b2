package field

import (
	"fmt"
)

// Matrix operations over GF(p), entries stored as residues.

// IsLinearlyIndependent checks if the list of vectors over GF(p) is linearly independent.
func IsLinearlyIndependent(vectors [][]int, p int) bool {
	n := len(vectors) // number of vectors
	if n == 0 {
		return true
	}
	m := len(vectors[0]) // dimension of each vector

	// More vectors than dimensions must be dependent
	if n > m {
		return false
	}

	A := copyMatrix(vectors, p)

	// Forward elimination is enough to compute the rank
	rank := 0
	for col := 0; col < m && rank < n; col++ {
		pivot := -1
		for i := rank; i < n; i++ {
			if A[i][col] != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}

		if pivot != rank {
			A[rank], A[pivot] = A[pivot], A[rank]
		}

		invPivot := modInv(A[rank][col], p)
		for i := rank + 1; i < n; i++ {
			if A[i][col] == 0 {
				continue
			}
			factor := modMul(A[i][col], invPivot, p)
			for j := col; j < m; j++ {
				A[i][j] = modSub(A[i][j], modMul(factor, A[rank][j], p), p)
			}
		}
		rank++
	}

	return rank == n
}

// InvertMatrix computes the inverse of an n x n matrix over GF(p) using Gaussian elimination.
func InvertMatrix(A [][]int, p int) ([][]int, error) {
	n := len(A)
	for i := range A {
		if len(A[i]) != n {
			return nil, fmt.Errorf("matrix is not square: row %d has %d entries, want %d", i, len(A[i]), n)
		}
	}

	inv := identityMatrix(n)
	B := copyMatrix(A, p)

	for i := 0; i < n; i++ {
		// Find a non-zero pivot in column i
		pivot := -1
		for k := i; k < n; k++ {
			if B[k][i] != 0 {
				pivot = k
				break
			}
		}
		if pivot == -1 {
			return nil, fmt.Errorf("matrix not invertible")
		}

		if pivot != i {
			B[i], B[pivot] = B[pivot], B[i]
			inv[i], inv[pivot] = inv[pivot], inv[i]
		}

		// Normalize the pivot row
		invPivot := modInv(B[i][i], p)
		for j := 0; j < n; j++ {
			B[i][j] = modMul(B[i][j], invPivot, p)
			inv[i][j] = modMul(inv[i][j], invPivot, p)
		}

		// Eliminate other rows
		for k := 0; k < n; k++ {
			if k == i || B[k][i] == 0 {
				continue
			}
			factor := B[k][i]
			for j := 0; j < n; j++ {
				B[k][j] = modSub(B[k][j], modMul(factor, B[i][j], p), p)
				inv[k][j] = modSub(inv[k][j], modMul(factor, inv[i][j], p), p)
			}
		}
	}
	return inv, nil
}

// MatrixMultiply computes A × B over GF(p).
// A is m×n, B is n×q, result is m×q
func MatrixMultiply(A, B [][]int, p int) [][]int {
	if len(A) == 0 || len(B) == 0 {
		return nil
	}

	m := len(A)
	n := len(A[0])
	q := len(B[0])

	if len(B) != n {
		panic(fmt.Sprintf("matrix dimensions mismatch: A is %d×%d, B is %d×%d", m, n, len(B), q))
	}

	C := make([][]int, m)
	for i := range C {
		C[i] = make([]int, q)
		for j := 0; j < q; j++ {
			sum := 0
			for k := 0; k < n; k++ {
				sum = modAdd(sum, modMul(A[i][k], B[k][j], p), p)
			}
			C[i][j] = sum
		}
	}
	return C
}

// MatrixVector computes A·v over GF(p).
func MatrixVector(A [][]int, v []int, p int) []int {
	out := make([]int, len(A))
	for i, row := range A {
		if len(row) != len(v) {
			panic(fmt.Sprintf("matrix dimensions mismatch: row %d has %d entries, vector has %d", i, len(row), len(v)))
		}
		sum := 0
		for k := range row {
			sum = modAdd(sum, modMul(row[k], v[k], p), p)
		}
		out[i] = sum
	}
	return out
}

// Transpose returns Aᵀ.
func Transpose(A [][]int) [][]int {
	if len(A) == 0 {
		return nil
	}
	T := make([][]int, len(A[0]))
	for j := range T {
		T[j] = make([]int, len(A))
		for i := range A {
			T[j][i] = A[i][j]
		}
	}
	return T
}

// isIdentity reports whether A is the n×n identity matrix.
func isIdentity(A [][]int, n int) bool {
	if len(A) != n {
		return false
	}
	for i, row := range A {
		if len(row) != n {
			return false
		}
		for j, v := range row {
			want := 0
			if i == j {
				want = 1
			}
			if v != want {
				return false
			}
		}
	}
	return true
}

func identityMatrix(n int) [][]int {
	I := make([][]int, n)
	for i := range I {
		I[i] = make([]int, n)
		I[i][i] = 1
	}
	return I
}

// copyMatrix deep-copies A with every entry reduced into [0, p).
func copyMatrix(A [][]int, p int) [][]int {
	B := make([][]int, len(A))
	for i := range A {
		B[i] = make([]int, len(A[i]))
		for j := range A[i] {
			B[i][j] = reduce(A[i][j], p)
		}
	}
	return B
}
