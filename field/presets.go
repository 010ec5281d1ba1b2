package field

import (
	"fmt"
	"strings"
)

// Preset is a known primitive polynomial, with a self-dual basis where one exists.
type Preset struct {
	Name     string
	P        int
	N        int
	Poly     []int // c_0..c_n
	SelfDual []int // exponents, nil if none is listed
}

// Presets lists small fields with verified polynomials. GF(9) has no
// self-dual basis since p is odd and n is even.
var Presets = []Preset{
	{Name: "GF4", P: 2, N: 2, Poly: []int{1, 1, 1}, SelfDual: []int{1, 2}},
	{Name: "GF8", P: 2, N: 3, Poly: []int{1, 1, 0, 1}, SelfDual: []int{3, 5, 6}},
	{Name: "GF9", P: 3, N: 2, Poly: []int{2, 1, 1}},
	{Name: "GF16", P: 2, N: 4, Poly: []int{1, 1, 0, 0, 1}, SelfDual: []int{3, 7, 12, 13}},
	{Name: "GF27", P: 3, N: 3, Poly: []int{1, 2, 0, 1}, SelfDual: []int{4, 10, 12}},
	{Name: "GF32", P: 2, N: 5, Poly: []int{1, 0, 1, 0, 0, 1}, SelfDual: []int{3, 5, 11, 22, 24}},
	{Name: "GF125", P: 5, N: 3, Poly: []int{2, 3, 0, 1}, SelfDual: []int{4, 21, 32}},
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, bool) {
	for _, pr := range Presets {
		if strings.EqualFold(pr.Name, name) {
			return pr, true
		}
	}
	return Preset{}, false
}

// Build constructs the preset's field in the polynomial basis.
func (pr Preset) Build(opts ...Option) (*GaloisField, error) {
	f, err := New(pr.P, pr.N, pr.Poly, opts...)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", pr.Name, err)
	}
	return f, nil
}
