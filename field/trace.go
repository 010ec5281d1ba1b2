package field

// Frobenius returns e^p.
func (e Element) Frobenius() Element {
	if e.field == nil {
		return e
	}
	return Element{field: e.field, value: e.field.frobenius(e.value)}
}

func (f *GaloisField) frobenius(a int) int {
	return f.pow(a, f.p)
}

// Trace returns tr(e) = e + e^p + ... + e^{p^{n-1}} as a residue in [0, p).
// The trace is additive and always lies in the prime subfield. The zero
// Element has trace 0.
func (e Element) Trace() int {
	if e.field == nil {
		return 0
	}
	return e.field.trace(e.value)
}

func (f *GaloisField) trace(a int) int {
	if f.n == 1 {
		return a
	}
	sum, conj := a, a
	for i := 1; i < f.n; i++ {
		conj = f.frobenius(conj)
		sum = f.add(sum, conj)
	}
	return f.vector(sum)[0]
}

// Gchar returns the additive character ω_p^{tr(e)}.
func (e Element) Gchar() RootOfUnity {
	if e.field == nil {
		return RootOfUnity{}
	}
	return RootOfUnity{p: e.field.p, k: e.Trace()}
}

// Tr is shorthand for e.Trace().
func Tr(e Element) int {
	return e.Trace()
}

// Gchar is shorthand for e.Gchar().
func Gchar(e Element) RootOfUnity {
	return e.Gchar()
}

// Inv is shorthand for e.Inv().
func Inv(e Element) (Element, error) {
	return e.Inv()
}
