package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ppopth/galois/field"

	"github.com/gogo/protobuf/proto"
)

func gf8(t *testing.T, opts ...field.Option) *field.GaloisField {
	t.Helper()
	f, err := field.NewExtensionField(2, 3, []int{1, 1, 0, 1}, opts...)
	if err != nil {
		t.Fatalf("NewExtensionField failed: %v", err)
	}
	return f
}

func TestMarshalFieldEncoding(t *testing.T) {
	data, err := MarshalField(gf8(t))
	if err != nil {
		t.Fatal(err)
	}
	// p=2, n=3, packed poly [1 1 0 1]
	want := []byte{0x08, 0x02, 0x10, 0x03, 0x1a, 0x04, 0x01, 0x01, 0x00, 0x01}
	if !bytes.Equal(data, want) {
		t.Errorf("MarshalField = %x, want %x", data, want)
	}

	data, err = MarshalField(gf8(t, field.WithSelfDualBasis(3, 5, 6)))
	if err != nil {
		t.Fatal(err)
	}
	want = append(want, 0x22, 0x03, 0x03, 0x05, 0x06)
	if !bytes.Equal(data, want) {
		t.Errorf("MarshalField with self-dual basis = %x, want %x", data, want)
	}

	prime, err := field.NewPrimeField(7)
	if err != nil {
		t.Fatal(err)
	}
	data, err = MarshalField(prime)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x08, 0x07, 0x10, 0x01}; !bytes.Equal(data, want) {
		t.Errorf("MarshalField(GF(7)) = %x, want %x", data, want)
	}
}

func TestFieldRoundTrip(t *testing.T) {
	for _, pr := range field.Presets {
		t.Run(pr.Name, func(t *testing.T) {
			var opts []field.Option
			if pr.SelfDual != nil {
				opts = append(opts, field.WithSelfDualBasis(pr.SelfDual...))
			}
			f, err := pr.Build(opts...)
			if err != nil {
				t.Fatal(err)
			}
			data, err := MarshalField(f)
			if err != nil {
				t.Fatal(err)
			}
			g, err := UnmarshalField(data)
			if err != nil {
				t.Fatalf("UnmarshalField failed: %v", err)
			}
			if !f.Equal(g) || f.Fingerprint() != g.Fingerprint() {
				t.Errorf("decoded %s, want %s", g, f)
			}
			if f.IsSelfDual() != g.IsSelfDual() {
				t.Errorf("basis not preserved: %s vs %s", g.Basis(), f.Basis())
			}
			a, _ := f.At(f.Order() / 2)
			b, _ := g.At(f.Order() / 2)
			if !bytes.Equal(intsToBytes(a.Coordinates()), intsToBytes(b.Coordinates())) {
				t.Errorf("coordinates differ: %v vs %v", a.Coordinates(), b.Coordinates())
			}
		})
	}
}

func intsToBytes(v []int) []byte {
	out := make([]byte, len(v))
	for i, c := range v {
		out[i] = byte(c)
	}
	return out
}

func TestUnmarshalFieldRejects(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want error
	}{
		{"truncated varint", []byte{0x08, 0x80}, ErrMalformed},
		{"truncated packed", []byte{0x08, 0x02, 0x10, 0x03, 0x1a, 0x09, 0x01}, ErrMalformed},
		{"zero degree", []byte{0x08, 0x02}, ErrMalformed},
		{"unknown fields only", []byte{0x48, 0x2a}, ErrMalformed},
		{"unterminated group", []byte{0x0b}, ErrMalformed},
		{"bad wire type", []byte{0x0f}, ErrMalformed},
		{"unreduced coefficient", []byte{0x08, 0x02, 0x10, 0x02, 0x1a, 0x03, 0x01, 0x03, 0x01}, ErrMalformed},
		{"composite characteristic", []byte{0x08, 0x04, 0x10, 0x01}, field.ErrInvalidParameters},
		{"reducible polynomial", []byte{0x08, 0x02, 0x10, 0x02, 0x1a, 0x03, 0x01, 0x00, 0x01}, field.ErrInvalidPolynomial},
		{"bad self-dual basis", []byte{0x08, 0x02, 0x10, 0x03, 0x1a, 0x04, 0x01, 0x01, 0x00, 0x01, 0x22, 0x03, 0x01, 0x02, 0x03}, field.ErrInvalidBasis},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UnmarshalField(tc.data); !errors.Is(err, tc.want) {
				t.Errorf("UnmarshalField(%x) = %v, want %v", tc.data, err, tc.want)
			}
		})
	}
}

func TestUnmarshalFieldCompatibility(t *testing.T) {
	// Unknown varint, fixed32 and bytes fields are skipped; poly is sent unpacked.
	data := []byte{
		0x48, 0x2a, // field 9 varint
		0x08, 0x02,
		0x55, 0x01, 0x02, 0x03, 0x04, // field 10 fixed32
		0x10, 0x03,
		0x18, 0x01, 0x18, 0x01, 0x18, 0x00, 0x18, 0x01, // unpacked poly
		0x5a, 0x02, 0xff, 0xff, // field 11 bytes
	}
	f, err := UnmarshalField(data)
	if err != nil {
		t.Fatalf("UnmarshalField failed: %v", err)
	}
	if !f.Equal(gf8(t)) {
		t.Errorf("decoded %s, want GF(2^3)", f)
	}
}

func TestElementRoundTrip(t *testing.T) {
	f := gf8(t)
	data, err := MarshalField(f)
	if err != nil {
		t.Fatal(err)
	}
	g, err := UnmarshalField(data)
	if err != nil {
		t.Fatal(err)
	}

	for _, a := range f.Elements() {
		enc, err := MarshalElement(a)
		if err != nil {
			t.Fatal(err)
		}
		// Decoding against an independently built copy of the field
		b, err := UnmarshalElement(g, enc)
		if err != nil {
			t.Fatalf("UnmarshalElement failed: %v", err)
		}
		if !a.Equal(b) {
			t.Errorf("decoded %v, want %v", b, a)
		}
	}
}

func TestMarshalElementEncoding(t *testing.T) {
	f := gf8(t)
	a, _ := f.At(5)
	data, err := MarshalElement(a)
	if err != nil {
		t.Fatal(err)
	}
	id := f.Fingerprint()
	want := append([]byte{0x0a, 0x20}, id[:]...)
	want = append(want, 0x12, 0x01, 0x05)
	if !bytes.Equal(data, want) {
		t.Errorf("MarshalElement = %x, want %x", data, want)
	}
}

func TestElementsVector(t *testing.T) {
	f := gf8(t)
	elems := f.Elements()
	data, err := MarshalElements(elems)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalElements(f, data)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(elems) {
		t.Fatalf("decoded %d elements, want %d", len(got), len(elems))
	}
	for i := range elems {
		if !got[i].Equal(elems[i]) {
			t.Errorf("element %d: got %v, want %v", i, got[i], elems[i])
		}
	}

	if _, err := UnmarshalElement(f, data); !errors.Is(err, ErrMalformed) {
		t.Errorf("vector decoded as single element: %v", err)
	}
	if _, err := MarshalElements(nil); !errors.Is(err, ErrMalformed) {
		t.Errorf("empty vector should fail with ErrMalformed, got %v", err)
	}
}

func TestElementFieldMismatch(t *testing.T) {
	f := gf8(t)
	g, err := field.NewExtensionField(2, 3, []int{1, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}

	a, _ := f.At(3)
	data, err := MarshalElement(a)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := UnmarshalElement(g, data); !errors.Is(err, field.ErrFieldMismatch) {
		t.Errorf("decoding into another field should fail with ErrFieldMismatch, got %v", err)
	}

	b, _ := g.At(3)
	if _, err := MarshalElements([]field.Element{a, b}); !errors.Is(err, field.ErrFieldMismatch) {
		t.Errorf("mixed vector should fail with ErrFieldMismatch, got %v", err)
	}
	if _, err := MarshalElement(field.Element{}); !errors.Is(err, field.ErrFieldMismatch) {
		t.Errorf("zero Element should fail with ErrFieldMismatch, got %v", err)
	}
}

func TestElementIndexOutOfRange(t *testing.T) {
	f := gf8(t)
	id := f.Fingerprint()
	ref := &ElementRef{Fingerprint: id[:], Index: []uint64{8}}
	data, err := proto.Marshal(ref)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := UnmarshalElement(f, data); !errors.Is(err, field.ErrIndexOutOfRange) {
		t.Errorf("index 8 in GF(8) should fail with ErrIndexOutOfRange, got %v", err)
	}
}

func TestLargePrimeRoundTrip(t *testing.T) {
	const p = 9223372036854775783 // largest prime below 2^63
	f, err := field.NewPrimeField(p)
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalField(f)
	if err != nil {
		t.Fatal(err)
	}
	g, err := UnmarshalField(data)
	if err != nil {
		t.Fatalf("UnmarshalField failed: %v", err)
	}
	if !f.Equal(g) || g.Characteristic() != p {
		t.Fatalf("decoded %s, want %s", g, f)
	}

	a := f.FromInt(-1)
	enc, err := MarshalElement(a)
	if err != nil {
		t.Fatal(err)
	}
	b, err := UnmarshalElement(g, enc)
	if err != nil {
		t.Fatalf("UnmarshalElement failed: %v", err)
	}
	if b.Index() != p-1 {
		t.Errorf("decoded index %d, want %d", b.Index(), p-1)
	}
	sum, err := b.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	if want := g.FromInt(-2); !sum.Equal(want) {
		t.Errorf("(p-1) + (p-1) = %v, want %v", sum, want)
	}
}

func TestMessageString(t *testing.T) {
	desc := &FieldDescriptor{P: proto.Uint64(2), N: proto.Uint64(3), Poly: []uint64{1, 1, 0, 1}}
	if got := desc.String(); got == "" {
		t.Errorf("empty text form")
	}
	data, err := proto.Marshal(desc)
	if err != nil {
		t.Fatal(err)
	}
	var back FieldDescriptor
	if err := proto.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(desc, &back) {
		t.Errorf("decoded %v, want %v", &back, desc)
	}
	if (*FieldDescriptor)(nil).GetP() != 0 {
		t.Errorf("nil descriptor GetP should be 0")
	}
}
