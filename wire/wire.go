// Package wire encodes fields and their elements as protobuf messages so
// they can be stored or exchanged between processes.
//
// A field travels as its defining parameters (p, n, polynomial and the
// active self-dual basis, if any). Elements travel as their index together
// with the fingerprint of the field they belong to, so decoding against a
// different field is detected.
package wire

import (
	"bytes"
	"fmt"
	"math"

	"github.com/ppopth/galois/field"

	"github.com/gogo/protobuf/proto"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("wire")

// maxDegree bounds the extension degree accepted from the wire.
const maxDegree = 64

// MarshalField encodes the parameters of f.
func MarshalField(f *field.GaloisField) ([]byte, error) {
	desc := &FieldDescriptor{
		P: proto.Uint64(uint64(f.Characteristic())),
		N: proto.Uint64(uint64(f.Degree())),
	}
	for _, c := range f.Polynomial() {
		desc.Poly = append(desc.Poly, uint64(c))
	}
	for _, e := range f.SelfDualBasis() {
		desc.SelfDual = append(desc.SelfDual, uint64(reduce(e, f.Order()-1)))
	}
	return proto.Marshal(desc)
}

// UnmarshalField rebuilds a field from MarshalField output. opts are applied
// before the encoded self-dual basis.
func UnmarshalField(data []byte, opts ...field.Option) (*field.GaloisField, error) {
	desc := &FieldDescriptor{}
	if err := proto.Unmarshal(data, desc); err != nil {
		return nil, fmt.Errorf("field descriptor: %v: %w", err, ErrMalformed)
	}
	p, n := desc.GetP(), desc.GetN()
	if p > math.MaxInt || n == 0 || n > maxDegree {
		return nil, fmt.Errorf("field parameters p=%d n=%d: %w", p, n, ErrMalformed)
	}

	poly := make([]int, len(desc.Poly))
	for i, c := range desc.Poly {
		if c >= p {
			return nil, fmt.Errorf("coefficient %d not reduced mod %d: %w", c, p, ErrMalformed)
		}
		poly[i] = int(c)
	}
	if len(desc.SelfDual) > 0 {
		sdb := make([]int, len(desc.SelfDual))
		for i, e := range desc.SelfDual {
			if e > math.MaxInt32 {
				return nil, fmt.Errorf("basis exponent %d: %w", e, ErrMalformed)
			}
			sdb[i] = int(e)
		}
		opts = append(opts[:len(opts):len(opts)], field.WithSelfDualBasis(sdb...))
	}

	f, err := field.New(int(p), int(n), poly, opts...)
	if err != nil {
		return nil, err
	}
	log.Debugf("decoded %s", f)
	return f, nil
}

// MarshalElement encodes e as its index in its field.
func MarshalElement(e field.Element) ([]byte, error) {
	return MarshalElements([]field.Element{e})
}

// UnmarshalElement decodes a single element of f.
func UnmarshalElement(f *field.GaloisField, data []byte) (field.Element, error) {
	elems, err := UnmarshalElements(f, data)
	if err != nil {
		return field.Element{}, err
	}
	if len(elems) != 1 {
		return field.Element{}, fmt.Errorf("expected one element, got %d: %w", len(elems), ErrMalformed)
	}
	return elems[0], nil
}

// MarshalElements encodes a vector of elements of one field.
func MarshalElements(elems []field.Element) ([]byte, error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("no elements to encode: %w", ErrMalformed)
	}
	f := elems[0].Field()
	if f == nil {
		return nil, fmt.Errorf("element without field: %w", field.ErrFieldMismatch)
	}
	id := f.Fingerprint()
	ref := &ElementRef{
		Fingerprint: id[:],
		Index:       make([]uint64, len(elems)),
	}
	for i, e := range elems {
		if !f.Equal(e.Field()) {
			return nil, fmt.Errorf("element %d: %w", i, field.ErrFieldMismatch)
		}
		ref.Index[i] = uint64(e.Index())
	}
	return proto.Marshal(ref)
}

// UnmarshalElements decodes a vector of elements of f. The encoded
// fingerprint must match f.
func UnmarshalElements(f *field.GaloisField, data []byte) ([]field.Element, error) {
	ref := &ElementRef{}
	if err := proto.Unmarshal(data, ref); err != nil {
		return nil, fmt.Errorf("element ref: %v: %w", err, ErrMalformed)
	}
	id := f.Fingerprint()
	if !bytes.Equal(ref.Fingerprint, id[:]) {
		log.Warnf("element fingerprint %x does not match %s", ref.Fingerprint, f)
		return nil, fmt.Errorf("decoding into %s: %w", f, field.ErrFieldMismatch)
	}

	out := make([]field.Element, len(ref.Index))
	for i, idx := range ref.Index {
		if idx >= uint64(f.Order()) {
			return nil, fmt.Errorf("element %d: index %d: %w", i, idx, field.ErrIndexOutOfRange)
		}
		e, err := f.At(int(idx))
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func reduce(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
