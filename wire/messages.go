package wire

import (
	"errors"

	"github.com/gogo/protobuf/proto"
)

// ErrMalformed is returned when a message cannot be decoded.
var ErrMalformed = errors.New("malformed message")

// FieldDescriptor is the protobuf message describing a field.
//
//	message FieldDescriptor {
//	  optional uint64 p = 1;
//	  optional uint64 n = 2;
//	  repeated uint64 poly = 3 [packed = true];
//	  repeated uint64 self_dual = 4 [packed = true];
//	}
type FieldDescriptor struct {
	P        *uint64  `protobuf:"varint,1,opt,name=p" json:"p,omitempty"`
	N        *uint64  `protobuf:"varint,2,opt,name=n" json:"n,omitempty"`
	Poly     []uint64 `protobuf:"varint,3,rep,packed,name=poly" json:"poly,omitempty"`
	SelfDual []uint64 `protobuf:"varint,4,rep,packed,name=self_dual,json=selfDual" json:"self_dual,omitempty"`
}

func (m *FieldDescriptor) Reset()         { *m = FieldDescriptor{} }
func (m *FieldDescriptor) String() string { return proto.CompactTextString(m) }
func (*FieldDescriptor) ProtoMessage()    {}

func (m *FieldDescriptor) GetP() uint64 {
	if m != nil && m.P != nil {
		return *m.P
	}
	return 0
}

func (m *FieldDescriptor) GetN() uint64 {
	if m != nil && m.N != nil {
		return *m.N
	}
	return 0
}

// ElementRef is the protobuf message for one element or a vector of
// elements of a field identified by its fingerprint.
//
//	message ElementRef {
//	  optional bytes fingerprint = 1;
//	  repeated uint64 index = 2 [packed = true];
//	}
type ElementRef struct {
	Fingerprint []byte   `protobuf:"bytes,1,opt,name=fingerprint" json:"fingerprint,omitempty"`
	Index       []uint64 `protobuf:"varint,2,rep,packed,name=index" json:"index,omitempty"`
}

func (m *ElementRef) Reset()         { *m = ElementRef{} }
func (m *ElementRef) String() string { return proto.CompactTextString(m) }
func (*ElementRef) ProtoMessage()    {}
