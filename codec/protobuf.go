package codec

import (
	"encoding"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Protobuf is a Codec for any generated message type.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

// ProtoText carries a text-marshaled value in a google.protobuf.StringValue,
// e.g. ProtoText[timecodec.Date, *timecodec.Date]{}. Peers without the Go
// type still see the ISO-8601 string.
type ProtoText[V any, PV interface {
	*V
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}] struct{}

var stringValues = NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })

func (ProtoText[V, PV]) Encode(v V) ([]byte, error) {
	text, err := PV(&v).MarshalText()
	if err != nil {
		return nil, fmt.Errorf("codec: proto text encode: %w", err)
	}
	return stringValues.Encode(wrapperspb.String(string(text)))
}

func (ProtoText[V, PV]) Decode(b []byte) (V, error) {
	var v V
	sv, err := stringValues.Decode(b)
	if err != nil {
		return v, fmt.Errorf("codec: proto text decode: %w", err)
	}
	if err := PV(&v).UnmarshalText([]byte(sv.GetValue())); err != nil {
		return v, fmt.Errorf("codec: proto text decode: %w", err)
	}
	return v, nil
}
