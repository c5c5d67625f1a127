package timecodec

import (
	"fmt"
	"reflect"
)

// TypeCodec is the (type, encoder, decoder) triple a mapper stores in its
// type-dispatch table. Encode receives a value of exactly Type and returns
// its text; Decode returns a value of exactly Type.
type TypeCodec struct {
	Kind   Kind
	Type   reflect.Type
	Encode func(v any) ([]byte, error)
	Decode func(text string) (any, error)
}

// Registrar is implemented by mappers that dispatch on value type.
type Registrar interface {
	RegisterTypeCodec(TypeCodec)
}

// TypeCodecs returns one TypeCodec per supported type.
func (s *CodecSet) TypeCodecs() []TypeCodec {
	return []TypeCodec{
		typeCodec(KindDate, s.AppendDate, s.ParseDate, Date.IsValid),
		typeCodec(KindTimeOfDay, s.AppendTimeOfDay, s.ParseTimeOfDay, TimeOfDay.IsValid),
		typeCodec(KindDateTime, s.AppendDateTime, s.ParseDateTime, DateTime.IsValid),
		typeCodec(KindOffsetDateTime, s.AppendOffsetDateTime, s.ParseOffsetDateTime, OffsetDateTime.IsValid),
	}
}

// Register attaches every TypeCodec of s to r.
func (s *CodecSet) Register(r Registrar) {
	for _, tc := range s.TypeCodecs() {
		r.RegisterTypeCodec(tc)
		s.log.Debug("registered type codec", Fields{"variant": string(s.variant), "kind": string(tc.Kind), "type": tc.Type.String()})
	}
}

func typeCodec[T any](kind Kind, appendFn func([]byte, T) []byte, parse func(string) (T, error), valid func(T) bool) TypeCodec {
	return TypeCodec{
		Kind: kind,
		Type: reflect.TypeFor[T](),
		Encode: func(v any) ([]byte, error) {
			t, ok := v.(T)
			if !ok {
				return nil, fmt.Errorf("timecodec: %s codec cannot encode %T", kind, v)
			}
			if !valid(t) {
				return nil, &RangeError{Kind: kind, Value: t}
			}
			return appendFn(nil, t), nil
		},
		Decode: func(text string) (any, error) {
			t, err := parse(text)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}
