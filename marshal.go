package timecodec

import (
	"encoding"
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Marshaling methods for encoding/json, encoding.Text*, cbor and msgpack.
// All of them go through Default(). A JSON/CBOR null leaves the value as is.
// A msgpack nil zeroes it: msgpack resets the field before DecodeMsgpack runs.

var (
	_ json.Marshaler           = Date{}
	_ json.Unmarshaler         = (*Date)(nil)
	_ encoding.TextMarshaler   = OffsetDateTime{}
	_ encoding.TextUnmarshaler = (*OffsetDateTime)(nil)
	_ cbor.Marshaler           = DateTime{}
	_ cbor.Unmarshaler         = (*DateTime)(nil)
	_ msgpack.CustomEncoder    = TimeOfDay{}
	_ msgpack.CustomDecoder    = (*TimeOfDay)(nil)
)

func (d Date) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, &RangeError{Kind: KindDate, Value: d}
	}
	return Default().AppendDate(nil, d), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	v, err := Default().ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) MarshalJSON() ([]byte, error)              { return marshalJSON(d) }
func (d *Date) UnmarshalJSON(b []byte) error             { return unmarshalJSON(KindDate, b, d) }
func (d Date) MarshalCBOR() ([]byte, error)              { return marshalCBOR(d) }
func (d *Date) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(KindDate, b, d) }
func (d Date) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, d) }
func (d *Date) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(KindDate, dec, d) }

func (t TimeOfDay) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, &RangeError{Kind: KindTimeOfDay, Value: t}
	}
	return Default().AppendTimeOfDay(nil, t), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := Default().ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error)              { return marshalJSON(t) }
func (t *TimeOfDay) UnmarshalJSON(b []byte) error             { return unmarshalJSON(KindTimeOfDay, b, t) }
func (t TimeOfDay) MarshalCBOR() ([]byte, error)              { return marshalCBOR(t) }
func (t *TimeOfDay) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(KindTimeOfDay, b, t) }
func (t TimeOfDay) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, t) }
func (t *TimeOfDay) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(KindTimeOfDay, dec, t) }

func (dt DateTime) MarshalText() ([]byte, error) {
	if !dt.IsValid() {
		return nil, &RangeError{Kind: KindDateTime, Value: dt}
	}
	return Default().AppendDateTime(nil, dt), nil
}

func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := Default().ParseDateTime(string(b))
	if err != nil {
		return err
	}
	*dt = v
	return nil
}

func (dt DateTime) MarshalJSON() ([]byte, error)              { return marshalJSON(dt) }
func (dt *DateTime) UnmarshalJSON(b []byte) error             { return unmarshalJSON(KindDateTime, b, dt) }
func (dt DateTime) MarshalCBOR() ([]byte, error)              { return marshalCBOR(dt) }
func (dt *DateTime) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(KindDateTime, b, dt) }
func (dt DateTime) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, dt) }
func (dt *DateTime) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(KindDateTime, dec, dt) }

func (o OffsetDateTime) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, &RangeError{Kind: KindOffsetDateTime, Value: o}
	}
	return Default().AppendOffsetDateTime(nil, o), nil
}

func (o *OffsetDateTime) UnmarshalText(b []byte) error {
	v, err := Default().ParseOffsetDateTime(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o OffsetDateTime) MarshalJSON() ([]byte, error)  { return marshalJSON(o) }
func (o *OffsetDateTime) UnmarshalJSON(b []byte) error { return unmarshalJSON(KindOffsetDateTime, b, o) }
func (o OffsetDateTime) MarshalCBOR() ([]byte, error)  { return marshalCBOR(o) }
func (o *OffsetDateTime) UnmarshalCBOR(b []byte) error { return unmarshalCBOR(KindOffsetDateTime, b, o) }
func (o OffsetDateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpack(enc, o)
}
func (o *OffsetDateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpack(KindOffsetDateTime, dec, o)
}

func marshalJSON(m encoding.TextMarshaler) ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(text)+2)
	out = append(out, '"')
	out = append(out, text...)
	return append(out, '"'), nil
}

func unmarshalJSON(kind Kind, data []byte, u encoding.TextUnmarshaler) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &FormatError{Kind: kind, Input: string(data), Err: ErrNotString}
	}
	return u.UnmarshalText([]byte(s))
}

func marshalCBOR(m encoding.TextMarshaler) ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(string(text))
}

func unmarshalCBOR(kind Kind, data []byte, u encoding.TextUnmarshaler) error {
	// 0xf6 null, 0xf7 undefined
	if len(data) == 1 && (data[0] == 0xf6 || data[0] == 0xf7) {
		return nil
	}
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return &FormatError{Kind: kind, Input: string(data), Err: ErrNotString}
	}
	return u.UnmarshalText([]byte(s))
}

func encodeMsgpack(enc *msgpack.Encoder, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	return enc.EncodeString(string(text))
}

func decodeMsgpack(kind Kind, dec *msgpack.Decoder, u encoding.TextUnmarshaler) error {
	s, err := dec.DecodeString()
	if err != nil {
		return &FormatError{Kind: kind, Err: err}
	}
	return u.UnmarshalText([]byte(s))
}
