package jsonmapper

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/unkn0wn-root/timecodec"
)

// extension is the type-dispatch table. It implements timecodec.Registrar
// and hands jsoniter a value codec for every registered type.
type extension struct {
	jsoniter.DummyExtension
	codecs map[reflect.Type]timecodec.TypeCodec
	log    timecodec.Logger
}

var _ timecodec.Registrar = (*extension)(nil)

func newExtension(l timecodec.Logger) *extension {
	return &extension{codecs: make(map[reflect.Type]timecodec.TypeCodec), log: l}
}

func (x *extension) RegisterTypeCodec(tc timecodec.TypeCodec) {
	x.codecs[tc.Type] = tc
}

func (x *extension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if vc := x.lookup(typ); vc != nil {
		return vc
	}
	return nil
}

func (x *extension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if vc := x.lookup(typ); vc != nil {
		return vc
	}
	return nil
}

func (x *extension) lookup(typ reflect2.Type) *valueCodec {
	tc, ok := x.codecs[typ.Type1()]
	if !ok {
		return nil
	}
	return &valueCodec{typ: typ, tc: tc, log: x.log}
}

type valueCodec struct {
	typ reflect2.Type
	tc  timecodec.TypeCodec
	log timecodec.Logger
}

func (c *valueCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return reflect.ValueOf(c.typ.UnsafeIndirect(ptr)).IsZero()
}

func (c *valueCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	text, err := c.tc.Encode(c.typ.UnsafeIndirect(ptr))
	if err != nil {
		if st, ok := stream.Attachment.(*callState); ok {
			st.record(err)
		}
		c.log.Debug("encode failed", timecodec.Fields{"kind": string(c.tc.Kind), "err": err.Error()})
		if stream.Error == nil {
			stream.Error = err
		}
		return
	}
	stream.WriteString(string(text))
}

func (c *valueCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.Skip()
		return
	case jsoniter.StringValue:
	default:
		raw := iter.SkipAndReturnBytes()
		c.fail(iter, &timecodec.FormatError{Kind: c.tc.Kind, Input: string(raw), Err: timecodec.ErrNotString})
		return
	}

	text := iter.ReadString()
	if iter.Error != nil {
		return
	}
	v, err := c.tc.Decode(text)
	if err != nil {
		c.fail(iter, err)
		return
	}
	c.typ.UnsafeSet(ptr, reflect2.PtrOf(v))
}

func (c *valueCodec) fail(iter *jsoniter.Iterator, err error) {
	if st, ok := iter.Attachment.(*callState); ok {
		st.record(err)
	}
	c.log.Debug("decode failed", timecodec.Fields{"kind": string(c.tc.Kind), "err": err.Error()})
	iter.ReportError("decode "+string(c.tc.Kind), err.Error())
}
