// Package jsonmapper is a JSON mapper with a per-instance type-dispatch table.
// A timecodec.CodecSet registers into it at construction; fields of the
// registered types are then encoded and decoded through the set, not through
// the types' own MarshalJSON methods.
package jsonmapper

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/timecodec"
)

// Error is returned for any Marshal or Unmarshal failure. When the failure
// came from a registered codec, Err is that codec's error (usually a
// *timecodec.FormatError) and Detail carries the mapper's own message.
type Error struct {
	Op     string
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" && e.Detail != e.Err.Error() {
		return fmt.Sprintf("jsonmapper: %s failed: %v (%s)", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("jsonmapper: %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Mapper encodes and decodes JSON. It is safe for concurrent use.
type Mapper struct {
	api jsoniter.API
	log timecodec.Logger
}

type Option func(*Mapper)

// WithLogger sets the logger used for registration and codec failures.
func WithLogger(l timecodec.Logger) Option {
	return func(m *Mapper) {
		if l != nil {
			m.log = l
		}
	}
}

// New builds a Mapper compatible with encoding/json and registers set into it.
// A nil set means timecodec.Default().
func New(set *timecodec.CodecSet, opts ...Option) *Mapper {
	m := &Mapper{log: timecodec.NopLogger{}}
	for _, o := range opts {
		o(m)
	}
	if set == nil {
		set = timecodec.Default()
	}

	ext := newExtension(m.log)
	set.Register(ext)

	api := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	// must happen before the first Marshal/Unmarshal builds the codec cache
	api.RegisterExtension(ext)
	m.api = api

	m.log.Debug("jsonmapper ready", timecodec.Fields{"variant": string(set.Variant()), "types": len(ext.codecs)})
	return m
}

// Marshal returns the JSON encoding of v.
func (m *Mapper) Marshal(v any) ([]byte, error) {
	st := &callState{}
	stream := m.api.BorrowStream(nil)
	defer m.api.ReturnStream(stream)
	stream.Attachment = st

	stream.WriteVal(v)
	if stream.Error != nil {
		return nil, st.wrap("marshal", stream.Error)
	}
	buf := stream.Buffer()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// Unmarshal parses data into v. Trailing non-space bytes are an error.
func (m *Mapper) Unmarshal(data []byte, v any) error {
	st := &callState{}
	iter := m.api.BorrowIterator(data)
	defer m.api.ReturnIterator(iter)
	iter.Attachment = st

	iter.ReadVal(v)
	if iter.Error == nil {
		// WhatIsNext sets io.EOF when only whitespace is left
		if iter.WhatIsNext() != jsoniter.InvalidValue || iter.Error == nil {
			iter.ReportError("Unmarshal", "there are bytes left after unmarshal")
		}
	}
	if iter.Error == nil || iter.Error == io.EOF {
		return nil
	}
	return st.wrap("unmarshal", iter.Error)
}

// callState rides on the stream/iterator Attachment for one call. jsoniter
// rewrites errors as strings when they pass through struct codecs; the
// first codec error is kept here so callers can still errors.As it.
type callState struct {
	cause error
}

func (st *callState) record(err error) {
	if st.cause == nil {
		st.cause = err
	}
}

func (st *callState) wrap(op string, err error) *Error {
	if st.cause != nil {
		return &Error{Op: op, Err: st.cause, Detail: err.Error()}
	}
	return &Error{Op: op, Err: err}
}
