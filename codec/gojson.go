package codec

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// GoJSON is a drop-in faster JSON Codec backed by goccy/go-json.
// Output matches JSON for the same V.
type GoJSON[V any] struct{}

var _ Codec[struct{}] = GoJSON[struct{}]{}

func (GoJSON[V]) Encode(v V) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: go-json encode: %w", err)
	}
	return b, nil
}

func (GoJSON[V]) Decode(b []byte) (V, error) {
	var v V
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("codec: go-json decode: %w", err)
	}
	return v, nil
}
