package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML is a Codec backed by gopkg.in/yaml.v3. timecodec values go through
// their TextMarshaler and come out as quoted scalars.
type YAML[V any] struct{}

var _ Codec[struct{}] = YAML[struct{}]{}

func (YAML[V]) Encode(v V) ([]byte, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: yaml encode: %w", err)
	}
	return b, nil
}

func (YAML[V]) Decode(b []byte) (V, error) {
	var v V
	if err := yaml.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("codec: yaml decode: %w", err)
	}
	return v, nil
}
