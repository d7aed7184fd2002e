package maybeowned

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Cells are transparent to serialization: the encoded form is exactly the
// contained value, with no trace of the variant. Decoding always produces
// an owned cell — decoded data has no external owner to borrow from.

// MarshalJSON encodes the contained value.
func (m MaybeOwned[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(*m.Get())
}

// UnmarshalJSON decodes into an owned cell.
func (m *MaybeOwned[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Own(v)
	return nil
}

// MarshalYAML encodes the contained value.
func (m MaybeOwned[T]) MarshalYAML() (any, error) {
	return *m.Get(), nil
}

// UnmarshalYAML decodes into an owned cell.
func (m *MaybeOwned[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*m = Own(v)
	return nil
}

// MarshalJSON encodes the contained value.
func (m MaybeOwnedMut[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(*m.Get())
}

// UnmarshalJSON decodes into an owned cell.
func (m *MaybeOwnedMut[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = OwnMut(v)
	return nil
}

// MarshalYAML encodes the contained value.
func (m MaybeOwnedMut[T]) MarshalYAML() (any, error) {
	return *m.Get(), nil
}

// UnmarshalYAML decodes into an owned cell.
func (m *MaybeOwnedMut[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*m = OwnMut(v)
	return nil
}
