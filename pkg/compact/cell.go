package compact

import "github.com/rustonaut/maybeowned"

// MarshalCell encodes the contained value of a read cell into a framed
// record. The variant is not part of the encoding.
func MarshalCell[T any](m *maybeowned.MaybeOwned[T]) ([]byte, error) {
	payload, err := Marshal(*m.Get())
	if err != nil {
		return nil, err
	}
	return EncodeFrame(payload), nil
}

// UnmarshalCell decodes a framed record into an owned read cell.
func UnmarshalCell[T any](data []byte) (maybeowned.MaybeOwned[T], error) {
	payload, err := DecodeFrame(data)
	if err != nil {
		return maybeowned.MaybeOwned[T]{}, err
	}
	var v T
	if err := Unmarshal(payload, &v); err != nil {
		return maybeowned.MaybeOwned[T]{}, err
	}
	return maybeowned.Own(v), nil
}

// MarshalCellMut encodes the contained value of a mutable cell.
func MarshalCellMut[T any](m *maybeowned.MaybeOwnedMut[T]) ([]byte, error) {
	payload, err := Marshal(*m.Get())
	if err != nil {
		return nil, err
	}
	return EncodeFrame(payload), nil
}

// UnmarshalCellMut decodes a framed record into an owned mutable cell.
func UnmarshalCellMut[T any](data []byte) (maybeowned.MaybeOwnedMut[T], error) {
	payload, err := DecodeFrame(data)
	if err != nil {
		return maybeowned.MaybeOwnedMut[T]{}, err
	}
	var v T
	if err := Unmarshal(payload, &v); err != nil {
		return maybeowned.MaybeOwnedMut[T]{}, err
	}
	return maybeowned.OwnMut(v), nil
}
