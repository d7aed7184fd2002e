// Package compact is a small binary codec for cell payloads: fixed-size
// primitives, strings, byte slices and flat structs of those, framed with a
// CRC32 check. Like the text bridges it encodes only the contained value,
// and decoding always yields an owned cell.
package compact

import (
	"errors"
	"reflect"

	"github.com/rustonaut/maybeowned/internal/common"
)

var (
	ErrUnsupported = errors.New("compact: unsupported type")
	ErrNotPointer  = errors.New("compact: expected non-nil pointer")
	ErrShortBuffer = errors.New("compact: short buffer")
	ErrBadFrame    = errors.New("compact: malformed frame")
	ErrChecksum    = errors.New("compact: checksum mismatch")
)

// Marshal encodes val. Supported: sized ints/uints, floats, bool, string,
// []byte, and structs whose exported fields are of those types. Pointers
// are dereferenced first.
func Marshal(val any) ([]byte, error) {
	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, ErrNotPointer
		}
		v = v.Elem()
	}
	return appendValue(nil, v)
}

func appendValue(buf []byte, v reflect.Value) ([]byte, error) {
	k := v.Kind()
	switch {
	case common.IsFixedKind(k):
		return common.AppendFixed(buf, v), nil

	case k == reflect.String:
		s := v.String()
		buf = common.AppendVarUint(buf, uint64(len(s)))
		return append(buf, s...), nil

	case k == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8:
		b := v.Bytes()
		buf = common.AppendVarUint(buf, uint64(len(b)))
		return append(buf, b...), nil

	case k == reflect.Struct:
		t := v.Type()
		idx := exportedFields(t)
		buf = common.AppendVarUint(buf, uint64(len(idx)))
		var err error
		for _, i := range idx {
			buf, err = appendValue(buf, v.Field(i))
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	}
	return nil, ErrUnsupported
}

func exportedFields(t reflect.Type) []int {
	idx := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" && !sf.Anonymous {
			continue // skip unexported
		}
		idx = append(idx, i)
	}
	return idx
}
