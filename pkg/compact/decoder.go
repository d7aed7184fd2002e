package compact

import (
	"reflect"

	"github.com/rustonaut/maybeowned/internal/common"
)

// Unmarshal decodes data into dst, which must be a non-nil pointer to a
// type Marshal supports. The whole buffer must be consumed.
func Unmarshal(data []byte, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return ErrNotPointer
	}
	n, err := readValue(data, v.Elem())
	if err != nil {
		return err
	}
	if n != len(data) {
		return ErrBadFrame
	}
	return nil
}

func readValue(b []byte, v reflect.Value) (int, error) {
	k := v.Kind()
	switch {
	case common.IsFixedKind(k):
		size := common.FixedSize(k)
		if len(b) < size {
			return 0, ErrShortBuffer
		}
		common.SetFixed(v, b[:size], k)
		return size, nil

	case k == reflect.String:
		length, n := common.ReadVarUint(b)
		if n == 0 || uint64(len(b)-n) < length {
			return 0, ErrShortBuffer
		}
		v.SetString(string(b[n : n+int(length)]))
		return n + int(length), nil

	case k == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8:
		length, n := common.ReadVarUint(b)
		if n == 0 || uint64(len(b)-n) < length {
			return 0, ErrShortBuffer
		}
		// copy: the decoded value must not alias the input buffer
		v.SetBytes(append([]byte(nil), b[n:n+int(length)]...))
		return n + int(length), nil

	case k == reflect.Struct:
		idx := exportedFields(v.Type())
		count, n := common.ReadVarUint(b)
		if n == 0 {
			return 0, ErrShortBuffer
		}
		if count != uint64(len(idx)) {
			return 0, ErrBadFrame
		}
		total := n
		for _, i := range idx {
			used, err := readValue(b[total:], v.Field(i))
			if err != nil {
				return 0, err
			}
			total += used
		}
		return total, nil
	}
	return 0, ErrUnsupported
}
