package document

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strconv"
)

// UnsupportedTypeError is returned by FromInterface when a Go value has no
// document tree representation.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("document: unsupported value type %v", e.Type)
}

// FromInterface converts native Go values into a document tree.
//
// Maps with string keys become *Map with keys in sorted order, since Go maps
// carry no order. Slices and arrays become Sequence. Numbers become their
// decimal string form. Values that are already document tree values are
// returned as is.
func FromInterface(v interface{}) (Value, error) {
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); (k == reflect.Ptr || k == reflect.Interface) && rv.IsNil() {
		return nil, nil
	}

	switch tv := v.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return tv, nil
	case *Map:
		return tv, nil
	case Sequence:
		return tv, nil
	case []interface{}:
		seq := make(Sequence, 0, len(tv))
		for _, e := range tv {
			ev, err := FromInterface(e)
			if err != nil {
				return nil, err
			}
			seq = append(seq, ev)
		}
		return seq, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			ev, err := FromInterface(tv[k])
			if err != nil {
				return nil, err
			}
			m.Set(k, ev)
		}
		return m, nil
	case int:
		return strconv.FormatInt(int64(tv), 10), nil
	case int8:
		return strconv.FormatInt(int64(tv), 10), nil
	case int16:
		return strconv.FormatInt(int64(tv), 10), nil
	case int32:
		return strconv.FormatInt(int64(tv), 10), nil
	case int64:
		return strconv.FormatInt(tv, 10), nil
	case uint:
		return strconv.FormatUint(uint64(tv), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(tv), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(tv), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(tv), 10), nil
	case uint64:
		return strconv.FormatUint(tv, 10), nil
	case float32:
		return strconv.FormatFloat(float64(tv), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(tv, 'g', -1, 64), nil
	case *big.Int:
		return tv.Text(10), nil
	case *big.Float:
		return tv.Text('g', -1), nil
	case fmt.Stringer:
		return tv.String(), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Slice, reflect.Array:
		seq := make(Sequence, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			ev, err := FromInterface(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			seq = append(seq, ev)
		}
		return seq, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			ev, err := FromInterface(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, err
			}
			m.Set(k, ev)
		}
		return m, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return FromInterface(rv.Elem().Interface())
	}

	return nil, &UnsupportedTypeError{Type: reflect.TypeOf(v)}
}

// ToInterface converts a document tree into plain Go values: *Map becomes
// map[string]interface{} and Sequence becomes []interface{}. Key order is
// lost.
func ToInterface(v Value) interface{} {
	switch tv := v.(type) {
	case *Map:
		out := make(map[string]interface{}, tv.Len())
		tv.Range(func(k string, ev Value) bool {
			out[k] = ToInterface(ev)
			return true
		})
		return out
	case Sequence:
		out := make([]interface{}, len(tv))
		for i, ev := range tv {
			out[i] = ToInterface(ev)
		}
		return out
	default:
		return tv
	}
}
