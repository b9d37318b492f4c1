package document

import (
	"fmt"
	"strconv"
)

// Value is a document tree value. See the package documentation for the set
// of concrete types a Value may hold.
type Value = interface{}

// Sequence is an ordered list of document tree values.
type Sequence []Value

// Map is an insertion ordered mapping from string keys to document tree
// values. The zero value is an empty map ready to use.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// MapOf builds a Map from alternating key, value arguments. It panics if a
// key is not a string or a value is missing. Intended for literals in code
// and tests.
func MapOf(kv ...interface{}) *Map {
	if len(kv)%2 != 0 {
		panic("document: MapOf called with odd number of arguments")
	}

	m := &Map{}
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("document: MapOf key %d is %T, not string", i/2, kv[i]))
		}
		m.Set(k, kv[i+1])
	}
	return m
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the map keys in insertion order. The returned slice must not
// be modified.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Get returns the value stored for key, and whether the key is present. A
// present key may hold a nil value.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has returns whether key is present in the map.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores v for key. Setting an existing key replaces the value and keeps
// the key's original position.
func (m *Map) Set(key string, v Value) {
	if m.values == nil {
		m.values = map[string]Value{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key from the map if present.
func (m *Map) Delete(key string) {
	if m == nil || m.values == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// NextIndex returns the next free array style key: one past the largest
// non-negative integer key in the map, or 0 if there is none.
func (m *Map) NextIndex() int {
	next := 0
	m.Range(func(k string, _ Value) bool {
		if i, ok := Index(k); ok && i >= next {
			next = i + 1
		}
		return true
	})
	return next
}

// Equal reports whether m and o hold the same keys in the same order with
// equal values. It lets go-cmp compare trees directly.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i, k := range m.Keys() {
		if o.keys[i] != k {
			return false
		}
		if !Equal(m.values[k], o.values[k]) {
			return false
		}
	}
	return true
}

// String renders the map for diagnostics.
func (m *Map) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid document map: %v>", err)
	}
	return string(b)
}

// Equal reports whether two document tree values are deeply equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case Sequence:
		bv, ok := b.(Sequence)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

// Index reports whether key is an array style key, a non-negative decimal
// integer, and returns its value.
func Index(key string) (int, bool) {
	if len(key) == 0 {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return i, true
}

// IsCollection reports whether v is a Sequence or *Map.
func IsCollection(v Value) bool {
	switch v.(type) {
	case Sequence, *Map:
		return true
	}
	return false
}
