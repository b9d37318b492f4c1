package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/markupdoc/xmlformat/document"
)

func TestMap(t *testing.T) {
	m := document.NewMap()
	m.Set("b", "1")
	m.Set("a", nil)
	m.Set("c", true)
	m.Set("b", "2")

	if diff := cmp.Diff([]string{"b", "a", "c"}, m.Keys()); len(diff) != 0 {
		t.Errorf("expect keys in insertion order (-expect +actual):\n%s", diff)
	}
	if v, ok := m.Get("b"); !ok || v != "2" {
		t.Errorf("expect b to be 2, got %v %v", v, ok)
	}
	if !m.Has("a") {
		t.Errorf("expect a with nil value to exist")
	}
	if _, ok := m.Get("missing"); ok {
		t.Errorf("expect missing key to not exist")
	}

	m.Delete("a")
	m.Delete("missing")
	if diff := cmp.Diff([]string{"b", "c"}, m.Keys()); len(diff) != 0 {
		t.Errorf("expect keys after delete (-expect +actual):\n%s", diff)
	}
	if e, a := 2, m.Len(); e != a {
		t.Errorf("expect length %v, got %v", e, a)
	}

	var visited []string
	m.Range(func(k string, _ document.Value) bool {
		visited = append(visited, k)
		return false
	})
	if diff := cmp.Diff([]string{"b"}, visited); len(diff) != 0 {
		t.Errorf("expect range to stop early (-expect +actual):\n%s", diff)
	}
}

func TestZeroMap(t *testing.T) {
	var m document.Map
	m.Set("a", "1")
	if v, _ := m.Get("a"); v != "1" {
		t.Errorf("expect 1, got %v", v)
	}

	var nilMap *document.Map
	if e, a := 0, nilMap.Len(); e != a {
		t.Errorf("expect length %v, got %v", e, a)
	}
	if nilMap.Has("a") {
		t.Errorf("expect nil map to have no keys")
	}
}

func TestMapNextIndex(t *testing.T) {
	cases := map[string]struct {
		keys   []string
		expect int
	}{
		"empty": {
			expect: 0,
		},
		"named keys only": {
			keys:   []string{"a", "b"},
			expect: 0,
		},
		"index keys": {
			keys:   []string{"0", "5", "x", "2"},
			expect: 6,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			m := document.NewMap()
			for _, k := range c.keys {
				m.Set(k, "v")
			}
			if e, a := c.expect, m.NextIndex(); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestMapOfPanics(t *testing.T) {
	cases := map[string][]interface{}{
		"odd arguments":  {"a", "1", "b"},
		"non string key": {1, "a"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expect panic, got none")
				}
			}()
			document.MapOf(args...)
		})
	}
}

func TestEqual(t *testing.T) {
	cases := map[string]struct {
		a, b   document.Value
		expect bool
	}{
		"nil": {
			expect: true,
		},
		"nil and empty string": {
			a: nil, b: "",
		},
		"bools": {
			a: true, b: true, expect: true,
		},
		"bool and string": {
			a: true, b: "true",
		},
		"sequences": {
			a:      document.Sequence{"a", document.Sequence{nil}},
			b:      document.Sequence{"a", document.Sequence{nil}},
			expect: true,
		},
		"sequence lengths": {
			a: document.Sequence{"a"},
			b: document.Sequence{"a", "b"},
		},
		"maps": {
			a:      document.MapOf("a", "1", "b", document.MapOf("c", nil)),
			b:      document.MapOf("a", "1", "b", document.MapOf("c", nil)),
			expect: true,
		},
		"map key order": {
			a: document.MapOf("a", "1", "b", "2"),
			b: document.MapOf("b", "2", "a", "1"),
		},
		"map values": {
			a: document.MapOf("a", "1"),
			b: document.MapOf("a", "2"),
		},
		"empty maps": {
			a:      document.NewMap(),
			b:      &document.Map{},
			expect: true,
		},
		"map and sequence": {
			a: document.NewMap(),
			b: document.Sequence{},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.expect, document.Equal(c.a, c.b); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
			if e, a := c.expect, document.Equal(c.b, c.a); e != a {
				t.Errorf("expect %v reversed, got %v", e, a)
			}
		})
	}
}

func TestMapEqualWithCmp(t *testing.T) {
	a := document.MapOf("x", document.Sequence{"1", document.MapOf("y", true)})
	b := document.MapOf("x", document.Sequence{"1", document.MapOf("y", true)})
	if diff := cmp.Diff(a, b); len(diff) != 0 {
		t.Errorf("expect maps equal (-a +b):\n%s", diff)
	}
}

func TestIndex(t *testing.T) {
	cases := map[string]struct {
		expect   int
		expectOK bool
	}{
		"0":                    {expect: 0, expectOK: true},
		"12":                   {expect: 12, expectOK: true},
		"007":                  {expect: 7, expectOK: true},
		"":                     {},
		"-1":                   {},
		"1a":                   {},
		" 1":                   {},
		"99999999999999999999": {},
	}

	for key, c := range cases {
		t.Run(key, func(t *testing.T) {
			i, ok := document.Index(key)
			if e, a := c.expectOK, ok; e != a {
				t.Fatalf("expect ok %v, got %v", e, a)
			}
			if e, a := c.expect, i; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestIsCollection(t *testing.T) {
	cases := map[string]struct {
		value  document.Value
		expect bool
	}{
		"nil":      {},
		"string":   {value: "a"},
		"bool":     {value: false},
		"sequence": {value: document.Sequence{}, expect: true},
		"map":      {value: document.NewMap(), expect: true},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.expect, document.IsCollection(c.value); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}
