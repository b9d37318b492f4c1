package document_test

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/markupdoc/xmlformat/document"
)

func TestParseYAML(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect document.Value
	}{
		"mapping order": {
			input:  "z: 1\na: two\n",
			expect: document.MapOf("z", "1", "a", "two"),
		},
		"scalars": {
			input:  "t: true\nf: false\nn: ~\ne:\nq: \"true\"\n",
			expect: document.MapOf("t", true, "f", false, "n", nil, "e", nil, "q", "true"),
		},
		"sequence": {
			input:  "- a\n- [1, 2]\n- {k: v}\n",
			expect: document.Sequence{"a", document.Sequence{"1", "2"}, document.MapOf("k", "v")},
		},
		"alias": {
			input:  "base: &b {k: v}\ncopy: *b\n",
			expect: document.MapOf("base", document.MapOf("k", "v"), "copy", document.MapOf("k", "v")),
		},
		"json input": {
			input:  `{"b": [1, null], "a": "x"}`,
			expect: document.MapOf("b", document.Sequence{"1", nil}, "a", "x"),
		},
		"empty": {
			input:  "",
			expect: nil,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := document.ParseYAML([]byte(c.input))
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if !document.Equal(c.expect, actual) {
				t.Errorf("expect %v, got %v", c.expect, actual)
			}
		})
	}
}

func TestParseYAMLErrors(t *testing.T) {
	cases := map[string]string{
		"invalid":         "a: [",
		"collection keys": "? [a]\n: b\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := document.ParseYAML([]byte(input)); err == nil {
				t.Errorf("expect error, got none")
			}
		})
	}
}

func TestMapMarshalYAML(t *testing.T) {
	tree := document.MapOf(
		"z", "1",
		"a", document.Sequence{"x", true, nil},
		"m", document.MapOf("k", "v"),
	)

	b, err := yaml.Marshal(tree)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	out := string(b)
	if z, a, m := strings.Index(out, "z:"), strings.Index(out, "a:"), strings.Index(out, "m:"); !(z < a && a < m) {
		t.Errorf("expect keys in insertion order, got\n%s", out)
	}

	actual, err := document.ParseYAML(b)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if !document.Equal(tree, actual) {
		t.Errorf("expect %v, got %v", tree, actual)
	}
}
