package document_test

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/markupdoc/xmlformat/document"
)

func TestMapMarshalJSON(t *testing.T) {
	tree := document.MapOf(
		"z", "1",
		"a", document.Sequence{"x", true, nil},
		"m", document.MapOf("k", document.NewMap()),
	)

	b, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := `{"z":"1","a":["x",true,null],"m":{"k":{}}}`, string(b); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestParseJSON(t *testing.T) {
	cases := map[string]struct {
		input  string
		expect document.Value
	}{
		"object order": {
			input:  `{"z": 1, "a": 2}`,
			expect: document.MapOf("z", "1", "a", "2"),
		},
		"number literals": {
			input:  `[1.50, -3, 1e3]`,
			expect: document.Sequence{"1.50", "-3", "1e3"},
		},
		"scalars": {
			input:  `{"s": "x", "t": true, "f": false, "n": null}`,
			expect: document.MapOf("s", "x", "t", true, "f", false, "n", nil),
		},
		"nested": {
			input:  `{"a": [{"b": []}, {}]}`,
			expect: document.MapOf("a", document.Sequence{document.MapOf("b", document.Sequence{}), document.NewMap()}),
		},
		"top level string": {
			input:  `"x"`,
			expect: "x",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := document.ParseJSON([]byte(c.input))
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if !document.Equal(c.expect, actual) {
				t.Errorf("expect %v, got %v", c.expect, actual)
			}
		})
	}
}

func TestParseJSONErrors(t *testing.T) {
	cases := map[string]string{
		"truncated":     `{"a": `,
		"trailing data": `{} {}`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := document.ParseJSON([]byte(input))
			if err == nil {
				t.Fatalf("expect error, got none")
			}
			if e, a := "unable to parse JSON document", err.Error(); !strings.Contains(a, e) {
				t.Errorf("expect error to contain %q, got %q", e, a)
			}
		})
	}
}
