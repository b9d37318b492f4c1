package testing

import (
	"testing"

	"github.com/markupdoc/xmlformat/document"
)

func TestDocumentEqual(t *testing.T) {
	cases := map[string]struct {
		X, Y  document.Value
		Equal bool
	}{
		"equal": {
			X:     document.MapOf("a", "x", "b", document.Sequence{true, nil}),
			Y:     document.MapOf("a", "x", "b", document.Sequence{true, nil}),
			Equal: true,
		},
		"key order differs": {
			X: document.MapOf("a", "x", "b", "y"),
			Y: document.MapOf("b", "y", "a", "x"),
		},
		"scalar kind differs": {
			X: document.MapOf("a", "true"),
			Y: document.MapOf("a", true),
		},
		"nested": {
			X: document.MapOf("a", document.MapOf("b", "1")),
			Y: document.MapOf("a", document.MapOf("b", "2")),
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := DocumentEqual(c.X, c.Y)
			if c.Equal {
				if err != nil {
					t.Fatalf("expect documents to be equal, %v", err)
				}
			} else if err == nil {
				t.Fatalf("expect documents not to be equal")
			}
		})
	}
}

func TestXMLEqual(t *testing.T) {
	cases := map[string]struct {
		X, Y  []byte
		Equal bool
	}{
		"attribute order and indentation": {
			X:     []byte(`<item b="2" a="1"><name>Bob</name></item>`),
			Y:     []byte("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<item a=\"1\" b=\"2\">\n    <name>Bob</name>\n</item>\n"),
			Equal: true,
		},
		"element order": {
			X: []byte(`<item><a/><b/></item>`),
			Y: []byte(`<item><b/><a/></item>`),
		},
		"text": {
			X: []byte(`<item>a</item>`),
			Y: []byte(`<item>b</item>`),
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := XMLEqual(c.X, c.Y)
			if c.Equal {
				if err != nil {
					t.Fatalf("expect XML to be equal, %v", err)
				}
			} else if err == nil {
				t.Fatalf("expect XML not to be equal")
			}
		})
	}
}
