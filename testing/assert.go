// Package testing provides assertion helpers for document trees and XML
// documents.
package testing

import (
	"bytes"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/markupdoc/xmlformat/document"
	"github.com/markupdoc/xmlformat/testing/xml"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// DocumentEqual compares two document trees, including map key order.
// Returns an error describing the difference if the trees are not equal.
func DocumentEqual(expect, actual document.Value) error {
	if document.Equal(expect, actual) {
		return nil
	}

	if diff := cmp.Diff(render(expect), render(actual)); len(diff) != 0 {
		return fmt.Errorf("document mismatch (-expect +actual):\n%s", diff)
	}
	return fmt.Errorf("document mismatch, expect %s, got %s", render(expect), render(actual))
}

// AssertDocumentEqual compares two document trees. Emits a testing error, and
// returns false if the trees are not equal.
func AssertDocumentEqual(t T, expect, actual document.Value) bool {
	t.Helper()

	if err := DocumentEqual(expect, actual); err != nil {
		t.Errorf("expect documents to be equal, %v", err)
		return false
	}

	return true
}

// XMLEqual asserts two xml documents by sorting the attributes and comparing
// the strings, ignoring indentation. It returns an error in case of mismatch
// or in case of malformed xml found while sorting.
func XMLEqual(expectBytes, actualBytes []byte) error {
	actualString, err := xml.SortXML(bytes.NewBuffer(actualBytes), true)
	if err != nil {
		return err
	}

	expectedString, err := xml.SortXML(bytes.NewBuffer(expectBytes), true)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(expectedString, actualString); len(diff) != 0 {
		return fmt.Errorf("found diff while comparing the xml (-expect +actual):\n%s", diff)
	}

	return nil
}

// AssertXMLEqual compares two XML documents and identifies if the documents
// contain the same values. Emits a testing error, and returns false if the
// documents are not equal.
func AssertXMLEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := XMLEqual(expect, actual); err != nil {
		t.Errorf("expect XML documents to be equal, %v", err)
		return false
	}

	return true
}

// render shows a tree with type information so a string "true" and a boolean
// true differ.
func render(v document.Value) string {
	switch tv := v.(type) {
	case nil:
		return "null"
	case bool:
		return fmt.Sprintf("%t", tv)
	case string:
		return fmt.Sprintf("%q", tv)
	case document.Sequence:
		var b bytes.Buffer
		b.WriteByte('[')
		for i, e := range tv {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(render(e))
		}
		b.WriteByte(']')
		return b.String()
	case *document.Map:
		var b bytes.Buffer
		b.WriteByte('{')
		for i, k := range tv.Keys() {
			if i > 0 {
				b.WriteString(",\n ")
			}
			ev, _ := tv.Get(k)
			fmt.Fprintf(&b, "%q: %s", k, render(ev))
		}
		b.WriteByte('}')
		return b.String()
	}
	return fmt.Sprintf("<%T %v>", v, v)
}
