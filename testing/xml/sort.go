package xml

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// textEscaper keeps newlines and tabs so indentation survives in the output.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#xD;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"\t", "&#x9;",
	"\n", "&#xA;",
	"\r", "&#xD;",
)

type xmlAttrSlice []xml.Attr

func (x xmlAttrSlice) Len() int {
	return len(x)
}

func (x xmlAttrSlice) Less(i, j int) bool {
	spaceI, spaceJ := x[i].Name.Space, x[j].Name.Space
	localI, localJ := x[i].Name.Local, x[j].Name.Local
	valueI, valueJ := x[i].Value, x[j].Value

	spaceCmp := strings.Compare(spaceI, spaceJ)
	localCmp := strings.Compare(localI, localJ)
	valueCmp := strings.Compare(valueI, valueJ)

	if spaceCmp == -1 || (spaceCmp == 0 && (localCmp == -1 || (localCmp == 0 && valueCmp == -1))) {
		return true
	}

	return false
}

func (x xmlAttrSlice) Swap(i, j int) {
	x[i], x[j] = x[j], x[i]
}

// SortXML sorts the attributes of the reader's XML elements. Names keep the
// prefixes written in the document. When ignoreIndentation is set, character
// data made only of whitespace is dropped. Comments, processing instructions
// and directives are dropped.
func SortXML(r io.Reader, ignoreIndentation bool) (string, error) {
	var b strings.Builder
	d := xml.NewDecoder(r)

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", fmt.Errorf("unable to sort xml, %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := append(xmlAttrSlice(nil), t.Attr...)
			sort.Sort(attrs)

			b.WriteByte('<')
			b.WriteString(qualified(t.Name))
			for _, a := range attrs {
				b.WriteByte(' ')
				b.WriteString(qualified(a.Name))
				b.WriteString(`="`)
				b.WriteString(attrEscaper.Replace(a.Value))
				b.WriteByte('"')
			}
			b.WriteByte('>')

		case xml.EndElement:
			b.WriteString("</")
			b.WriteString(qualified(t.Name))
			b.WriteByte('>')

		case xml.CharData:
			if ignoreIndentation && len(strings.TrimSpace(string(t))) == 0 {
				continue
			}
			b.WriteString(textEscaper.Replace(string(t)))
		}
	}
}

func qualified(n xml.Name) string {
	if len(n.Space) == 0 {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
