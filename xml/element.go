package xml

// A Name represents an XML name (Local) qualified by a namespace prefix
// (Space). An empty Space writes the bare local name.
type Name struct {
	Space, Local string
}

// String returns the qualified name as written to the document.
func (n Name) String() string {
	if len(n.Space) == 0 {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func (n Name) isZero() bool {
	return len(n.Local) == 0
}
