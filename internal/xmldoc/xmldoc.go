package xmldoc

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// DefaultIndent is the number of spaces used per nesting level when rendering.
const DefaultIndent = 2

// Parse reads data into a document tree. Qualified names keep their prefixes,
// so "manifest:file-entry" stays addressable without a namespace declaration.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return doc, nil
}

// New returns an empty document carrying a UTF-8 XML declaration.
func New() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

// Render writes doc to w. A non-positive indent renders without whitespace
// between elements.
func Render(doc *etree.Document, w io.Writer, indent int) error {
	// Character references keep CR, LF and tab in attribute values intact
	// across a parse.
	doc.WriteSettings.CanonicalAttrVal = true
	if indent > 0 {
		doc.Indent(indent)
	} else {
		doc.Indent(etree.NoIndent)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

// ElementsByTagName returns every descendant of root whose qualified tag
// equals name, in document order. root itself is never matched.
func ElementsByTagName(root *etree.Element, name string) []*etree.Element {
	var found []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.FullTag() == name {
			found = append(found, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	if root != nil {
		for _, child := range root.ChildElements() {
			walk(child)
		}
	}
	return found
}

// Attr looks up a qualified attribute. The boolean distinguishes an absent
// attribute from one that is present but empty.
func Attr(el *etree.Element, name string) (string, bool) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}
