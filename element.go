package ngmat

import (
	"fmt"
	"io"
	"strings"
)

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;")

// Element builds a single tag. Attributes render in the order they were
// added; children render between the open and close tags.
type Element struct {
	name     string
	attrs    Attributes
	children []fmt.Stringer
}

type rawText string

func (t rawText) String() string { return string(t) }

// NewElement returns an empty element called name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Attr appends name="value".
func (e *Element) Attr(name, value string) *Element {
	e.attrs.Add(name, value)
	return e
}

// AttrIf appends name="value" when cond holds.
func (e *Element) AttrIf(cond bool, name, value string) *Element {
	if cond {
		e.attrs.Add(name, value)
	}
	return e
}

// Flag appends a valueless attribute, rendered as name="".
func (e *Element) Flag(name string) *Element {
	return e.Attr(name, "")
}

// Append adds child elements. Children render when e does, so later
// changes to a child show up in the output.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		e.children = append(e.children, c)
	}
	return e
}

// AppendText adds raw markup. It is not escaped.
func (e *Element) AppendText(raw string) *Element {
	if raw != "" {
		e.children = append(e.children, rawText(raw))
	}
	return e
}

// String returns the rendered markup.
func (e *Element) String() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.name)
	for _, attr := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(attr.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	for _, c := range e.children {
		b.WriteString(c.String())
	}
	b.WriteString("</")
	b.WriteString(e.name)
	b.WriteByte('>')
	return b.String()
}

// WriteTo implements [io.WriterTo].
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.String())
	return int64(n), err
}
