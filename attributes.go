package ngmat

import (
	"strings"
)

// Attribute is a single name/value pair as written on a tag.
type Attribute struct {
	Name  string
	Value string
}

// Attributes is an ordered attribute bag. Names compare case-insensitively.
type Attributes []Attribute

func (a Attributes) index(name string) int {
	for i, attr := range a {
		if strings.EqualFold(attr.Name, name) {
			return i
		}
	}
	return -1
}

// Get returns the value of the first attribute called name.
func (a Attributes) Get(name string) (string, bool) {
	if i := a.index(name); i >= 0 {
		return a[i].Value, true
	}
	return "", false
}

// Value is like Get but returns "" for a missing attribute.
func (a Attributes) Value(name string) string {
	v, _ := a.Get(name)
	return v
}

// Has reports whether an attribute called name is present.
func (a Attributes) Has(name string) bool {
	return a.index(name) >= 0
}

// Set replaces the value of name in place, or appends it.
func (a *Attributes) Set(name, value string) {
	if i := a.index(name); i >= 0 {
		(*a)[i].Value = value
		return
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Add appends an attribute without checking for duplicates.
func (a *Attributes) Add(name, value string) {
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Remove deletes every attribute called name and reports whether any
// were present.
func (a *Attributes) Remove(name string) bool {
	out := (*a)[:0]
	removed := false
	for _, attr := range *a {
		if strings.EqualFold(attr.Name, name) {
			removed = true
			continue
		}
		out = append(out, attr)
	}
	*a = out
	return removed
}

// Names returns the attribute names in order.
func (a Attributes) Names() []string {
	names := make([]string, len(a))
	for i, attr := range a {
		names[i] = attr.Name
	}
	return names
}

// Merge returns a copy of a with every attribute of b that a does not
// already carry appended.
func (a Attributes) Merge(b Attributes) Attributes {
	out := make(Attributes, len(a), len(a)+len(b))
	copy(out, a)
	for _, attr := range b {
		if !out.Has(attr.Name) {
			out = append(out, attr)
		}
	}
	return out
}
