package ngmat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownKind          = errors.New("unknown helper kind")
	ErrInvalidID            = errors.New("invalid identifier")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidAttributes    = errors.New("invalid attributes")
)

// Kind names a tag helper.
type Kind string

const (
	TableKind Kind = "table"
)

var kinds = []Kind{TableKind}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Kinds returns all supported helper kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a helper kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Helper renders markup for one widget from an attribute bag. Content is
// written verbatim as the widget's inner markup.
type Helper interface {
	Render(w io.Writer, attrs Attributes, content string) error
}

// Option configures the helpers built by [Write] and [Marshal].
type Option func(*options)

type options struct {
	ids IDSource
}

// WithIDSource sets the source used for generated identifiers.
// Default: [RandomID].
func WithIDSource(ids IDSource) Option {
	return func(o *options) { o.ids = ids }
}

// New returns the helper for kind k.
func New(k Kind, opts ...Option) (Helper, error) {
	o := options{ids: RandomID()}
	for _, opt := range opts {
		opt(&o)
	}
	switch k {
	case TableKind:
		return &Table{IDs: o.ids}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}

// Write renders the helper for kind k and writes the markup to w.
func Write(w io.Writer, k Kind, attrs Attributes, content string, opts ...Option) error {
	h, err := New(k, opts...)
	if err != nil {
		return err
	}
	return h.Render(w, attrs, content)
}

// Marshal renders the helper for kind k and returns the markup.
func Marshal(k Kind, attrs Attributes, content string, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, k, attrs, content, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
