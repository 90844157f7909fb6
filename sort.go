package ngmat

import (
	"fmt"
	"strings"
)

// SortDirection is the initial direction of a sortable widget.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// String returns the value Angular Material expects: "", "asc" or "desc".
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return ""
	}
}

// ParseSortDirection parses a direction name, ignoring case.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (d SortDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *SortDirection) UnmarshalText(text []byte) error {
	v, err := ParseSortDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Set implements pflag.Value.
func (d *SortDirection) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (d *SortDirection) Type() string { return "direction" }
