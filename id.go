package ngmat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GeneratedIDPrefix is prepended to identifiers drawn from an [IDSource].
const GeneratedIDPrefix = "m_"

// IDSource supplies identifiers for helpers rendered without an explicit id.
type IDSource interface {
	NextID() string
}

// IDSourceFunc adapts a function to [IDSource].
type IDSourceFunc func() string

// NextID calls f.
func (f IDSourceFunc) NextID() string { return f() }

// FixedID returns a source that always yields id. Useful for
// deterministic output in tests and snapshots.
func FixedID(id string) IDSource {
	return IDSourceFunc(func() string { return id })
}

// RandomID returns a source of dash-free random UUIDs.
func RandomID() IDSource {
	return IDSourceFunc(func() string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	})
}

// ValidID reports an error unless id is usable as an Angular template
// reference variable.
func ValidID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidID)
	}
	for i, r := range id {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return nil
}

func resolveID(explicit string, ids IDSource) (string, error) {
	id := strings.TrimSpace(explicit)
	if id == "" {
		if ids == nil {
			ids = RandomID()
		}
		id = GeneratedIDPrefix + ids.NextID()
	}
	if err := ValidID(id); err != nil {
		return "", err
	}
	return id, nil
}
