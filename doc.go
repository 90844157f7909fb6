// Package ngmat renders Angular Material template markup from declarative
// attributes.
//
// A helper takes an ordered attribute bag, as a server-side page would
// write it on a custom tag, and produces the framework markup the client
// compiles. Output is deterministic and attribute-ordered so it can be
// compared byte for byte.
//
// # Table
//
// The table helper wraps a mat-table in a mat-table-wrapper:
//
//	attrs := ngmat.Attributes{{Name: "id", Value: "orders"}, {Name: "sort", Value: "created"}}
//	ngmat.Write(os.Stdout, ngmat.TableKind, attrs, "")
//
// It reads these attributes:
//
//   - id — template reference name; generated as "m_" + [IDSource] when absent
//   - query-param — expression bound to [queryParam]
//   - base-url — data endpoint, sanitized with safehtml
//   - sort — initially active column (matSortActive)
//   - sort-direction — asc or desc (matSortDirection)
//
// Use [WithIDSource] and [FixedID] for reproducible identifiers.
//
// # Attributes from YAML
//
// [ParseAttributes] decodes a YAML mapping and keeps document order:
//
//	attrs, err := ngmat.ParseAttributes([]byte("id: orders\nsort-direction: desc\n"))
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownKind] — unknown helper kind
//   - [ErrInvalidID] — identifier is not a template reference name
//   - [ErrInvalidSortDirection] — unrecognized sort direction
//   - [ErrInvalidAttributes] — malformed YAML attributes
package ngmat
