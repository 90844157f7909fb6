package ngmat

import (
	"fmt"
	"io"

	"github.com/google/safehtml"
)

// Attribute names read by [Table].
const (
	AttrID            = "id"
	AttrQueryParam    = "query-param"
	AttrBaseURL       = "base-url"
	AttrSort          = "sort"
	AttrSortDirection = "sort-direction"
)

// TableOptions configures a table. Zero values are omitted from the markup.
type TableOptions struct {
	// ID names the wrapper's template reference. Empty means generated.
	ID string
	// QueryParam is an expression bound to the wrapper's [queryParam] input.
	QueryParam string
	// BaseURL is the endpoint the wrapper loads rows from.
	BaseURL string
	// Sort is the initially active sort column.
	Sort          string
	SortDirection SortDirection
}

// TableOptionsFrom reads table options from attrs.
func TableOptionsFrom(attrs Attributes) (TableOptions, error) {
	dir, err := ParseSortDirection(attrs.Value(AttrSortDirection))
	if err != nil {
		return TableOptions{}, err
	}
	return TableOptions{
		ID:            attrs.Value(AttrID),
		QueryParam:    attrs.Value(AttrQueryParam),
		BaseURL:       attrs.Value(AttrBaseURL),
		Sort:          attrs.Value(AttrSort),
		SortDirection: dir,
	}, nil
}

// Table renders a mat-table inside a mat-table-wrapper. The wrapper owns
// the data source and sizing; the inner table carries the sort directives.
type Table struct {
	IDs IDSource
}

// Render implements [Helper].
func (t *Table) Render(w io.Writer, attrs Attributes, content string) error {
	opts, err := TableOptionsFrom(attrs)
	if err != nil {
		return err
	}
	return t.RenderOptions(w, opts, content)
}

// RenderOptions renders a table from already parsed options.
func (t *Table) RenderOptions(w io.Writer, opts TableOptions, content string) error {
	el, err := t.build(opts, content)
	if err != nil {
		return err
	}
	_, err = el.WriteTo(w)
	return err
}

func (t *Table) build(opts TableOptions, content string) (*Element, error) {
	id, err := resolveID(opts.ID, t.IDs)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}

	wrapper := NewElement("mat-table-wrapper").
		Flag("#"+id).
		AttrIf(opts.QueryParam != "", "[queryParam]", opts.QueryParam)
	if opts.BaseURL != "" {
		wrapper.Attr("baseUrl", safehtml.URLSanitized(opts.BaseURL).String())
	}

	table := NewElement("mat-table").
		Flag("matSort").
		AttrIf(opts.Sort != "", "matSortActive", opts.Sort).
		AttrIf(opts.SortDirection != SortNone, "matSortDirection", opts.SortDirection.String()).
		Flag("matSortDisableClear").
		Attr("[dataSource]", id+".dataSource").
		Attr("[style.max-height]", sizeBinding(id, "maxHeight")).
		Attr("[style.min-height]", sizeBinding(id, "minHeight")).
		AppendText(content)

	return wrapper.Append(table), nil
}

func sizeBinding(id, prop string) string {
	ref := id + "." + prop
	return ref + "?" + ref + "+'px':null"
}
