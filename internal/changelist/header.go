package changelist

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Header declares one column of a list. Headers are referenced on the wire by
// their 1-based position in the Registry, so the declaration order is part of
// the URL contract. The zero value of Unsortable leaves the header sortable.
type Header struct {
	Name       string
	Label      string
	ColumnName string
	Unsortable bool
}

// IsSortable reports whether the header may appear in a sort descriptor.
func (h Header) IsSortable() bool {
	return !h.Unsortable
}

type HeaderOption func(*Header)

// WithLabel overrides the display label.
func WithLabel(label string) HeaderOption {
	return func(h *Header) {
		if strings.TrimSpace(label) != "" {
			h.Label = label
		}
	}
}

// WithColumn sets the field the ordering and filtering apply to.
func WithColumn(column string) HeaderOption {
	return func(h *Header) {
		if strings.TrimSpace(column) != "" {
			h.ColumnName = column
		}
	}
}

// Unsortable marks the header as display only.
func Unsortable() HeaderOption {
	return func(h *Header) {
		h.Unsortable = true
	}
}

// NewHeader declares a sortable header whose label and column default to name.
func NewHeader(name string, opts ...HeaderOption) Header {
	h := Header{
		Name:       name,
		Label:      prettyName(name),
		ColumnName: name,
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

func prettyName(name string) string {
	if name == "" {
		return ""
	}
	return cases.Title(language.Und, cases.NoLower).String(strings.ReplaceAll(name, "_", " "))
}

// Registry is the ordered, immutable set of headers for one list.
type Registry struct {
	headers []Header
	byName  map[string]int
}

// NewRegistry validates the declaration and returns a registry. Names must be
// unique and non-empty.
func NewRegistry(headers ...Header) (*Registry, error) {
	r := &Registry{
		headers: make([]Header, len(headers)),
		byName:  make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		if strings.TrimSpace(h.Name) == "" {
			return nil, fmt.Errorf("header %d: name is required", i+1)
		}
		if _, exists := r.byName[h.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateHeaderName, h.Name)
		}
		if h.Label == "" {
			h.Label = prettyName(h.Name)
		}
		if h.ColumnName == "" {
			h.ColumnName = h.Name
		}
		r.headers[i] = h
		r.byName[h.Name] = i
	}
	return r, nil
}

// Len returns the number of declared headers.
func (r *Registry) Len() int {
	return len(r.headers)
}

// At returns the header at the 0-based position i.
func (r *Registry) At(i int) Header {
	return r.headers[i]
}

// Lookup finds a header by name and returns its 0-based position.
func (r *Registry) Lookup(name string) (Header, int, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Header{}, -1, false
	}
	return r.headers[i], i, true
}

// Headers returns a copy of the declared headers in order.
func (r *Registry) Headers() []Header {
	out := make([]Header, len(r.headers))
	copy(out, r.headers)
	return out
}
