package changelist

import (
	"strconv"
	"strings"

	"github.com/google/safehtml"
)

// BoundHeader is a read-only view of a Header against the sort state of one
// request.
type BoundHeader struct {
	Header

	index int
	sorts Descriptor
	param string
	base  Params
}

func newBoundHeader(h Header, index int, sorts Descriptor, param string, base Params) BoundHeader {
	return BoundHeader{Header: h, index: index, sorts: sorts, param: param, base: base}
}

// SortIndex is the 1-based wire reference of the header.
func (b BoundHeader) SortIndex() int {
	return b.index + 1
}

// IsActive reports whether the header takes part in the current sort.
func (b BoundHeader) IsActive() bool {
	return b.sorts.Position(b.SortIndex()) >= 0
}

// IsAscending reports whether the header is sorted ascending.
func (b BoundHeader) IsAscending() bool {
	pos := b.sorts.Position(b.SortIndex())
	return pos >= 0 && b.sorts[pos] > 0
}

// IsDescending reports whether the header is sorted descending.
func (b BoundHeader) IsDescending() bool {
	pos := b.sorts.Position(b.SortIndex())
	return pos >= 0 && b.sorts[pos] < 0
}

// Priority returns the 1-based rank of the header among the active sort keys.
func (b BoundHeader) Priority() (int, bool) {
	pos := b.sorts.Position(b.SortIndex())
	if pos < 0 {
		return 0, false
	}
	return pos + 1, true
}

// CSSClasses returns "active ascending", "active descending" or "".
func (b BoundHeader) CSSClasses() string {
	if !b.IsActive() {
		return ""
	}
	classes := []string{"active"}
	if b.IsAscending() {
		classes = append(classes, "ascending")
	} else {
		classes = append(classes, "descending")
	}
	return strings.Join(classes, " ")
}

// ToggleQuery is the querystring applied when the header is clicked.
func (b BoundHeader) ToggleQuery() string {
	return b.base.With(b.param, Next(b.sorts, b.SortIndex()).Encode()).Encode()
}

// SingularQuery sorts by this header alone, ascending.
func (b BoundHeader) SingularQuery() string {
	return b.base.With(b.param, strconv.Itoa(b.SortIndex())).Encode()
}

// RemoveQuery drops this header from the sort.
func (b BoundHeader) RemoveQuery() string {
	return b.base.With(b.param, Remove(b.sorts, b.SortIndex()).Encode()).Encode()
}

// ToggleURL is ToggleQuery as a relative URL.
func (b BoundHeader) ToggleURL() safehtml.URL {
	return relativeURL(b.ToggleQuery())
}

// SingularURL is SingularQuery as a relative URL.
func (b BoundHeader) SingularURL() safehtml.URL {
	return relativeURL(b.SingularQuery())
}

// RemoveURL is RemoveQuery as a relative URL.
func (b BoundHeader) RemoveURL() safehtml.URL {
	return relativeURL(b.RemoveQuery())
}

func relativeURL(query string) safehtml.URL {
	return safehtml.URLSanitized("?" + query)
}
