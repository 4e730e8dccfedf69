package changelist

import (
	"strings"

	"github.com/rpattn/changelist/internal/domain"
)

const (
	sortsParam  = "sorts"
	searchParam = "q"
)

// Options configures a List. It is passed explicitly at construction; there
// are no package-level defaults to override.
type Options struct {
	// Prefix namespaces the request parameters so that several lists can
	// share one page.
	Prefix  string
	Headers []Header
	// Search enables text search. Nil disables it.
	Search *SearchOptions
}

// SearchOptions lists the fields text search matches against.
type SearchOptions struct {
	Fields        []string
	CaseSensitive bool
}

// List is the process-lifetime configuration of one sortable, searchable
// list. It is immutable and safe for concurrent use.
type List struct {
	prefix   string
	registry *Registry
	search   *Search
}

// New validates opts. Duplicate header names and a search without fields are
// configuration errors.
func New(opts Options) (*List, error) {
	registry, err := NewRegistry(opts.Headers...)
	if err != nil {
		return nil, err
	}
	l := &List{prefix: opts.Prefix, registry: registry}
	if opts.Search != nil {
		if l.search, err = NewSearch(opts.Search.Fields, opts.Search.CaseSensitive); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Registry returns the declared headers.
func (l *List) Registry() *Registry {
	return l.registry
}

// Searchable reports whether text search is enabled.
func (l *List) Searchable() bool {
	return l.search != nil
}

// Param returns the namespaced request key for name.
func (l *List) Param(name string) string {
	return strings.Trim(l.prefix+"-"+name, "-")
}

// SortParam is the request key carrying the sort descriptor.
func (l *List) SortParam() string {
	return l.Param(sortsParam)
}

// SearchParam is the request key carrying the search text.
func (l *List) SearchParam() string {
	return l.Param(searchParam)
}

// Bind attaches the list to the parameters of one request.
func (l *List) Bind(params Params) *Request {
	return &Request{list: l, params: params}
}

// Request derives the sort and search state of one request. Values are
// computed on first use and reused afterwards. A Request must not be shared
// between goroutines.
type Request struct {
	list   *List
	params Params

	sortsDone bool
	sorts     Descriptor
	sortErr   error

	searchDone bool
	predicate  Predicate
}

// Sorts returns the decoded descriptor. On error the descriptor is empty and
// the host falls back to its default order.
func (r *Request) Sorts() (Descriptor, error) {
	if !r.sortsDone {
		r.sorts, r.sortErr = Decode(r.params.Get(r.list.SortParam()), r.list.registry)
		if r.sortErr != nil {
			r.sorts = Descriptor{}
		}
		r.sortsDone = true
	}
	return r.sorts, r.sortErr
}

// Ordering returns the ordering directive for the query layer.
func (r *Request) Ordering() []domain.Ordering {
	sorts, _ := r.Sorts()
	return Resolve(sorts, r.list.registry)
}

// Term returns the trimmed search text.
func (r *Request) Term() string {
	return strings.TrimSpace(r.params.Get(r.list.SearchParam()))
}

// Predicate returns the search filter, or nil when there is nothing to filter
// on or search is disabled.
func (r *Request) Predicate() Predicate {
	if !r.searchDone {
		if r.list.search != nil {
			r.predicate = r.list.search.Predicate(r.Term())
		}
		r.searchDone = true
	}
	return r.predicate
}

// Errors maps parameter keys to user facing messages.
func (r *Request) Errors() map[string]string {
	errs := map[string]string{}
	if _, err := r.Sorts(); err != nil {
		errs[r.list.SortParam()] = InvalidSortMessage
	}
	return errs
}

// Headers returns a bound view of every declared header, in order.
func (r *Request) Headers() []BoundHeader {
	sorts, _ := r.Sorts()
	param := r.list.SortParam()
	out := make([]BoundHeader, r.list.registry.Len())
	for i := range out {
		out[i] = newBoundHeader(r.list.registry.At(i), i, sorts, param, r.params)
	}
	return out
}

// Header returns the bound header with the given name.
func (r *Request) Header(name string) (BoundHeader, bool) {
	h, i, ok := r.list.registry.Lookup(name)
	if !ok {
		return BoundHeader{}, false
	}
	sorts, _ := r.Sorts()
	return newBoundHeader(h, i, sorts, r.list.SortParam(), r.params), true
}
