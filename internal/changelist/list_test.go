package changelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/changelist/internal/domain"
)

func TestNewListConfigurationErrors(t *testing.T) {
	_, err := New(Options{Headers: []Header{NewHeader("a"), NewHeader("a")}})
	assert.ErrorIs(t, err, ErrDuplicateHeaderName)

	_, err = New(Options{Headers: []Header{NewHeader("a")}, Search: &SearchOptions{}})
	assert.ErrorIs(t, err, ErrMisconfiguredSearch)

	l, err := New(Options{Headers: []Header{NewHeader("a")}})
	require.NoError(t, err)
	assert.False(t, l.Searchable())
}

func TestListParamNames(t *testing.T) {
	l, err := New(Options{Headers: []Header{NewHeader("a")}})
	require.NoError(t, err)
	assert.Equal(t, "sorts", l.SortParam())
	assert.Equal(t, "q", l.SearchParam())

	l, err = New(Options{Prefix: "users", Headers: []Header{NewHeader("a")}})
	require.NoError(t, err)
	assert.Equal(t, "users-sorts", l.SortParam())
	assert.Equal(t, "users-q", l.SearchParam())
}

func TestRequestEndToEnd(t *testing.T) {
	l, err := New(Options{Headers: []Header{NewHeader("title"), NewHeader("date")}})
	require.NoError(t, err)

	req := l.Bind(Params{}.With("sorts", "2.-1"))

	sorts, err := req.Sorts()
	require.NoError(t, err)
	assert.Equal(t, Descriptor{2, -1}, sorts)
	assert.Equal(t, []domain.Ordering{
		{Field: "date", Direction: domain.SortDirectionAsc},
		{Field: "title", Direction: domain.SortDirectionDesc},
	}, req.Ordering())
	assert.Equal(t, []string{"date", "-title"}, SignedFields(req.Ordering()))

	title, ok := req.Header("title")
	require.True(t, ok)
	assert.Equal(t, "sorts=1.2", title.ToggleQuery())
	assert.Equal(t, Descriptor{1, 2}, Next(sorts, title.SortIndex()))
}

func TestRequestInvalidSortFallsBack(t *testing.T) {
	req := bindTestList(t, "", "sorts=3.1")

	sorts, err := req.Sorts()
	assert.ErrorIs(t, err, ErrUnsortableColumn)
	assert.Empty(t, sorts)
	assert.Empty(t, req.Ordering())
	assert.Equal(t, map[string]string{"sorts": InvalidSortMessage}, req.Errors())

	for _, h := range req.Headers() {
		assert.False(t, h.IsActive(), h.Name)
	}
}

func TestRequestMinIntSortDoesNotPanic(t *testing.T) {
	req := bindTestList(t, "", "sorts=-9223372036854775808")

	var err error
	require.NotPanics(t, func() {
		_, err = req.Sorts()
	})
	assert.ErrorIs(t, err, ErrSortIndexOutOfRange)
	assert.Empty(t, req.Ordering())
	for _, h := range req.Headers() {
		assert.False(t, h.IsActive(), h.Name)
	}
}

func TestRequestMemoizes(t *testing.T) {
	req := bindTestList(t, "", "sorts=1&q=dune")

	first, err := req.Sorts()
	require.NoError(t, err)
	second, err := req.Sorts()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, req.sortsDone)

	p1 := req.Predicate()
	p2 := req.Predicate()
	assert.Equal(t, p1, p2)
	assert.True(t, req.searchDone)
}

func TestRequestPredicate(t *testing.T) {
	req := bindTestList(t, "", "q=+Dune+")
	assert.Equal(t, "Dune", req.Term())
	assert.Equal(t, Contains{Field: "title", Term: "Dune"}, req.Predicate())
	assert.Empty(t, req.Errors())

	req = bindTestList(t, "", "q=")
	assert.Nil(t, req.Predicate())

	l, err := New(Options{Headers: []Header{NewHeader("title")}})
	require.NoError(t, err)
	assert.Nil(t, l.Bind(Params{}.With("q", "dune")).Predicate())
}

func TestRequestUnknownHeader(t *testing.T) {
	req := bindTestList(t, "", "")
	_, ok := req.Header("nope")
	assert.False(t, ok)
}
