package recordset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/changelist/internal/changelist"
	"github.com/rpattn/changelist/internal/domain"
)

func titles(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		v, _ := r.Value("title")
		out[i], _ = v.(string)
	}
	return out
}

func sampleBooks() []domain.Record {
	return []domain.Record{
		domain.MapRecord{"title": "Dune", "author": "Herbert", "year": 1965, "published": time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)},
		domain.MapRecord{"title": "Emma", "author": "Austen", "year": 1815},
		domain.MapRecord{"title": "Ulysses", "author": "Joyce", "year": 1922, "published": time.Date(1922, 2, 2, 0, 0, 0, 0, time.UTC)},
		domain.MapRecord{"title": "Persuasion", "author": "Austen", "year": 1817},
	}
}

func TestFilter(t *testing.T) {
	books := sampleBooks()

	assert.Len(t, Filter(books, nil), 4)

	pred, err := changelist.BuildPredicate("AUSTEN", []string{"title", "author"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Emma", "Persuasion"}, titles(Filter(books, pred)))
}

func TestSort(t *testing.T) {
	books := sampleBooks()

	tests := []struct {
		name      string
		orderings []domain.Ordering
		want      []string
	}{
		{
			name: "none keeps input order",
			want: []string{"Dune", "Emma", "Ulysses", "Persuasion"},
		},
		{
			name:      "int descending",
			orderings: []domain.Ordering{{Field: "year", Direction: domain.SortDirectionDesc}},
			want:      []string{"Dune", "Ulysses", "Persuasion", "Emma"},
		},
		{
			name: "author ascending then year descending",
			orderings: []domain.Ordering{
				{Field: "author", Direction: domain.SortDirectionAsc},
				{Field: "year", Direction: domain.SortDirectionDesc},
			},
			want: []string{"Persuasion", "Emma", "Dune", "Ulysses"},
		},
		{
			name:      "missing values last when ascending",
			orderings: []domain.Ordering{{Field: "published", Direction: domain.SortDirectionAsc}},
			want:      []string{"Ulysses", "Dune", "Emma", "Persuasion"},
		},
		{
			name:      "missing values last when descending",
			orderings: []domain.Ordering{{Field: "published", Direction: domain.SortDirectionDesc}},
			want:      []string{"Dune", "Ulysses", "Emma", "Persuasion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Sort(books, tt.orderings)))
		})
	}

	assert.Equal(t, []string{"Dune", "Emma", "Ulysses", "Persuasion"}, titles(books), "input untouched")
}

func TestApplyWithRequest(t *testing.T) {
	l, err := changelist.New(changelist.Options{
		Headers: []changelist.Header{
			changelist.NewHeader("title"),
			changelist.NewHeader("author"),
			changelist.NewHeader("year"),
		},
		Search: &changelist.SearchOptions{Fields: []string{"author"}},
	})
	require.NoError(t, err)

	params, err := changelist.ParseParams("q=austen&sorts=-3")
	require.NoError(t, err)
	req := l.Bind(params)

	got := Apply(sampleBooks(), req.Predicate(), req.Ordering())
	assert.Equal(t, []string{"Persuasion", "Emma"}, titles(got))
}

func TestCompareValuesMixed(t *testing.T) {
	assert.Equal(t, -1, compareValues(1, 2.5))
	assert.Equal(t, 0, compareValues(int64(3), 3))
	assert.Equal(t, -1, compareValues(false, true))
	assert.Equal(t, 1, compareValues("b", "a"))
	assert.Equal(t, -1, compareValues("1", 2))
}
