package changelist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(
		NewHeader("title"),
		NewHeader("date", WithColumn("published_at")),
		NewHeader("id", Unsortable()),
	)
	require.NoError(t, err)
	return r
}
