package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpattn/changelist/internal/changelist"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  addr: ":9090"
list:
  prefix: users
  case_sensitive: true
  search_fields: [username, email]
  headers:
    - name: username
    - name: email
      label: E-mail
      column: contact.email
    - name: avatar
      sortable: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "users", cfg.List.Prefix)
	assert.True(t, cfg.List.CaseSensitive)
	assert.Equal(t, []string{"username", "email"}, cfg.List.SearchFields)
	require.Len(t, cfg.List.Headers, 3)

	l, err := changelist.New(cfg.List.Options())
	require.NoError(t, err)
	assert.Equal(t, "users-sorts", l.SortParam())

	r := l.Registry()
	assert.Equal(t, "Username", r.At(0).Label)
	assert.Equal(t, "E-mail", r.At(1).Label)
	assert.Equal(t, "contact.email", r.At(1).ColumnName)
	assert.True(t, r.At(1).IsSortable())
	assert.False(t, r.At(2).IsSortable())
}

func TestLoadHeadersWithoutSearchFields(t *testing.T) {
	dir := t.TempDir()
	yaml := `
list:
  headers:
    - name: username
    - name: email
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Nil(t, cfg.List.SearchFields)

	l, err := changelist.New(cfg.List.Options())
	require.NoError(t, err)
	assert.False(t, l.Searchable())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CHANGELIST_SERVER_ADDR", ":7000")
	t.Setenv("CHANGELIST_LIST_PREFIX", "books")
	t.Setenv("CHANGELIST_DATABASE_ENABLED", "true")
	t.Setenv("CHANGELIST_DATABASE_HOST", "db.internal")
	t.Setenv("CHANGELIST_DATABASE_PORT", "6543")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "books", cfg.List.Prefix)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "books", cfg.Database.Table)
	assert.Equal(t, "changelist", cfg.Database.DBName)
}

func TestOptionsRejectsBadDeclarations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.List.Headers = append(cfg.List.Headers, HeaderConfig{Name: "title"})
	_, err := changelist.New(cfg.List.Options())
	assert.ErrorIs(t, err, changelist.ErrDuplicateHeaderName)

	cfg = DefaultConfig()
	cfg.List.SearchFields = []string{}
	_, err = changelist.New(cfg.List.Options())
	assert.ErrorIs(t, err, changelist.ErrMisconfiguredSearch)

	cfg.List.SearchFields = nil
	l, err := changelist.New(cfg.List.Options())
	require.NoError(t, err)
	assert.False(t, l.Searchable())
}
