package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/rpattn/changelist/internal/changelist"
	"github.com/rpattn/changelist/internal/db"
)

// Config is the demo host configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	List     ListConfig     `mapstructure:"list"`
	Database DatabaseConfig `mapstructure:"database"`
}

// DatabaseConfig selects a Postgres table as the record source. When disabled
// the host serves its bundled records.
type DatabaseConfig struct {
	Enabled bool
	Table   string
	db.Config
}

type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ListConfig declares one sortable, searchable list.
type ListConfig struct {
	Prefix        string         `mapstructure:"prefix"`
	CaseSensitive bool           `mapstructure:"case_sensitive"`
	SearchFields  []string       `mapstructure:"search_fields"`
	Headers       []HeaderConfig `mapstructure:"headers"`
}

type HeaderConfig struct {
	Name   string `mapstructure:"name"`
	Label  string `mapstructure:"label"`
	Column string `mapstructure:"column"`
	// Sortable defaults to true when omitted.
	Sortable *bool `mapstructure:"sortable"`
}

// DefaultConfig describes the bundled book catalogue.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		List: ListConfig{
			SearchFields: []string{"title", "author"},
			Headers: []HeaderConfig{
				{Name: "title"},
				{Name: "author"},
				{Name: "published_at", Label: "Published"},
				{Name: "id", Label: "ID", Sortable: boolPtr(false)},
			},
		},
		Database: DatabaseConfig{
			Table:  "books",
			Config: db.DefaultConfig(),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// Load reads config.yaml from configPath when present and applies CHANGELIST_*
// environment overrides on top of the defaults.
func Load(configPath string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvPrefix("CHANGELIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("server.addr")
	v.BindEnv("list.prefix")
	v.BindEnv("list.case_sensitive")
	v.BindEnv("database.enabled")
	v.BindEnv("database.table")
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		slog.Info("no config.yaml found, using defaults and env vars", "path", configPath)
	} else {
		slog.Info("loaded config", "file", v.ConfigFileUsed())
	}

	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.allowed_origins") {
		cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	}
	if v.IsSet("list.prefix") {
		cfg.List.Prefix = v.GetString("list.prefix")
	}
	if v.IsSet("list.case_sensitive") {
		cfg.List.CaseSensitive = v.GetBool("list.case_sensitive")
	}
	if v.IsSet("list.headers") {
		var headers []HeaderConfig
		if err := v.UnmarshalKey("list.headers", &headers); err != nil {
			return Config{}, fmt.Errorf("failed to decode list.headers: %w", err)
		}
		cfg.List.Headers = headers
		// The default search fields name the default headers' columns.
		cfg.List.SearchFields = nil
	}
	if v.IsSet("list.search_fields") {
		cfg.List.SearchFields = v.GetStringSlice("list.search_fields")
	}

	if v.IsSet("database.enabled") {
		cfg.Database.Enabled = v.GetBool("database.enabled")
	}
	if v.IsSet("database.table") {
		cfg.Database.Table = v.GetString("database.table")
	}
	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}

	return cfg, nil
}

// Options converts the declaration into list options. A list with no search
// fields is not searchable.
func (c ListConfig) Options() changelist.Options {
	headers := make([]changelist.Header, 0, len(c.Headers))
	for _, h := range c.Headers {
		opts := []changelist.HeaderOption{
			changelist.WithLabel(h.Label),
			changelist.WithColumn(h.Column),
		}
		if h.Sortable != nil && !*h.Sortable {
			opts = append(opts, changelist.Unsortable())
		}
		headers = append(headers, changelist.NewHeader(h.Name, opts...))
	}

	opts := changelist.Options{Prefix: c.Prefix, Headers: headers}
	if c.SearchFields != nil {
		opts.Search = &changelist.SearchOptions{
			Fields:        c.SearchFields,
			CaseSensitive: c.CaseSensitive,
		}
	}
	return opts
}
