package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rpattn/changelist/internal/changelist"
	"github.com/rpattn/changelist/internal/domain"
	"github.com/rpattn/changelist/internal/export"
	"github.com/rpattn/changelist/internal/recordset"
	"github.com/rpattn/changelist/internal/sqlclause"
)

// Source returns the records matching req, in the order req asks for.
type Source func(ctx context.Context, req *changelist.Request) ([]domain.Record, error)

// MemorySource serves a fixed slice of records, filtered and ordered in memory.
func MemorySource(records []domain.Record) Source {
	return func(_ context.Context, req *changelist.Request) ([]domain.Record, error) {
		return recordset.Apply(records, req.Predicate(), req.Ordering()), nil
	}
}

// Handler serves one list as JSON, or as a workbook when the path ends in
// ".xlsx".
type Handler struct {
	list   *changelist.List
	source Source
	table  string
	logger *slog.Logger
}

type Option func(*Handler)

// WithTable names the table used when rendering the equivalent SQL.
func WithTable(table string) Option {
	return func(h *Handler) {
		if strings.TrimSpace(table) != "" {
			h.table = table
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

func NewHandler(list *changelist.List, source Source, opts ...Option) *Handler {
	h := &Handler{
		list:   list,
		source: source,
		table:  "records",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type headerPayload struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Sortable    bool   `json:"sortable"`
	Active      bool   `json:"active"`
	Ascending   bool   `json:"ascending"`
	Descending  bool   `json:"descending"`
	Priority    *int   `json:"priority,omitempty"`
	CSSClasses  string `json:"cssClasses"`
	ToggleURL   string `json:"toggleUrl,omitempty"`
	SingularURL string `json:"singularUrl,omitempty"`
	RemoveURL   string `json:"removeUrl,omitempty"`
}

type listPayload struct {
	Query    string            `json:"query"`
	Sorts    string            `json:"sorts"`
	OrderBy  []string          `json:"orderBy"`
	SQL      string            `json:"sql"`
	SQLArgs  []any             `json:"sqlArgs"`
	Errors   map[string]string `json:"errors,omitempty"`
	Headers  []headerPayload   `json:"headers"`
	Rows     []map[string]any  `json:"rows"`
	RowCount int               `json:"rowCount"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params, err := changelist.ParseParams(r.URL.RawQuery)
	if err != nil {
		http.Error(w, "invalid query string", http.StatusBadRequest)
		return
	}
	req := h.list.Bind(params)
	if _, err := req.Sorts(); err != nil {
		h.logger.Warn("rejected sort parameter", "param", h.list.SortParam(), "error", err)
	}

	records, err := h.source(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to load records", "error", err)
		http.Error(w, "failed to load records", http.StatusInternalServerError)
		return
	}

	if strings.HasSuffix(r.URL.Path, ".xlsx") {
		h.writeWorkbook(w, req, records)
		return
	}
	h.writeJSON(w, req, records)
}

func (h *Handler) writeWorkbook(w http.ResponseWriter, req *changelist.Request, records []domain.Record) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.table+".xlsx"))
	if err := export.WriteXLSX(w, req.Headers(), records); err != nil {
		h.logger.Error("failed to write workbook", "error", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, req *changelist.Request, records []domain.Record) {
	sorts, _ := req.Sorts()
	sql, args, err := sqlclause.Select(h.table, nil, req)
	if err != nil {
		h.logger.Error("failed to render sql", "error", err)
		http.Error(w, "failed to render query", http.StatusInternalServerError)
		return
	}

	bound := req.Headers()
	payload := listPayload{
		Query:    req.Term(),
		Sorts:    sorts.Encode(),
		OrderBy:  changelist.SignedFields(req.Ordering()),
		SQL:      sql,
		SQLArgs:  args,
		Headers:  make([]headerPayload, 0, len(bound)),
		Rows:     make([]map[string]any, 0, len(records)),
		RowCount: len(records),
	}
	if errs := req.Errors(); len(errs) > 0 {
		payload.Errors = errs
	}

	for _, b := range bound {
		hp := headerPayload{
			Name:       b.Name,
			Label:      b.Label,
			Sortable:   b.IsSortable(),
			Active:     b.IsActive(),
			Ascending:  b.IsAscending(),
			Descending: b.IsDescending(),
			CSSClasses: b.CSSClasses(),
		}
		if prio, ok := b.Priority(); ok {
			hp.Priority = &prio
		}
		if b.IsSortable() {
			hp.ToggleURL = b.ToggleURL().String()
			hp.SingularURL = b.SingularURL().String()
			hp.RemoveURL = b.RemoveURL().String()
		}
		payload.Headers = append(payload.Headers, hp)
	}

	for _, rec := range records {
		row := make(map[string]any, len(bound))
		for _, b := range bound {
			if v, ok := rec.Value(b.ColumnName); ok {
				row[b.Name] = v
			}
		}
		payload.Rows = append(payload.Rows, row)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
