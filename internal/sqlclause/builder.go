// Package sqlclause renders list orderings and search predicates as
// PostgreSQL clauses with positional arguments. It does not execute anything;
// the host passes the SQL and Args to its own pgx pool.
package sqlclause

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/rpattn/changelist/internal/changelist"
	"github.com/rpattn/changelist/internal/domain"
)

// Builder accumulates positional arguments across the clauses of one
// statement.
type Builder struct {
	args []any
}

// NewBuilder returns a builder with no arguments.
func NewBuilder() *Builder {
	return &Builder{}
}

// Args returns the arguments in placeholder order.
func (b *Builder) Args() []any {
	return b.args
}

func (b *Builder) addArg(value any) int {
	b.args = append(b.args, value)
	return len(b.args)
}

func (b *Builder) placeholder(idx int) string {
	return fmt.Sprintf("$%d", idx)
}

// Identifier quotes a possibly dotted column reference, e.g. "author.name"
// becomes "author"."name".
func Identifier(column string) string {
	return pgx.Identifier(strings.Split(column, ".")).Sanitize()
}

// OrderBy renders orderings as an ORDER BY clause. It returns "" for an empty
// ordering so the caller keeps its default.
func (b *Builder) OrderBy(orderings []domain.Ordering) string {
	if len(orderings) == 0 {
		return ""
	}

	parts := make([]string, 0, len(orderings))
	for _, o := range orderings {
		if o.Field == "" {
			continue
		}
		direction := "ASC"
		if o.Direction == domain.SortDirectionDesc {
			direction = "DESC"
		}
		parts = append(parts, fmt.Sprintf("%s %s NULLS LAST", Identifier(o.Field), direction))
	}
	if len(parts) == 0 {
		return ""
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

// Where renders a predicate as a boolean SQL expression. A nil predicate
// renders as "".
func (b *Builder) Where(p changelist.Predicate) (string, error) {
	if p == nil {
		return "", nil
	}

	switch pred := p.(type) {
	case changelist.Contains:
		op := "ILIKE"
		if pred.CaseSensitive {
			op = "LIKE"
		}
		idx := b.addArg("%" + escapeLike(pred.Term) + "%")
		return fmt.Sprintf("%s::text %s %s", Identifier(pred.Field), op, b.placeholder(idx)), nil
	case changelist.AnyOf:
		if len(pred) == 0 {
			return "", fmt.Errorf("empty disjunction")
		}
		parts := make([]string, 0, len(pred))
		for _, inner := range pred {
			expr, err := b.Where(inner)
			if err != nil {
				return "", err
			}
			parts = append(parts, expr)
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, " OR ") + ")", nil
	default:
		return "", fmt.Errorf("unsupported predicate %T", p)
	}
}

// escapeLike escapes the LIKE wildcards using the default backslash escape.
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// Select builds a complete listing statement for table from a bound request.
func Select(table string, columns []string, req *changelist.Request) (string, []any, error) {
	b := NewBuilder()

	cols := "*"
	if len(columns) > 0 {
		quoted := make([]string, len(columns))
		for i, c := range columns {
			quoted[i] = Identifier(c)
		}
		cols = strings.Join(quoted, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", cols, Identifier(table))

	where, err := b.Where(req.Predicate())
	if err != nil {
		return "", nil, fmt.Errorf("failed to build filter: %w", err)
	}
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	if orderBy := b.OrderBy(req.Ordering()); orderBy != "" {
		sb.WriteString(" ")
		sb.WriteString(orderBy)
	}
	return sb.String(), b.Args(), nil
}
