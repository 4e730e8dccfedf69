// Package recordset applies a list request to records held in memory.
package recordset

import (
	"cmp"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/rpattn/changelist/internal/changelist"
	"github.com/rpattn/changelist/internal/domain"
)

// Apply filters records with pred and orders the result. The input slice is
// never modified.
func Apply(records []domain.Record, pred changelist.Predicate, orderings []domain.Ordering) []domain.Record {
	return Sort(Filter(records, pred), orderings)
}

// Filter keeps the records matched by pred. A nil predicate keeps everything.
func Filter(records []domain.Record, pred changelist.Predicate) []domain.Record {
	if pred == nil {
		return append([]domain.Record(nil), records...)
	}
	return lo.Filter(records, func(rec domain.Record, _ int) bool {
		return pred.Match(rec)
	})
}

// Sort returns a stably sorted copy. Missing and nil values sort last in
// either direction, like NULLS LAST.
func Sort(records []domain.Record, orderings []domain.Ordering) []domain.Record {
	out := append([]domain.Record(nil), records...)
	if len(orderings) == 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		for _, o := range orderings {
			c := compareField(out[i], out[j], o)
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out
}

func compareField(a, b domain.Record, o domain.Ordering) int {
	av, aok := a.Value(o.Field)
	bv, bok := b.Value(o.Field)
	aNull := !aok || av == nil
	bNull := !bok || bv == nil
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	}

	c := compareValues(av, bv)
	if o.Direction == domain.SortDirectionDesc {
		return -c
	}
	return c
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}

	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
