package changelist

import "github.com/rpattn/changelist/internal/domain"

// Resolve maps a validated descriptor to the ordering handed to the query
// layer. An empty descriptor yields an empty ordering, leaving the default
// order to the host.
func Resolve(d Descriptor, registry *Registry) []domain.Ordering {
	orderings := make([]domain.Ordering, 0, len(d))
	for _, n := range d {
		direction := domain.SortDirectionAsc
		if n < 0 {
			direction = domain.SortDirectionDesc
		}
		orderings = append(orderings, domain.Ordering{
			Field:     registry.At(abs(n) - 1).ColumnName,
			Direction: direction,
		})
	}
	return orderings
}

// SignedFields renders orderings as "column" / "-column" strings.
func SignedFields(orderings []domain.Ordering) []string {
	out := make([]string, len(orderings))
	for i, o := range orderings {
		out[i] = o.Signed()
	}
	return out
}
