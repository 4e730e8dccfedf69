package domain

// SortDirection represents ordering direction for sortable fields.
type SortDirection string

const (
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

// Reverse returns the opposite direction.
func (d SortDirection) Reverse() SortDirection {
	if d == SortDirectionDesc {
		return SortDirectionAsc
	}
	return SortDirectionDesc
}

// Ordering is one key of a multi-column ordering directive handed to the
// query layer. Field is the column the host applies the order to.
type Ordering struct {
	Field     string
	Direction SortDirection
}

// Signed returns the field prefixed with "-" when descending.
func (o Ordering) Signed() string {
	if o.Direction == SortDirectionDesc {
		return "-" + o.Field
	}
	return o.Field
}
