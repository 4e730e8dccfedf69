package domain

// Record is a read-only row of the host's record source.
type Record interface {
	// Value returns the value stored under field and whether it was present.
	Value(field string) (any, bool)
}

// MapRecord adapts a plain map to Record.
type MapRecord map[string]any

// Value implements Record.
func (r MapRecord) Value(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}
