package changelist

// Next computes the descriptor produced by clicking the header at the 1-based
// sortIndex. Clicking the primary key flips its direction in place. Clicking
// any other header promotes it to ascending primary and drops its previous
// entry; the remaining keys keep their relative order and direction.
func Next(current Descriptor, sortIndex int) Descriptor {
	if len(current) > 0 && abs(current[0]) == sortIndex {
		next := make(Descriptor, len(current))
		copy(next, current)
		next[0] = -next[0]
		return next
	}

	next := make(Descriptor, 0, len(current)+1)
	next = append(next, sortIndex)
	for _, n := range current {
		if abs(n) != sortIndex {
			next = append(next, n)
		}
	}
	return next
}

// Remove computes the descriptor with the header at sortIndex dropped.
func Remove(current Descriptor, sortIndex int) Descriptor {
	return Next(current, sortIndex)[1:]
}
