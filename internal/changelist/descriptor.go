package changelist

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var segmentPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Descriptor is a decoded sort parameter: an ordered list of signed, 1-based
// header references. A positive entry sorts ascending, a negative one
// descending, and the first entry is the primary key.
//
// Wire format: entries joined with ".", e.g. "2.-1".
type Descriptor []int

// Decode parses and validates a raw sort parameter against the registry.
// Empty input, or input made only of separators, yields an empty descriptor.
// Leading zeros are accepted, so "01" decodes to the same descriptor as "1"
// and Encode returns the canonical form.
func Decode(raw string, registry *Registry) (Descriptor, error) {
	var segments []string
	for _, seg := range strings.Split(strings.TrimSpace(raw), ".") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return Descriptor{}, nil
	}

	for _, seg := range segments {
		if !segmentPattern.MatchString(seg) {
			return nil, &SortError{Kind: ErrInvalidSortSyntax, Segment: seg}
		}
	}

	d := make(Descriptor, 0, len(segments))
	for _, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return nil, &SortError{Kind: ErrSortIndexOutOfRange, Segment: seg}
			}
			return nil, &SortError{Kind: ErrInvalidSortSyntax, Segment: seg}
		}
		if n == 0 || n < -registry.Len() || n > registry.Len() {
			return nil, &SortError{Kind: ErrSortIndexOutOfRange, Segment: seg}
		}
		d = append(d, n)
	}

	for i, n := range d {
		if !registry.At(abs(n) - 1).IsSortable() {
			return nil, &SortError{Kind: ErrUnsortableColumn, Segment: segments[i]}
		}
	}

	seen := make(map[int]struct{}, len(d))
	for i, n := range d {
		if _, dup := seen[abs(n)]; dup {
			return nil, &SortError{Kind: ErrDuplicateSortColumn, Segment: segments[i]}
		}
		seen[abs(n)] = struct{}{}
	}

	return d, nil
}

// Encode renders the descriptor in its wire format.
func (d Descriptor) Encode() string {
	parts := make([]string, len(d))
	for i, n := range d {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

func (d Descriptor) String() string {
	return d.Encode()
}

// Position returns the 0-based position of sortIndex in d, ignoring
// direction, or -1.
func (d Descriptor) Position(sortIndex int) int {
	for i, n := range d {
		if abs(n) == sortIndex {
			return i
		}
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
