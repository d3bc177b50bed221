// Package filter holds the place search filter.
package filter

// Filter narrows a place search by geographic scope and required amenities.
// Id lists are deduplicated with first-occurrence order kept. Any id counts,
// including the empty string: unknown ids keep the filter scoped and simply
// match nothing.
type Filter struct {
	stateIDs   []string
	cityIDs    []string
	amenityIDs []string
}

// New creates a Filter.
func New(stateIDs, cityIDs, amenityIDs []string) Filter {
	return Filter{
		stateIDs:   uniq(stateIDs),
		cityIDs:    uniq(cityIDs),
		amenityIDs: uniq(amenityIDs),
	}
}

// StateIDs returns the requested state ids.
func (f Filter) StateIDs() []string { return f.stateIDs }

// CityIDs returns the requested city ids.
func (f Filter) CityIDs() []string { return f.cityIDs }

// AmenityIDs returns the amenities every result must have.
func (f Filter) AmenityIDs() []string { return f.amenityIDs }

// HasScope reports whether states or cities restrict the candidate set.
func (f Filter) HasScope() bool {
	return len(f.stateIDs) > 0 || len(f.cityIDs) > 0
}

// IsEmpty reports whether the filter matches every place.
func (f Filter) IsEmpty() bool {
	return !f.HasScope() && len(f.amenityIDs) == 0
}

// Scope names the filter shape for metrics and logs.
func (f Filter) Scope() string {
	switch {
	case f.IsEmpty():
		return "all"
	case !f.HasScope():
		return "amenities"
	case len(f.amenityIDs) > 0:
		return "scoped_amenities"
	default:
		return "scoped"
	}
}

func uniq(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
