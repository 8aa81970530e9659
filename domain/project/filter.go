package project

// Set is a string membership set. An empty set places no restriction.
type Set map[string]struct{}

// NewSet builds a set from values
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports membership
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of distinct values
func (s Set) Len() int {
	return len(s)
}

// Criteria combines the per-field restrictions with AND
type Criteria struct {
	Developers   Set
	Areas        Set
	DeliverDates Set
}

// NewCriteria builds criteria from user selections
func NewCriteria(developers, areas, deliverDates []string) Criteria {
	return Criteria{
		Developers:   NewSet(developers...),
		Areas:        NewSet(areas...),
		DeliverDates: NewSet(deliverDates...),
	}
}

// IsEmpty reports whether no field is restricted
func (c Criteria) IsEmpty() bool {
	return c.Developers.Len() == 0 && c.Areas.Len() == 0 && c.DeliverDates.Len() == 0
}

// Matches reports whether r satisfies every restricted field
func (c Criteria) Matches(r ProjectRecord) bool {
	return matchField(c.Developers, r.Developer) &&
		matchField(c.Areas, r.Area) &&
		matchField(c.DeliverDates, r.DeliverDate)
}

// matchField compares on the string form so dates stored as text and as
// date cells meet on the same representation. Null never matches a restriction.
func matchField(set Set, cell Cell) bool {
	if set.Len() == 0 {
		return true
	}
	if cell.IsNull() {
		return false
	}
	return set.Has(cell.String())
}

// Filter returns the records matching c in their original order.
// The input is never modified and the result is always a fresh slice.
func Filter(records []ProjectRecord, c Criteria) []ProjectRecord {
	out := make([]ProjectRecord, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Apply filters records and reports the match count alongside
func Apply(records []ProjectRecord, c Criteria) Result {
	matched := Filter(records, c)
	return Result{Records: matched, Count: len(matched)}
}
