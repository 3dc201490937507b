package core

// Filter narrows a dataset by the user-selected predicates.
//
// The date range is applied only when both endpoints are present; a single
// endpoint leaves the date dimension unfiltered. Region is an exact label
// match with AllRegions as the pass-through sentinel.
type Filter struct {
	Start  Date
	End    Date
	Region string
}

// HasDateRange reports whether both endpoints are set.
func (f Filter) HasDateRange() bool {
	return !f.Start.IsEmpty() && !f.End.IsEmpty()
}

// Apply returns a new dataset view with the filter applied. The receiver is
// never mutated.
func (ds Dataset) Apply(f Filter) Dataset {
	out := make([]Record, 0, len(ds.Records))
	for _, r := range ds.Records {
		if f.HasDateRange() {
			if r.Date.Before(f.Start.Time) || r.Date.After(f.End.Time) {
				continue
			}
		}
		if f.Region != "" && f.Region != AllRegions && r.Region != f.Region {
			continue
		}
		out = append(out, r)
	}
	return Dataset{Records: out}
}
