package project

import "sort"

// Collator orders option labels. golang.org/x/text/collate.Collator satisfies it.
type Collator interface {
	SortStrings(x []string)
}

// FilterOptions holds the selectable values for each filter field
type FilterOptions struct {
	Developers   []string `json:"developers"`
	Areas        []string `json:"areas"`
	DeliverDates []string `json:"deliver_dates"`
}

// Options collects the distinct non-null values of each filterable field.
// A nil collator sorts by code point.
func Options(records []ProjectRecord, collator Collator) FilterOptions {
	devs := make(map[string]struct{})
	areas := make(map[string]struct{})
	dates := make(map[string]struct{})

	for _, r := range records {
		if !r.Developer.IsNull() {
			devs[r.Developer.String()] = struct{}{}
		}
		if !r.Area.IsNull() {
			areas[r.Area.String()] = struct{}{}
		}
		if !r.DeliverDate.IsNull() {
			dates[r.DeliverDate.String()] = struct{}{}
		}
	}

	return FilterOptions{
		Developers:   sortedKeys(devs, collator),
		Areas:        sortedKeys(areas, collator),
		DeliverDates: sortedKeys(dates, collator),
	}
}

func sortedKeys(m map[string]struct{}, collator Collator) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if collator != nil {
		collator.SortStrings(keys)
	} else {
		sort.Strings(keys)
	}
	return keys
}
