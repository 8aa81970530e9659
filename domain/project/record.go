// Package project reshapes wide developer rows into one record per project and
// filters the normalized table by developer, area and delivery date.
package project

// WideRecord is one source row keyed by column name
type WideRecord map[string]Cell

// Get returns the named cell, or null when the row has no such column
func (r WideRecord) Get(column string) Cell {
	if r == nil {
		return Null()
	}
	return r[column]
}

// WideTable is a parsed source sheet with the header row kept separately
type WideTable struct {
	Columns []string
	Rows    []WideRecord
}

// ProjectRecord is a normalized row: one project of one developer
type ProjectRecord struct {
	Row         int  `json:"row"`
	Slot        int  `json:"slot"`
	Code        Cell `json:"code"`
	Developer   Cell `json:"developer"`
	Project     Cell `json:"project"`
	Area        Cell `json:"area"`
	DeliverDate Cell `json:"deliver_date"`
}

// Result is a filtered table together with its size
type Result struct {
	Records []ProjectRecord `json:"records"`
	Count   int             `json:"count"`
}
