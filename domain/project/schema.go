package project

import (
	"fmt"
	"strings"
)

// Base columns carried onto every normalized record
const (
	CodeColumn      = "Code"
	DeveloperColumn = "Developer name"
)

// Slot maps one repeated project group of the wide layout onto the canonical fields
type Slot struct {
	Index             int
	ProjectColumn     string
	AreaColumn        string
	DeliverDateColumn string
}

// Slots lists the fixed project groups in the order they are flattened
var Slots = []Slot{
	{Index: 1, ProjectColumn: "Project", AreaColumn: "Area", DeliverDateColumn: "Deliver Date"},
	{Index: 2, ProjectColumn: "Project 2", AreaColumn: "Area.1", DeliverDateColumn: "Deliver Date.1"},
	{Index: 3, ProjectColumn: "Project 3", AreaColumn: "Area.2", DeliverDateColumn: "Deliver Date.2"},
	{Index: 4, ProjectColumn: "Project 4", AreaColumn: "Area.3", DeliverDateColumn: "Deliver Date.3"},
	{Index: 5, ProjectColumn: "Project 5", AreaColumn: "Area.4", DeliverDateColumn: "Deliver Date.4"},
}

// Columns returns the slot's source columns in project, area, date order
func (s Slot) Columns() []string {
	return []string{s.ProjectColumn, s.AreaColumn, s.DeliverDateColumn}
}

// project projects a wide row down to the canonical record for this slot
func (s Slot) project(row WideRecord) ProjectRecord {
	return ProjectRecord{
		Slot:        s.Index,
		Code:        row.Get(CodeColumn),
		Developer:   row.Get(DeveloperColumn),
		Project:     row.Get(s.ProjectColumn),
		Area:        row.Get(s.AreaColumn),
		DeliverDate: row.Get(s.DeliverDateColumn),
	}
}

// RequiredColumns returns every source column Normalize expects, base columns first
func RequiredColumns() []string {
	cols := []string{CodeColumn, DeveloperColumn}
	for _, slot := range Slots {
		cols = append(cols, slot.Columns()...)
	}
	return cols
}

// SchemaError reports source columns absent from a wide table
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// CheckColumns returns a *SchemaError naming every required column not in columns
func CheckColumns(columns []string) error {
	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}

	var missing []string
	for _, col := range RequiredColumns() {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
