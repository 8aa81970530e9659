package project

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSinglePopulatedSlot(t *testing.T) {
	table := wideTable(row("A1", "X", slot("P1", "Cairo", Text("2025"))))

	got, err := Normalize(table)
	require.NoError(t, err)

	want := []ProjectRecord{{
		Row:         0,
		Slot:        1,
		Code:        Text("A1"),
		Developer:   Text("X"),
		Project:     Text("P1"),
		Area:        Text("Cairo"),
		DeliverDate: Text("2025"),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeOrdersBySlotThenRow(t *testing.T) {
	table := wideTable(
		row("A", "Dev A", slot("A-1", "Cairo", Null()), slot("A-2", "Giza", Null()), emptySlot, emptySlot, slot("A-5", "Alex", Null())),
		row("B", "Dev B", emptySlot, slot("B-2", "Giza", Null())),
		row("C", "Dev C", slot("C-1", "Cairo", Null()), emptySlot, slot("C-3", "Zayed", Null())),
	)

	got, err := Normalize(table)
	require.NoError(t, err)

	var projects []string
	var slots []int
	for i, r := range got {
		assert.Equal(t, i, r.Row, "rows are numbered contiguously")
		projects = append(projects, r.Project.String())
		slots = append(slots, r.Slot)
	}

	assert.Equal(t, []string{"A-1", "C-1", "A-2", "B-2", "C-3", "A-5"}, projects)
	assert.Equal(t, []int{1, 1, 2, 2, 3, 5}, slots)
}

func TestNormalizeNeverEmitsEmptyProject(t *testing.T) {
	table := wideTable(
		row("E", "Empty"),
		row("F", "", slot("F-1", "", Null()), emptySlot, emptySlot, emptySlot, slot("", "Cairo", Text("2030"))),
		row("G", "Dev G", emptySlot, emptySlot, emptySlot, slot("G-4", "Giza", day(2028, time.March, 31))),
	)

	got, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, r := range got {
		assert.False(t, r.Project.IsNull())
	}

	// a missing developer does not drop the project
	assert.Equal(t, "F-1", got[0].Project.String())
	assert.True(t, got[0].Developer.IsNull())
	assert.True(t, got[0].Area.IsNull())
	assert.Equal(t, 4, got[1].Slot)
}

func TestNormalizeKeepsDuplicateCodes(t *testing.T) {
	table := wideTable(
		row("DUP", "X", slot("P1", "Cairo", Null())),
		row("DUP", "Y", slot("P2", "Cairo", Null())),
	)

	got, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "X", got[0].Developer.String())
	assert.Equal(t, "Y", got[1].Developer.String())
}

func TestNormalizeMissingColumns(t *testing.T) {
	cols := []string{}
	for _, c := range RequiredColumns() {
		if c == "Area.3" || c == CodeColumn {
			continue
		}
		cols = append(cols, c)
	}

	got, err := Normalize(&WideTable{Columns: cols})
	assert.Nil(t, got)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{CodeColumn, "Area.3"}, schemaErr.Missing)
	assert.Contains(t, err.Error(), "Area.3")
}

func TestNormalizeNilTable(t *testing.T) {
	_, err := Normalize(nil)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Len(t, schemaErr.Missing, len(RequiredColumns()))
}

func TestNormalizeIsDeterministic(t *testing.T) {
	table := wideTable(
		row("A", "X", slot("P1", "Cairo", Number(2025)), slot("P2", "Giza", day(2026, time.May, 1))),
		row("B", "Y", emptySlot, slot("P3", "Cairo", Text("2027"))),
	)

	first, err := Normalize(table)
	require.NoError(t, err)
	second, err := Normalize(table)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Normalize differs (-first +second):\n%s", diff)
	}
}

func TestRequiredColumns(t *testing.T) {
	cols := RequiredColumns()
	assert.Len(t, cols, 2+3*len(Slots))
	assert.Equal(t, []string{CodeColumn, DeveloperColumn, "Project", "Area", "Deliver Date"}, cols[:5])
	assert.Equal(t, []string{"Project 5", "Area.4", "Deliver Date.4"}, cols[len(cols)-3:])
}
