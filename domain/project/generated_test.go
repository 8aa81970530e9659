package project_test

import (
	"testing"

	"propfilter/domain/project"
	"propfilter/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generated(t *testing.T, seed int64) (*project.WideTable, []project.ProjectRecord) {
	t.Helper()
	table := testkit.NewProjectGenerator(testkit.GeneratorConfig{Developers: 300, NullRate: 0.15, Seed: seed}).Table()
	records, err := project.Normalize(table)
	require.NoError(t, err)
	return table, records
}

func TestNormalizeGeneratedOrdering(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		table, records := generated(t, seed)

		populated := 0
		for _, row := range table.Rows {
			for _, slot := range project.Slots {
				if !row.Get(slot.ProjectColumn).IsNull() {
					populated++
				}
			}
		}
		assert.Len(t, records, populated)

		for i, r := range records {
			assert.Equal(t, i, r.Row)
			assert.False(t, r.Project.IsNull())
			if i > 0 {
				assert.LessOrEqual(t, records[i-1].Slot, r.Slot, "records must be grouped by slot")
			}
		}
	}
}

// bruteForce applies each restriction directly, without the Set helpers
func bruteForce(records []project.ProjectRecord, devs, areas, dates []string) []project.ProjectRecord {
	in := func(values []string, c project.Cell) bool {
		if len(values) == 0 {
			return true
		}
		if c.IsNull() {
			return false
		}
		for _, v := range values {
			if v == c.String() {
				return true
			}
		}
		return false
	}
	out := []project.ProjectRecord{}
	for _, r := range records {
		if in(devs, r.Developer) && in(areas, r.Area) && in(dates, r.DeliverDate) {
			out = append(out, r)
		}
	}
	return out
}

func TestFilterGeneratedMatchesBruteForce(t *testing.T) {
	_, records := generated(t, 9)
	opts := project.Options(records, nil)
	require.NotEmpty(t, opts.Developers)
	require.NotEmpty(t, opts.Areas)
	require.NotEmpty(t, opts.DeliverDates)

	cases := []struct {
		name               string
		devs, areas, dates []string
	}{
		{name: "none"},
		{name: "one developer", devs: opts.Developers[:1]},
		{name: "two areas", areas: opts.Areas[:2]},
		{name: "developer and date", devs: opts.Developers[:3], dates: opts.DeliverDates[:4]},
		{name: "all fields", devs: opts.Developers[:5], areas: opts.Areas[:3], dates: opts.DeliverDates[:6]},
		{name: "unknown value", devs: []string{"nobody"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := project.Filter(records, project.NewCriteria(tc.devs, tc.areas, tc.dates))
			assert.Equal(t, bruteForce(records, tc.devs, tc.areas, tc.dates), got)
		})
	}
}
