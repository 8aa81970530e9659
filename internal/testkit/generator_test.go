package testkit

import (
	"context"
	"path/filepath"
	"testing"

	"propfilter/adapters/excel"
	"propfilter/domain/project"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	a := NewProjectGenerator(GeneratorConfig{Developers: 50, Seed: 3}).Table()
	b := NewProjectGenerator(GeneratorConfig{Developers: 50, Seed: 3}).Table()

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different tables (-a +b):\n%s", diff)
	}
	assert.Len(t, a.Rows, 50)
	assert.Equal(t, project.RequiredColumns(), a.Columns)
}

func TestSourceHeaderDedupesToRequiredColumns(t *testing.T) {
	assert.Equal(t, project.RequiredColumns(), excel.DedupeHeaders(SourceHeader()))
}

func TestWorkbookRoundTrip(t *testing.T) {
	gen := NewProjectGenerator(GeneratorConfig{Developers: 40, Seed: 11})
	want, err := project.Normalize(gen.Table())
	require.NoError(t, err)
	require.NotEmpty(t, want)

	path := filepath.Join(t.TempDir(), "generated.xlsx")
	require.NoError(t, NewProjectGenerator(GeneratorConfig{Developers: 40, Seed: 11}).WriteWorkbook(path))

	table, err := excel.NewDataReader(excel.ReaderConfig{FilePath: path}).Read(context.Background())
	require.NoError(t, err)
	got, err := project.Normalize(table)
	require.NoError(t, err)

	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Project.String(), got[i].Project.String(), "row %d", i)
		assert.Equal(t, want[i].Developer.String(), got[i].Developer.String(), "row %d", i)
		assert.Equal(t, want[i].Area.String(), got[i].Area.String(), "row %d", i)
		assert.Equal(t, want[i].DeliverDate.String(), got[i].DeliverDate.String(), "row %d", i)
		assert.Equal(t, want[i].Slot, got[i].Slot, "row %d", i)
	}
}
