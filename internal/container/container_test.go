package container

import (
	"context"
	"path/filepath"
	"testing"

	"propfilter/internal/config"
	"propfilter/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWiresService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FF_modified.xlsx")
	gen := testkit.NewProjectGenerator(testkit.GeneratorConfig{Developers: 12, Seed: 7})
	require.NoError(t, gen.WriteWorkbook(path))

	c, err := New(&config.Config{
		Data:  config.DataConfig{SourceFile: path, Collation: "ar"},
		Cache: config.CacheConfig{Size: 2},
	})
	require.NoError(t, err)

	opts, err := c.Service.Options(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, opts.Developers)
	assert.Equal(t, 1, c.Store.Len())
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&config.Config{Cache: config.CacheConfig{Size: 0}})
	assert.Error(t, err)
}
