package excel

import (
	"context"

	"propfilter/domain/project"
	"propfilter/ports"
)

// SourceLoader reads source workbooks for the table store
type SourceLoader struct {
	sheet string
}

var _ ports.SourceLoaderPort = (*SourceLoader)(nil)

// NewSourceLoader creates a loader reading the given sheet, or the first one when empty
func NewSourceLoader(sheet string) *SourceLoader {
	return &SourceLoader{sheet: sheet}
}

// LoadWide reads path into a wide table
func (l *SourceLoader) LoadWide(ctx context.Context, path string) (*project.WideTable, error) {
	return NewDataReader(ReaderConfig{FilePath: path, Sheet: l.sheet}).Read(ctx)
}
