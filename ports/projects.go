package ports

import (
	"context"
	"time"

	"propfilter/domain/project"
)

// SourceLoaderPort parses a source workbook into a wide table
type SourceLoaderPort interface {
	LoadWide(ctx context.Context, path string) (*project.WideTable, error)
}

// ProjectTable is a normalized table and the identity of the source it was built from.
// Records is shared between callers and must be treated as read-only.
type ProjectTable struct {
	SourceKey string
	Digest    string
	Records   []project.ProjectRecord
	LoadedAt  time.Time
}

// ProjectTablePort returns the normalized table for a source, rebuilding it when the source changes
type ProjectTablePort interface {
	Table(ctx context.Context, path string) (*ProjectTable, error)
	Invalidate(path string)
}
