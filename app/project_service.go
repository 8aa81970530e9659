package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"propfilter/adapters/excel"
	"propfilter/domain/project"
	"propfilter/internal/errors"
	"propfilter/internal/logger"
	"propfilter/ports"

	"github.com/google/uuid"
)

// ProjectService answers option, filter and export requests against one source
type ProjectService struct {
	tables   ports.ProjectTablePort
	source   string
	collator project.Collator
	log      *logger.Logger
}

// FilterOutcome is a filter result together with the source version it was computed from
type FilterOutcome struct {
	project.Result
	Digest   string    `json:"digest"`
	LoadedAt time.Time `json:"loaded_at"`
}

// ExportOutcome describes a written export
type ExportOutcome struct {
	ID       string
	Count    int
	Format   string
	FileName string
}

// NewProjectService creates a service over the table for source
func NewProjectService(tables ports.ProjectTablePort, source string, collator project.Collator) *ProjectService {
	return &ProjectService{
		tables:   tables,
		source:   source,
		collator: collator,
		log:      logger.Named("projects"),
	}
}

// Source returns the configured source path
func (s *ProjectService) Source() string {
	return s.source
}

// Options returns the selectable values for each filter field
func (s *ProjectService) Options(ctx context.Context) (project.FilterOptions, error) {
	table, err := s.tables.Table(ctx, s.source)
	if err != nil {
		return project.FilterOptions{}, err
	}
	return project.Options(table.Records, s.collator), nil
}

// Filter applies criteria to the current table
func (s *ProjectService) Filter(ctx context.Context, criteria project.Criteria) (*FilterOutcome, error) {
	table, err := s.tables.Table(ctx, s.source)
	if err != nil {
		return nil, err
	}

	result := project.Apply(table.Records, criteria)
	logger.C(ctx).Debug().
		Int("developers", criteria.Developers.Len()).
		Int("areas", criteria.Areas.Len()).
		Int("dates", criteria.DeliverDates.Len()).
		Int("matched", result.Count).
		Msg("filter applied")

	return &FilterOutcome{Result: result, Digest: table.Digest, LoadedAt: table.LoadedAt}, nil
}

// Export filters and writes the matching records to w
func (s *ProjectService) Export(ctx context.Context, criteria project.Criteria, format string, w io.Writer) (*ExportOutcome, error) {
	if format == "" {
		format = excel.FormatXLSX
	}
	if format != excel.FormatXLSX && format != excel.FormatCSV {
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported export format %q", format))
	}

	outcome, err := s.Filter(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if err := excel.Write(w, format, outcome.Records); err != nil {
		return nil, errors.ExportError(err)
	}

	export := &ExportOutcome{
		ID:       uuid.NewString(),
		Count:    outcome.Count,
		Format:   format,
		FileName: excel.FileName(format),
	}
	logger.C(ctx).Info().
		Str("export_id", export.ID).
		Str("format", format).
		Int("records", export.Count).
		Msg("export written")
	return export, nil
}

// Reload drops the cached table and rebuilds it from the source
func (s *ProjectService) Reload(ctx context.Context) (*ports.ProjectTable, error) {
	s.tables.Invalidate(s.source)
	return s.tables.Table(ctx, s.source)
}
