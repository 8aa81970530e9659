package excel

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"propfilter/domain/project"
	"propfilter/internal/errors"
	"propfilter/internal/logger"

	"github.com/xuri/excelize/v2"
)

// DataReader reads the wide project sheet from Excel or CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
	log      *logger.Logger
}

// NewDataReader creates a reader; the file type follows the extension
func NewDataReader(cfg ReaderConfig) *DataReader {
	return &DataReader{
		filePath: cfg.FilePath,
		fileType: FileType(cfg.FilePath),
		sheet:    cfg.Sheet,
		log:      logger.Named("excel"),
	}
}

// FileType returns "csv" for .csv paths and "xlsx" otherwise
func FileType(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return FormatCSV
	}
	return FormatXLSX
}

// Read opens the configured file and parses it into a wide table
func (r *DataReader) Read(ctx context.Context) (*project.WideTable, error) {
	r.log.Debug().Str("file", r.filePath).Str("type", r.fileType).Msg("reading source")

	file, err := os.Open(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.NotFound(r.filePath), "source file missing")
		}
		return nil, errors.SourceError(r.filePath, err)
	}
	defer file.Close()

	return r.ReadFrom(ctx, file)
}

// ReadFrom parses an already opened source
func (r *DataReader) ReadFrom(ctx context.Context, src io.Reader) (*project.WideTable, error) {
	start := time.Now()

	var (
		grid rawGrid
		err  error
	)
	switch r.fileType {
	case FormatCSV:
		grid, err = r.readCSV(src)
	case FormatXLSX:
		grid, err = r.readXLSX(src)
	default:
		err = fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, errors.SourceError(r.filePath, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table := r.processRows(grid)
	r.log.Info().
		Str("file", r.filePath).
		Int("columns", len(table.Columns)).
		Int("rows", len(table.Rows)).
		Dur("took", time.Since(start)).
		Msg("source loaded")
	return table, nil
}

// readXLSX reads both the display text and the stored value of every cell so
// date-formatted serial numbers can be told apart from plain numbers
func (r *DataReader) readXLSX(src io.Reader) (rawGrid, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return rawGrid{}, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return rawGrid{}, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	formatted, err := f.GetRows(sheet)
	if err != nil {
		return rawGrid{}, fmt.Errorf("failed to read %s: %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return rawGrid{}, fmt.Errorf("failed to read %s: %w", sheet, err)
	}
	if len(formatted) == 0 {
		return rawGrid{}, fmt.Errorf("sheet %s has no header row", sheet)
	}
	return rawGrid{formatted: formatted, raw: raw}, nil
}

func (r *DataReader) readCSV(src io.Reader) (rawGrid, error) {
	// tolerate a UTF-8 byte order mark written by spreadsheet tools
	data, err := io.ReadAll(src)
	if err != nil {
		return rawGrid{}, fmt.Errorf("failed to read CSV file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return rawGrid{}, fmt.Errorf("failed to read CSV file: %w", err)
	}
	if len(rows) == 0 {
		return rawGrid{}, fmt.Errorf("CSV file has no header row")
	}
	return rawGrid{formatted: rows}, nil
}

// processRows converts the grid into a wide table keyed by de-duplicated headers
func (r *DataReader) processRows(grid rawGrid) *project.WideTable {
	headerRow := grid.formatted[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}
	headers = DedupeHeaders(headers)

	rows := make([]project.WideRecord, 0, len(grid.formatted)-1)
	for i := 1; i < len(grid.formatted); i++ {
		rec := make(project.WideRecord, len(headers))
		for j, header := range headers {
			if r.fileType == FormatCSV {
				rec[header] = csvCell(grid.at(grid.formatted, i, j))
			} else {
				rec[header] = xlsxCell(grid.at(grid.raw, i, j), grid.at(grid.formatted, i, j))
			}
		}
		rows = append(rows, rec)
	}

	return &project.WideTable{Columns: headers, Rows: rows}
}

// DedupeHeaders renames repeated headers to name.1, name.2 and so on, and
// names blank headers "Unnamed: <index>"
func DedupeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	counts := make(map[string]int)

	for i, h := range headers {
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		if used[name] {
			n := counts[h]
			for {
				n++
				name = fmt.Sprintf("%s.%d", h, n)
				if !used[name] {
					break
				}
			}
			counts[h] = n
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// xlsxCell types a workbook cell from its stored and displayed forms.
// Whitespace-only text is kept as text.
func xlsxCell(raw, formatted string) project.Cell {
	if isMissing(raw) {
		return project.Null()
	}
	if f, ok := parseFinite(raw); ok {
		if formatted != raw && looksLikeDate(formatted) {
			if t, err := excelize.ExcelDateToTime(f, false); err == nil {
				return project.Date(t)
			}
		}
		return project.Number(f)
	}
	return project.Text(raw)
}

func looksLikeDate(s string) bool {
	if _, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64); err == nil {
		return false
	}
	return strings.ContainsAny(s, "-/") || strings.Contains(s, ":")
}

// parseFinite rejects NaN and the infinities so they stay text
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func csvCell(value string) project.Cell {
	if isMissing(value) {
		return project.Null()
	}
	for _, layout := range csvDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return project.Date(t)
		}
	}
	if f, ok := parseFinite(value); ok {
		return project.Number(f)
	}
	return project.Text(value)
}
