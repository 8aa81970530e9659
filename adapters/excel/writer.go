package excel

import (
	"encoding/csv"
	"fmt"
	"io"

	"propfilter/domain/project"

	"github.com/xuri/excelize/v2"
)

// exportDateFormat renders date cells in exported workbooks
const exportDateFormat = "yyyy-mm-dd hh:mm:ss"

// WriteXLSX writes records to a single-sheet workbook without an index column
func WriteXLSX(dst io.Writer, records []project.ProjectRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	dateFmt := exportDateFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return fmt.Errorf("failed to create date style: %w", err)
	}

	sw, err := f.NewStreamWriter(ExportSheet)
	if err != nil {
		return fmt.Errorf("failed to open stream writer: %w", err)
	}

	header := make([]interface{}, len(ExportColumns))
	for i, col := range ExportColumns {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		cells := exportCells(rec)
		values := make([]interface{}, len(cells))
		for j, c := range cells {
			values[j] = xlsxValue(c, dateStyle)
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(axis, values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush workbook: %w", err)
	}
	if _, err := f.WriteTo(dst); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteCSV writes records with the same header as the workbook export
func WriteCSV(dst io.Writer, records []project.ProjectRecord) error {
	w := csv.NewWriter(dst)
	if err := w.Write(ExportColumns); err != nil {
		return err
	}
	for _, rec := range records {
		cells := exportCells(rec)
		line := make([]string, len(cells))
		for i, c := range cells {
			line[i] = c.String()
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Write dispatches on format
func Write(dst io.Writer, format string, records []project.ProjectRecord) error {
	switch format {
	case FormatXLSX, "":
		return WriteXLSX(dst, records)
	case FormatCSV:
		return WriteCSV(dst, records)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// ContentType returns the MIME type of an export format
func ContentType(format string) string {
	if format == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileName returns the download name of an export format
func FileName(format string) string {
	if format == FormatCSV {
		return "Filtered_Projects.csv"
	}
	return ExportFileName
}

func exportCells(rec project.ProjectRecord) []project.Cell {
	return []project.Cell{rec.Code, rec.Developer, rec.Project, rec.Area, rec.DeliverDate}
}

func xlsxValue(c project.Cell, dateStyle int) interface{} {
	switch c.Kind {
	case project.KindText:
		return c.Text
	case project.KindNumber:
		return c.Number
	case project.KindDate:
		return excelize.Cell{StyleID: dateStyle, Value: c.Date}
	default:
		return nil
	}
}
