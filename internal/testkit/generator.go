package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"propfilter/domain/project"

	"github.com/xuri/excelize/v2"
)

// GeneratorConfig configures the synthetic project workbook generator
type GeneratorConfig struct {
	Developers int     `json:"developers"`
	FillRate   float64 `json:"fill_rate"` // chance that a project slot is populated
	NullRate   float64 `json:"null_rate"` // chance that area, date or developer is blank
	Seed       int64   `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Developers: 200,
		FillRate:   0.55,
		NullRate:   0.1,
		Seed:       42,
	}
}

var (
	developerNames = []string{"Emaar Misr", "Sodic", "Palm Hills", "Mountain View", "Hassan Allam", "Tatweer Misr", "Ora", "Madinet Masr", "Hyde Park", "La Vista"}
	areaNames      = []string{"New Cairo", "Sheikh Zayed", "6th of October", "North Coast", "Ain Sokhna", "New Capital", "Mostakbal City"}
	projectWords   = []string{"Gardens", "Heights", "Bay", "Residence", "Park", "Hills", "Views", "Walk"}
)

// ProjectGenerator builds deterministic wide tables shaped like the source workbook
type ProjectGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewProjectGenerator creates a generator; zero fields fall back to defaults
func NewProjectGenerator(config GeneratorConfig) *ProjectGenerator {
	def := DefaultGeneratorConfig()
	if config.Developers <= 0 {
		config.Developers = def.Developers
	}
	if config.FillRate <= 0 {
		config.FillRate = def.FillRate
	}
	if config.NullRate < 0 {
		config.NullRate = 0
	}
	return &ProjectGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Table generates a wide table with every required column
func (g *ProjectGenerator) Table() *project.WideTable {
	rows := make([]project.WideRecord, 0, g.config.Developers)
	for i := 0; i < g.config.Developers; i++ {
		row := project.WideRecord{
			project.CodeColumn:      project.Text(fmt.Sprintf("D%04d", i+1)),
			project.DeveloperColumn: g.maybe(project.Text(developerNames[g.rng.Intn(len(developerNames))])),
		}
		for _, slot := range project.Slots {
			if g.rng.Float64() >= g.config.FillRate {
				continue
			}
			name := fmt.Sprintf("%s %s %d", areaNames[g.rng.Intn(len(areaNames))], projectWords[g.rng.Intn(len(projectWords))], i+1)
			row[slot.ProjectColumn] = project.Text(name)
			row[slot.AreaColumn] = g.maybe(project.Text(areaNames[g.rng.Intn(len(areaNames))]))
			row[slot.DeliverDateColumn] = g.maybe(g.deliverDate())
		}
		rows = append(rows, row)
	}
	return &project.WideTable{Columns: project.RequiredColumns(), Rows: rows}
}

// deliverDate mixes the storage shapes seen in real workbooks: years, dates and free text
func (g *ProjectGenerator) deliverDate() project.Cell {
	year := 2024 + g.rng.Intn(6)
	switch g.rng.Intn(3) {
	case 0:
		return project.Number(float64(year))
	case 1:
		return project.Date(time.Date(year, time.Month(1+g.rng.Intn(12)), 1, 0, 0, 0, 0, time.UTC))
	default:
		return project.Text(fmt.Sprintf("Q%d %d", 1+g.rng.Intn(4), year))
	}
}

func (g *ProjectGenerator) maybe(c project.Cell) project.Cell {
	if g.rng.Float64() < g.config.NullRate {
		return project.Null()
	}
	return c
}

// SourceHeader returns the header row as the source workbook spells it, with
// the area and date headers repeated per project group
func SourceHeader() []string {
	header := []string{project.CodeColumn, project.DeveloperColumn}
	for _, slot := range project.Slots {
		header = append(header, slot.ProjectColumn, "Area", "Deliver Date")
	}
	return header
}

// WriteWorkbook writes a generated table to path in the source layout
func (g *ProjectGenerator) WriteWorkbook(path string) error {
	return WriteWideWorkbook(path, g.Table())
}

// WriteWideWorkbook writes table to path using the source header spelling
func WriteWideWorkbook(path string, table *project.WideTable) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := SourceHeader()
	for j, h := range header {
		axis, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, axis, h); err != nil {
			return err
		}
	}

	columns := project.RequiredColumns()
	for i, row := range table.Rows {
		for j, col := range columns {
			axis, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := setCell(f, sheet, axis, row.Get(col)); err != nil {
				return fmt.Errorf("failed to write %s: %w", axis, err)
			}
		}
	}

	return f.SaveAs(path)
}

func setCell(f *excelize.File, sheet, axis string, c project.Cell) error {
	switch c.Kind {
	case project.KindText:
		return f.SetCellStr(sheet, axis, c.Text)
	case project.KindNumber:
		return f.SetCellFloat(sheet, axis, c.Number, -1, 64)
	case project.KindDate:
		return f.SetCellValue(sheet, axis, c.Date)
	default:
		return nil
	}
}
