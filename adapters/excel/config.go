package excel

// ReaderConfig holds configuration for the source workbook
type ReaderConfig struct {
	FilePath string `json:"file_path"`
	// Sheet defaults to the first sheet of the workbook
	Sheet string `json:"sheet"`
}

// ExportFileName is the download name of filtered exports
const ExportFileName = "Filtered_Projects.xlsx"

// ExportSheet is the sheet filtered records are written to
const ExportSheet = "Sheet1"

// ExportColumns is the header row of exports
var ExportColumns = []string{"Code", "Developer", "Project", "Area", "Deliver Date"}

// Export formats
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)
