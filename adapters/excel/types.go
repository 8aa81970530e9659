package excel

import "time"

// csvDateLayouts are the date shapes recognised in CSV sources
var csvDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// naTokens are the spreadsheet markers read as missing values
var naTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {},
	"None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isMissing(s string) bool {
	if s == "" {
		return true
	}
	_, ok := naTokens[s]
	return ok
}

// rawGrid is a sheet as read: formatted values next to raw stored values
type rawGrid struct {
	formatted [][]string
	raw       [][]string
}

func (g rawGrid) at(rows [][]string, i, j int) string {
	if i >= len(rows) || j >= len(rows[i]) {
		return ""
	}
	return rows[i][j]
}
