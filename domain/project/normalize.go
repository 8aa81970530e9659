package project

// Normalize flattens wide rows into project records.
//
// Every slot is projected over all rows before the next slot is visited, so the
// output is grouped by slot and keeps source row order inside each group. Records
// without a project are dropped and the survivors are numbered from 0.
func Normalize(table *WideTable) ([]ProjectRecord, error) {
	if table == nil {
		table = &WideTable{}
	}
	if err := CheckColumns(table.Columns); err != nil {
		return nil, err
	}

	out := make([]ProjectRecord, 0, len(table.Rows))
	for _, slot := range Slots {
		for _, row := range table.Rows {
			rec := slot.project(row)
			if rec.Project.IsNull() {
				continue
			}
			rec.Row = len(out)
			out = append(out, rec)
		}
	}
	return out, nil
}
