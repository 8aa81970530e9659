package project

import "time"

// wideTable builds a table with every required column and the given rows
func wideTable(rows ...WideRecord) *WideTable {
	return &WideTable{Columns: RequiredColumns(), Rows: rows}
}

func row(code, dev string, slots ...[3]Cell) WideRecord {
	r := WideRecord{
		CodeColumn:      Text(code),
		DeveloperColumn: Text(dev),
	}
	for i, s := range slots {
		r[Slots[i].ProjectColumn] = s[0]
		r[Slots[i].AreaColumn] = s[1]
		r[Slots[i].DeliverDateColumn] = s[2]
	}
	return r
}

func slot(project, area string, date Cell) [3]Cell {
	return [3]Cell{Text(project), Text(area), date}
}

var emptySlot = [3]Cell{}

func day(y int, m time.Month, d int) Cell {
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
