package project

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// CellKind identifies how a spreadsheet value was stored
type CellKind int

const (
	KindNull CellKind = iota
	KindText
	KindNumber
	KindDate
)

// DateLayout is the string form of date cells, used for matching and option lists
const DateLayout = "2006-01-02 15:04:05"

// Cell is a single typed spreadsheet value. The zero value is null.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// Null returns an absent value
func Null() Cell {
	return Cell{}
}

// Text returns a text cell. Empty text is treated as null.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: KindText, Text: s}
}

// Number returns a numeric cell
func Number(f float64) Cell {
	return Cell{Kind: KindNumber, Number: f}
}

// Date returns a date cell
func Date(t time.Time) Cell {
	return Cell{Kind: KindDate, Date: t}
}

// IsNull reports whether the cell holds no value
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// String returns the canonical string representation of the value.
// Null cells render as the empty string.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		return c.Date.Format(DateLayout)
	default:
		return ""
	}
}

// MarshalJSON encodes null as null, numbers as numbers and everything else as its string form
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindNumber:
		if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
			return json.Marshal(c.String())
		}
		return json.Marshal(c.Number)
	default:
		return json.Marshal(c.String())
	}
}
