package grid

import (
	"strconv"
	"strings"
	"time"
)

// ValueKind is the resolved type of a single grid cell.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindText
	KindNumber
	KindBool
	KindDate
	KindFormula // formula cell; Raw carries the evaluated result
)

// CellValue is the tagged variant a cell resolves to. Exactly one of the
// typed fields is meaningful, selected by Kind; Raw always carries the
// display text.
type CellValue struct {
	Kind   ValueKind
	Raw    string
	Number float64
	Bool   bool
	Time   time.Time
}

// IsEmpty reports whether the cell resolved to no content.
func (v CellValue) IsEmpty() bool {
	return v.Kind == KindEmpty || strings.TrimSpace(v.Raw) == ""
}

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01-02-06",
	"1/2/06",
	"Jan-06",
}

// resolveValue classifies raw display text into a typed value.
func resolveValue(raw string) CellValue {
	text := strings.TrimSpace(raw)
	if text == "" {
		return CellValue{Kind: KindEmpty}
	}

	switch strings.ToUpper(text) {
	case "TRUE":
		return CellValue{Kind: KindBool, Raw: text, Bool: true}
	case "FALSE":
		return CellValue{Kind: KindBool, Raw: text, Bool: false}
	}

	if n, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", ""), 64); err == nil {
		return CellValue{Kind: KindNumber, Raw: text, Number: n}
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return CellValue{Kind: KindDate, Raw: text, Time: ts}
		}
	}

	return CellValue{Kind: KindText, Raw: text}
}
