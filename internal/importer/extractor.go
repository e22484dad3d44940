package importer

import (
	"regexp"
	"strings"

	"crewcal/internal/grid"
	"crewcal/internal/parser"
)

// SheetReader is the cell capability surface the extractor needs. *grid.Sheet
// satisfies it; tests substitute a fake.
type SheetReader interface {
	Text(col, row int) string
	Note(col, row int) string
	MergedRegion(col, row int) (grid.Region, bool)
	HasHighlightFill(col, row int) bool
}

// CellFilter is the pluggable pre-filter hook: return true to drop a cell
// before classification. Used to suppress known phantom values supplied by
// configuration instead of baking one-off corrections into the algorithm.
type CellFilter func(sheet string, col, row int) bool

// CellRecord is the intermediate extracted representation of one assignment
// before materialization. StartDay and EndDay are within the marker's month.
type CellRecord struct {
	RawText     string
	Identifier  string
	Description string
	Address     parser.Address
	AddressText string
	Marker      parser.MonthMarker
	StartDay    int
	EndDay      int
	Row         int
	Column      int
	ManagerName string // resolved registry name, "" when unresolved
}

var reLeadingDigits = regexp.MustCompile(`^\d{4,}`)

// Extractor turns manager-row day cells into CellRecords.
type Extractor struct {
	filter CellFilter
}

// NewExtractor creates an extractor. filter may be nil.
func NewExtractor(filter CellFilter) *Extractor {
	return &Extractor{filter: filter}
}

// ExtractRow inspects every mapped day column of a manager row and emits one
// CellRecord per qualifying cell. Failures degrade to diagnostics on rep;
// the method never fails as a whole.
func (e *Extractor) ExtractRow(sheet SheetReader, sheetName string, row int, marker parser.MonthMarker, days parser.ColumnDayMap, managerName string, rep *Reporter) []CellRecord {
	var records []CellRecord

	for _, col := range days.Columns() {
		text := sheet.Text(col, row)
		if text == "" {
			continue
		}
		if e.filter != nil && e.filter(sheetName, col, row) {
			rep.Infof(sheetName, row, col, "cell excluded by configured pre-filter")
			continue
		}

		startCol, endCol := col, col
		if region, ok := sheet.MergedRegion(col, row); ok {
			// Only the region's first column emits; the rest are covered.
			if col != region.StartCol {
				// When no day maps to the start column the region can never
				// emit. Report that once, from its first mapped column.
				if _, ok := days[region.StartCol]; !ok && firstMappedColumn(days, region.StartCol, col) {
					rep.Warnf(sheetName, row, col, "cell %q has no column-to-day mapping, skipped", text)
				}
				continue
			}
			startCol, endCol = region.StartCol, region.EndCol
		}

		highlighted := sheet.HasHighlightFill(col, row)
		if !highlighted && !looksLikeProjectText(text) {
			continue
		}
		if !highlighted {
			rep.Warnf(sheetName, row, col, "cell %q imported without color markup", text)
		}

		startDay, ok := days[startCol]
		if !ok {
			rep.Warnf(sheetName, row, col, "cell %q has no column-to-day mapping, skipped", text)
			continue
		}
		endDay := mappedEndDay(days, startCol, endCol, marker.DaysInMonth())
		if startDay < 1 || endDay < startDay || endDay > marker.DaysInMonth() {
			rep.Warnf(sheetName, row, col, "cell %q maps to invalid day span %d..%d, skipped", text, startDay, endDay)
			continue
		}

		identifier, description := splitProjectText(text)
		rec := CellRecord{
			RawText:     text,
			Identifier:  identifier,
			Description: description,
			Marker:      marker,
			StartDay:    startDay,
			EndDay:      endDay,
			Row:         row,
			Column:      col,
			ManagerName: managerName,
		}

		if note := sheet.Note(col, row); note != "" {
			rec.AddressText = note
			rec.Address = parser.ParseAddress(note)
		}

		records = append(records, rec)
	}

	return records
}

// mappedEndDay resolves the last day of a merged span. Columns past the last
// mapped day column fall back toward the span start; a span running past the
// end of the month clamps to the month length.
func mappedEndDay(days parser.ColumnDayMap, startCol, endCol, daysInMonth int) int {
	for c := endCol; c >= startCol; c-- {
		if d, ok := days[c]; ok {
			if d > daysInMonth {
				return daysInMonth
			}
			return d
		}
	}
	return 0
}

// firstMappedColumn reports whether col is the first mapped column at or
// after start.
func firstMappedColumn(days parser.ColumnDayMap, start, col int) bool {
	for c := start; c < col; c++ {
		if _, ok := days[c]; ok {
			return false
		}
	}
	return true
}

// looksLikeProjectText is the text-shape heuristic for cells without fill
// markup: a hyphenated identifier pair or a leading numeric job code.
func looksLikeProjectText(text string) bool {
	return strings.Contains(text, "-") || reLeadingDigits.MatchString(text)
}

// splitProjectText splits cell text into identifier and description on the
// first " - ", then on the first bare "-". Text without a separator serves
// as both.
func splitProjectText(text string) (identifier, description string) {
	if i := strings.Index(text, " - "); i >= 0 {
		return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+3:])
	}
	if i := strings.Index(text, "-"); i >= 0 {
		return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
	}
	return text, text
}
