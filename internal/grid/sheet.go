package grid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Region is a merged cell range. Coordinates are 1-based and inclusive.
type Region struct {
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
	Value    string
}

// Width returns the number of columns the region spans.
func (r Region) Width() int {
	return r.EndCol - r.StartCol + 1
}

type coord struct {
	col int
	row int
}

// Sheet wraps one worksheet with resolved cell access: cached rows, a merged
// region index, cell notes, and fill-style lookup. Read-only.
type Sheet struct {
	file   *excelize.File
	name   string
	rows   [][]string
	merged map[coord]Region
	notes  map[coord]string
}

// OpenSheet loads a worksheet into a Sheet. Merged regions and comments are
// indexed once up front; style lookups stay lazy.
func OpenSheet(f *excelize.File, name string) (*Sheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}

	s := &Sheet{
		file:   f,
		name:   name,
		rows:   rows,
		merged: make(map[coord]Region),
		notes:  make(map[coord]string),
	}

	if err := s.indexMergedRegions(); err != nil {
		return nil, err
	}
	s.indexNotes()

	return s, nil
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// RowCount returns the number of populated rows.
func (s *Sheet) RowCount() int {
	return len(s.rows)
}

// Row returns the raw display texts of a 1-based row; index i of the result
// is column i+1. Nil when the row is out of range.
func (s *Sheet) Row(row int) []string {
	if row < 1 || row > len(s.rows) {
		return nil
	}
	return s.rows[row-1]
}

// Text returns the trimmed display text of a cell. For cells covered by a
// merged region the region's value is returned, so every covered column of a
// merged range reads as populated. Formula cells with no cached result are
// evaluated, so text reads see computed values. Coordinates are 1-based.
func (s *Sheet) Text(col, row int) string {
	if t := s.cachedText(col, row); t != "" {
		return t
	}
	if v := s.Value(col, row); v.Kind == KindFormula {
		return strings.TrimSpace(v.Raw)
	}
	return ""
}

// cachedText reads the merged-region value or the cached row display text,
// with no formula evaluation.
func (s *Sheet) cachedText(col, row int) string {
	if region, ok := s.MergedRegion(col, row); ok {
		return strings.TrimSpace(region.Value)
	}
	if row < 1 || row > len(s.rows) {
		return ""
	}
	r := s.rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return strings.TrimSpace(r[col-1])
}

// Value resolves a cell to a typed value. Formula cells are evaluated and
// tagged KindFormula with the computed result in Raw.
func (s *Sheet) Value(col, row int) CellValue {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return CellValue{Kind: KindEmpty}
	}

	if formula, err := s.file.GetCellFormula(s.name, ref); err == nil && formula != "" {
		result, err := s.file.CalcCellValue(s.name, ref)
		if err != nil {
			// Fall back to the cached display text when evaluation fails.
			result = s.cachedText(col, row)
		}
		v := resolveValue(result)
		v.Kind = KindFormula
		return v
	}

	return resolveValue(s.cachedText(col, row))
}

// MergedRegion returns the merged region covering a cell, if any.
func (s *Sheet) MergedRegion(col, row int) (Region, bool) {
	region, ok := s.merged[coord{col, row}]
	return region, ok
}

// Note returns the cell's comment text with known wrapper envelopes
// (threaded-comment preamble, author prefix line) stripped. Empty when the
// cell carries no note.
func (s *Sheet) Note(col, row int) string {
	return s.notes[coord{col, row}]
}

// HasHighlightFill reports whether the cell carries a non-default pattern
// fill. White and unset fills do not count.
func (s *Sheet) HasHighlightFill(col, row int) bool {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	styleID, err := s.file.GetCellStyle(s.name, ref)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := s.file.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.Fill.Type != "pattern" || style.Fill.Pattern == 0 {
		return false
	}
	for _, c := range style.Fill.Color {
		if !isNeutralFillColor(c) {
			return true
		}
	}
	return false
}

func isNeutralFillColor(c string) bool {
	c = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
	switch c {
	case "", "FFFFFF", "FFFFFFFF", "00000000":
		return true
	}
	return false
}

func (s *Sheet) indexMergedRegions() error {
	cells, err := s.file.GetMergeCells(s.name)
	if err != nil {
		return fmt.Errorf("read merged cells of %q: %w", s.name, err)
	}

	for _, mc := range cells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		region := Region{
			StartCol: startCol,
			StartRow: startRow,
			EndCol:   endCol,
			EndRow:   endRow,
			Value:    mc.GetCellValue(),
		}
		for r := startRow; r <= endRow; r++ {
			for c := startCol; c <= endCol; c++ {
				s.merged[coord{c, r}] = region
			}
		}
	}
	return nil
}

func (s *Sheet) indexNotes() {
	comments, err := s.file.GetComments(s.name)
	if err != nil {
		return
	}
	for _, cm := range comments {
		col, row, err := excelize.CellNameToCoordinates(cm.Cell)
		if err != nil {
			continue
		}
		text := cm.Text
		if text == "" {
			var b strings.Builder
			for _, run := range cm.Paragraph {
				b.WriteString(run.Text)
			}
			text = b.String()
		}
		if stripped := stripNoteEnvelope(text); stripped != "" {
			s.notes[coord{col, row}] = stripped
		}
	}
}

// stripNoteEnvelope removes wrapper text that spreadsheet programs prepend
// to cell comments: the "[Threaded comment]" preamble and a leading
// "Author:" line.
func stripNoteEnvelope(text string) string {
	t := strings.TrimSpace(text)

	if strings.HasPrefix(t, "[Threaded comment]") {
		if i := strings.Index(t, "Comment:"); i >= 0 {
			return strings.TrimSpace(t[i+len("Comment:"):])
		}
		if j := strings.IndexByte(t, '\n'); j >= 0 {
			return strings.TrimSpace(t[j+1:])
		}
		return ""
	}

	if j := strings.IndexByte(t, '\n'); j >= 0 {
		first := strings.TrimSpace(t[:j])
		if strings.HasSuffix(first, ":") && len(first) <= 64 {
			return strings.TrimSpace(t[j+1:])
		}
	}

	return t
}
