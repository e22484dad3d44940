package parser

import "time"

// RowKind classifies one worksheet row.
type RowKind int

const (
	RowBlank RowKind = iota
	RowMonthMarker
	RowManager
	RowShop
	RowTraining
	RowTimeOff
	RowUnrecognized
)

func (k RowKind) String() string {
	switch k {
	case RowBlank:
		return "blank"
	case RowMonthMarker:
		return "month_marker"
	case RowManager:
		return "manager"
	case RowShop:
		return "shop"
	case RowTraining:
		return "training"
	case RowTimeOff:
		return "time_off"
	default:
		return "unrecognized"
	}
}

// MonthMarker is a (year, month) pair discovered in a worksheet row. It
// scopes every following row until the next marker or end of sheet.
type MonthMarker struct {
	Year  int
	Month time.Month
}

// DaysInMonth returns the number of calendar days in the marker's month.
func (m MonthMarker) DaysInMonth() int {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// Date builds a date within the marker's month.
func (m MonthMarker) Date(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// ColumnDayMap maps a 1-based column index to a day-of-month. Valid only
// within the row range of the month marker that produced it.
type ColumnDayMap map[int]int

// Columns returns the mapped column indices in ascending order.
func (m ColumnDayMap) Columns() []int {
	cols := make([]int, 0, len(m))
	for c := range m {
		cols = append(cols, c)
	}
	for i := 1; i < len(cols); i++ {
		for j := i; j > 0 && cols[j] < cols[j-1]; j-- {
			cols[j], cols[j-1] = cols[j-1], cols[j]
		}
	}
	return cols
}

// RowClass is the classifier's verdict for one row.
type RowClass struct {
	Kind       RowKind
	Label      string
	Marker     MonthMarker // set for RowMonthMarker
	Manager    string      // matched registry name for RowManager, "" when unresolved
	Unresolved bool        // RowManager that carried the PM marker but matched nobody
}
