package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	reTextMonth  = regexp.MustCompile(`^([A-Za-z]+)\.?[,\-]?\s+(\d{4})$`)
	reSlashMonth = regexp.MustCompile(`^(\d{1,2})\s*/\s*(\d{4})$`)
)

// ParseMonthMarker recognizes a month-marker label: a month name (full or
// abbreviated) followed by a 4-digit year, or a M/YYYY form.
func ParseMonthMarker(label string) (MonthMarker, bool) {
	label = strings.TrimSpace(label)

	if m := reTextMonth.FindStringSubmatch(label); m != nil {
		month, ok := monthNames[strings.ToLower(m[1])]
		if !ok {
			return MonthMarker{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return MonthMarker{Year: year, Month: month}, true
	}

	if m := reSlashMonth.FindStringSubmatch(label); m != nil {
		mm, _ := strconv.Atoi(m[1])
		if mm < 1 || mm > 12 {
			return MonthMarker{}, false
		}
		year, _ := strconv.Atoi(m[2])
		return MonthMarker{Year: year, Month: time.Month(mm)}, true
	}

	return MonthMarker{}, false
}

var weekdayNames = map[string]time.Weekday{
	"su": time.Sunday, "sun": time.Sunday, "sunday": time.Sunday,
	"mo": time.Monday, "mon": time.Monday, "monday": time.Monday,
	"tu": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"we": time.Wednesday, "wed": time.Wednesday, "wednesday": time.Wednesday,
	"th": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fr": time.Friday, "fri": time.Friday, "friday": time.Friday,
	"sa": time.Saturday, "sat": time.Saturday, "saturday": time.Saturday,
}

func parseWeekday(label string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(label))]
	return wd, ok
}

// ResolveCalendarHeader builds the column→day map for one month block from
// the header row(s) that follow the month marker. headerRows holds up to two
// physical rows; index i of a row is column i+1.
//
// Resolution order: an explicit numeric day row wins; otherwise day-of-week
// abbreviations anchored at each recognized Sunday column lay the days out
// across the horizontal week blocks; a weekday row with no Sunday anchor
// degrades to sequential numbering with a warning. No recognizable pattern
// yields an empty map plus a warning.
func ResolveCalendarHeader(marker MonthMarker, headerRows [][]string) (ColumnDayMap, []string) {
	days := marker.DaysInMonth()

	var numericRow, weekdayRow []string
	for _, row := range headerRows {
		if numericRow == nil && countNumericDays(row, days) >= 3 {
			numericRow = row
			continue
		}
		if weekdayRow == nil && countWeekdays(row) >= 2 {
			weekdayRow = row
		}
	}

	if numericRow != nil {
		return resolveNumericHeader(numericRow, days)
	}
	if weekdayRow != nil {
		return resolveWeekdayHeader(marker, weekdayRow, days)
	}

	return ColumnDayMap{}, []string{"no recognizable calendar header"}
}

func countNumericDays(row []string, days int) int {
	n := 0
	for _, cell := range row {
		if d, ok := parseDayNumber(cell); ok && d >= 1 && d <= days {
			n++
		}
	}
	return n
}

func countWeekdays(row []string) int {
	n := 0
	for _, cell := range row {
		if _, ok := parseWeekday(cell); ok {
			n++
		}
	}
	return n
}

func parseDayNumber(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	d, err := strconv.Atoi(cell)
	if err != nil || d < 1 || d > 31 {
		return 0, false
	}
	return d, true
}

// resolveNumericHeader maps columns whose header cell is a bare day number,
// then interpolates single-column gaps between consecutive known days.
func resolveNumericHeader(row []string, days int) (ColumnDayMap, []string) {
	dayMap := ColumnDayMap{}
	var warnings []string

	for i, cell := range row {
		if d, ok := parseDayNumber(cell); ok && d <= days {
			dayMap[i+1] = d
		}
	}

	// A gap flanked by day d and day d+2 can only be d+1.
	cols := dayMap.Columns()
	for i := 0; i+1 < len(cols); i++ {
		left, right := cols[i], cols[i+1]
		if right-left == 2 && dayMap[right]-dayMap[left] == 2 {
			dayMap[left+1] = dayMap[left] + 1
		}
	}

	if len(dayMap) < 28 {
		warnings = append(warnings, fmt.Sprintf("only %d of %d day columns mapped", len(dayMap), days))
	}
	return dayMap, warnings
}

// resolveWeekdayHeader anchors day 1 at the month's starting weekday offset
// from the first Sunday column, wrapping to the next Sunday column after
// every 7 consumed columns.
func resolveWeekdayHeader(marker MonthMarker, row []string, days int) (ColumnDayMap, []string) {
	var sundays []int
	for i, cell := range row {
		if wd, ok := parseWeekday(cell); ok && wd == time.Sunday {
			sundays = append(sundays, i+1)
		}
	}

	if len(sundays) == 0 {
		return resolveSequentialFallback(row, days)
	}

	offset := int(marker.Date(1).Weekday()) // 0 = Sunday

	dayMap := ColumnDayMap{}
	var warnings []string

	block := 0
	col := sundays[0] + offset
	consumed := offset
	for day := 1; day <= days; day++ {
		dayMap[col] = day
		col++
		consumed++
		if consumed == 7 {
			block++
			if block >= len(sundays) {
				if day < days {
					warnings = append(warnings, fmt.Sprintf("week blocks exhausted at day %d of %d", day, days))
				}
				break
			}
			col = sundays[block]
			consumed = 0
		}
	}

	if len(dayMap) < 28 && len(dayMap) < days {
		warnings = append(warnings, fmt.Sprintf("only %d of %d day columns mapped", len(dayMap), days))
	}
	return dayMap, warnings
}

// resolveSequentialFallback numbers columns left to right starting at the
// first weekday header. A last resort: the layout carries no anchor, so the
// produced dates may be wrong.
func resolveSequentialFallback(row []string, days int) (ColumnDayMap, []string) {
	first := -1
	for i, cell := range row {
		if _, ok := parseWeekday(cell); ok {
			first = i + 1
			break
		}
	}
	if first < 0 {
		return ColumnDayMap{}, []string{"no recognizable calendar header"}
	}

	dayMap := ColumnDayMap{}
	for day := 1; day <= days; day++ {
		dayMap[first+day-1] = day
	}
	return dayMap, []string{"weekday header has no Sunday anchor, using sequential column numbering; dates may be unreliable"}
}
