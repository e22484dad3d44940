package importer

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"crewcal/internal/grid"
	"crewcal/internal/model"
	"crewcal/internal/parser"
)

// ShopProjectIdentifier is the identifier of the fixed project shop rows
// assign to; TrainingProjectIdentifier likewise for training rows.
const (
	ShopProjectIdentifier     = "SHOP"
	TrainingProjectIdentifier = "TRAINING"
)

// Options configures one import run.
type Options struct {
	FilePath       string
	Status         model.ProjectStatus // initial status of created projects
	TravelOutDays  int
	TravelBackDays int
	Filter         CellFilter           // optional phantom-cell pre-filter
	OnProgress     func(ProgressEvent)  // optional, called synchronously
}

// ProgressEvent reports run milestones to an observer.
type ProgressEvent struct {
	Type      string    `json:"type"` // start/sheet_start/sheet_done/done/error
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Coordinator drives one whole import run: per-worksheet scanning, month
// scoping, row dispatch, and materialization. Single-threaded by design; the
// scan is stateful and diagnostics must keep emission order.
type Coordinator struct {
	svc          ScheduleService
	registry     *model.Registry
	opts         Options
	extractor    *Extractor
	materializer *Materializer
}

// NewCoordinator creates a coordinator over the persistence service and the
// immutable name registry.
func NewCoordinator(svc ScheduleService, registry *model.Registry, opts Options) *Coordinator {
	if opts.Status == "" {
		opts.Status = model.StatusScheduled
	}
	return &Coordinator{
		svc:          svc,
		registry:     registry,
		opts:         opts,
		extractor:    NewExtractor(opts.Filter),
		materializer: NewMaterializer(svc, opts.Status, opts.TravelOutDays, opts.TravelBackDays),
	}
}

// Run executes the import. The returned error is non-nil only for total
// file-open failure; every other anomaly degrades to a diagnostic in the
// result. The caller always receives counts plus the full diagnostic list.
func (c *Coordinator) Run() (*model.ImportResult, error) {
	rep := NewReporter()

	c.progress("start", fmt.Sprintf("importing %s", filepath.Base(c.opts.FilePath)), nil)

	file, err := excelize.OpenFile(c.opts.FilePath)
	if err != nil {
		rep.Errorf(filepath.Base(c.opts.FilePath), 0, 0, "open workbook failed: %v", err)
		c.progress("error", err.Error(), nil)
		return rep.Result(), fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	for _, sheetName := range file.GetSheetList() {
		c.progress("sheet_start", sheetName, nil)
		c.processSheet(file, sheetName, rep)
		c.progress("sheet_done", sheetName, nil)
	}

	result := rep.Result()
	c.progress("done", "import complete", result)
	return result, nil
}

// monthState is the scan state scoped to the current month marker.
type monthState struct {
	marker    parser.MonthMarker
	hasMarker bool
	days      parser.ColumnDayMap
}

func (c *Coordinator) processSheet(file *excelize.File, sheetName string, rep *Reporter) {
	defer func() {
		if r := recover(); r != nil {
			rep.Errorf(sheetName, 0, 0, "worksheet processing failed: %v", r)
		}
	}()

	sheet, err := grid.OpenSheet(file, sheetName)
	if err != nil {
		rep.Errorf(sheetName, 0, 0, "worksheet unreadable: %v", err)
		return
	}

	worker := c.resolveWorker(sheetName, rep)
	if worker == nil {
		return
	}

	classifier := parser.NewClassifier(c.registry.ManagerNames())
	st := &monthState{}

	for row := 1; row <= sheet.RowCount(); row++ {
		c.processRow(sheet, sheetName, row, classifier, st, worker, rep)
	}
}

// resolveWorker maps the worksheet name onto the worker registry. A sheet
// whose name matches no known worker is skipped entirely with an ERROR.
func (c *Coordinator) resolveWorker(sheetName string, rep *Reporter) *model.Resource {
	match, ok := parser.BestNameMatch(sheetName, c.registry.ResourceNames())
	if !ok {
		rep.Errorf(sheetName, 0, 0, "worker %q not found in registry, worksheet skipped", sheetName)
		return nil
	}
	worker, err := c.svc.FindResourceByName(match.Name)
	if err != nil || worker == nil {
		rep.Errorf(sheetName, 0, 0, "worker lookup %q failed: %v", match.Name, err)
		return nil
	}
	return worker
}

func (c *Coordinator) processRow(sheet *grid.Sheet, sheetName string, row int, classifier *parser.Classifier, st *monthState, worker *model.Resource, rep *Reporter) {
	defer func() {
		if r := recover(); r != nil {
			rep.Errorf(sheetName, row, 0, "row processing failed: %v", r)
		}
	}()

	label := sheet.Text(1, row)
	if label == "" {
		label = sheet.Text(2, row)
	}
	class := classifier.Classify(label)

	switch class.Kind {
	case parser.RowMonthMarker:
		st.marker = class.Marker
		st.hasMarker = true
		st.days = c.resolveHeader(sheet, sheetName, row, class.Marker, rep)

	case parser.RowManager:
		if !st.hasMarker || len(st.days) == 0 {
			rep.Infof(sheetName, row, 0, "manager row %q outside any month block, skipped", class.Label)
			return
		}
		manager := c.resolveManager(sheetName, row, class, rep)
		records := c.extractor.ExtractRow(sheet, sheetName, row, st.marker, st.days, class.Manager, rep)
		for _, rec := range records {
			c.materializer.Materialize(rec, sheetName, worker, manager, rep)
		}

	case parser.RowShop:
		c.assignFixedProject(sheet, sheetName, row, st, worker, ShopProjectIdentifier, rep)

	case parser.RowTraining:
		c.assignFixedProject(sheet, sheetName, row, st, worker, TrainingProjectIdentifier, rep)

	case parser.RowTimeOff:
		// Time off carries no importable work; skipped without diagnostics.

	case parser.RowUnrecognized:
		rep.Infof(sheetName, row, 0, "unrecognized row %q skipped", class.Label)

	case parser.RowBlank:
	}
}

// resolveHeader builds the day map for a fresh month block from the one or
// two physical header rows under the marker.
func (c *Coordinator) resolveHeader(sheet *grid.Sheet, sheetName string, markerRow int, marker parser.MonthMarker, rep *Reporter) parser.ColumnDayMap {
	var headerRows [][]string
	for r := markerRow + 1; r <= markerRow+2; r++ {
		if cells := sheet.Row(r); cells != nil {
			headerRows = append(headerRows, cells)
		}
	}

	days, warnings := parser.ResolveCalendarHeader(marker, headerRows)
	for _, w := range warnings {
		rep.Warnf(sheetName, markerRow, 0, "%s %d calendar header: %s", marker.Month, marker.Year, w)
	}
	return days
}

func (c *Coordinator) resolveManager(sheetName string, row int, class parser.RowClass, rep *Reporter) *model.Manager {
	if class.Unresolved {
		rep.Warnf(sheetName, row, 0, "manager row %q did not resolve to a known manager; assignments attributed to no manager", class.Label)
		return nil
	}
	manager, err := c.svc.FindManagerByName(class.Manager)
	if err != nil || manager == nil {
		rep.Warnf(sheetName, row, 0, "manager lookup %q failed: %v", class.Manager, err)
		return nil
	}
	return manager
}

// assignFixedProject handles the simplified shop/training rows: contiguous
// day runs of populated cells become assignments on the fixed project with
// the given identifier.
func (c *Coordinator) assignFixedProject(sheet *grid.Sheet, sheetName string, row int, st *monthState, worker *model.Resource, identifier string, rep *Reporter) {
	if !st.hasMarker || len(st.days) == 0 {
		rep.Infof(sheetName, row, 0, "%s row outside any month block, skipped", identifier)
		return
	}

	project, err := c.svc.FindProjectByIdentifier(identifier)
	if err != nil || project == nil {
		rep.Warnf(sheetName, row, 0, "fixed project %q not found, row skipped", identifier)
		return
	}

	runs := populatedDayRuns(sheet, row, st.days)
	if len(runs) == 0 {
		return
	}

	existing, err := c.svc.FindAssignmentsByProject(project.ID)
	if err != nil {
		rep.Errorf(sheetName, row, 0, "read assignments of %q failed: %v", identifier, err)
		return
	}

	for _, run := range runs {
		start := st.marker.Date(run[0])
		end := st.marker.Date(run[1])
		if hasAssignment(existing, worker.ID, start, end) {
			rep.Infof(sheetName, row, 0, "%s assignment %s..%s for %s already exists, skipped",
				identifier, start.Format("2006-01-02"), end.Format("2006-01-02"), worker.Name)
			continue
		}
		if _, err := c.svc.CreateAssignment(project.ID, worker.ID, start, end, 0, 0); err != nil {
			rep.Errorf(sheetName, row, 0, "create %s assignment failed: %v", identifier, err)
			continue
		}
		rep.AssignmentCreated()
	}
}

// populatedDayRuns collects the days whose mapped cell is non-empty and
// groups consecutive days into [first, last] runs.
func populatedDayRuns(sheet *grid.Sheet, row int, days parser.ColumnDayMap) [][2]int {
	present := map[int]bool{}
	maxDay := 0
	for _, col := range days.Columns() {
		if sheet.Text(col, row) != "" {
			d := days[col]
			present[d] = true
			if d > maxDay {
				maxDay = d
			}
		}
	}

	var runs [][2]int
	for d := 1; d <= maxDay; d++ {
		if !present[d] {
			continue
		}
		start := d
		for present[d+1] {
			d++
		}
		runs = append(runs, [2]int{start, d})
	}
	return runs
}

func hasAssignment(assignments []*model.Assignment, resourceID int64, start, end time.Time) bool {
	for _, a := range assignments {
		if a.ResourceID == resourceID && a.StartDate.Equal(start) && a.EndDate.Equal(end) {
			return true
		}
	}
	return false
}

func (c *Coordinator) progress(eventType, message string, data any) {
	if c.opts.OnProgress == nil {
		return
	}
	c.opts.OnProgress(ProgressEvent{
		Type:      eventType,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}
