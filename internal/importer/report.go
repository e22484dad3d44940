package importer

import (
	"fmt"
	"strings"

	"crewcal/internal/model"
)

// Reporter accumulates categorized diagnostics and running creation counts
// for one import run. Not safe for concurrent use; the run is synchronous.
type Reporter struct {
	diags       []model.Diagnostic
	projects    int
	assignments int
}

// NewReporter creates an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) add(sev model.Severity, sheet string, row, col int, format string, args ...any) {
	r.diags = append(r.diags, model.Diagnostic{
		Severity:  sev,
		Worksheet: sheet,
		Row:       row,
		Column:    col,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Errorf records an ERROR diagnostic.
func (r *Reporter) Errorf(sheet string, row, col int, format string, args ...any) {
	r.add(model.SeverityError, sheet, row, col, format, args...)
}

// Warnf records a WARNING diagnostic.
func (r *Reporter) Warnf(sheet string, row, col int, format string, args ...any) {
	r.add(model.SeverityWarning, sheet, row, col, format, args...)
}

// Infof records an INFO diagnostic.
func (r *Reporter) Infof(sheet string, row, col int, format string, args ...any) {
	r.add(model.SeverityInfo, sheet, row, col, format, args...)
}

// ProjectCreated bumps the project counter.
func (r *Reporter) ProjectCreated() { r.projects++ }

// AssignmentCreated bumps the assignment counter.
func (r *Reporter) AssignmentCreated() { r.assignments++ }

// Result snapshots the accumulated counts and diagnostics in emission order.
func (r *Reporter) Result() *model.ImportResult {
	diags := make([]model.Diagnostic, len(r.diags))
	copy(diags, r.diags)
	return &model.ImportResult{
		ProjectsCreated:    r.projects,
		AssignmentsCreated: r.assignments,
		Diagnostics:        diags,
	}
}

// RenderSummary renders the human-readable run summary: counts first, then
// full diagnostic bodies grouped ERROR, WARNING, INFO.
func RenderSummary(result *model.ImportResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Import complete: %d projects, %d assignments created\n",
		result.ProjectsCreated, result.AssignmentsCreated)
	fmt.Fprintf(&b, "Diagnostics: %d errors, %d warnings, %d info\n",
		result.CountBySeverity(model.SeverityError),
		result.CountBySeverity(model.SeverityWarning),
		result.CountBySeverity(model.SeverityInfo))

	for _, sev := range []model.Severity{model.SeverityError, model.SeverityWarning, model.SeverityInfo} {
		first := true
		for _, d := range result.Diagnostics {
			if d.Severity != sev {
				continue
			}
			if first {
				fmt.Fprintf(&b, "\n[%s]\n", sev)
				first = false
			}
			fmt.Fprintf(&b, "  %s: %s\n", d.Location(), d.Message)
		}
	}

	return b.String()
}
