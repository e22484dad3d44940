package model

import "fmt"

// Severity classifies an import diagnostic.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Diagnostic is one categorized finding produced during an import run.
// Column is 1-based and 0 when the finding is not tied to a single cell.
type Diagnostic struct {
	Severity  Severity `json:"severity"`
	Worksheet string   `json:"worksheet"`
	Row       int      `json:"row"`
	Column    int      `json:"column,omitempty"`
	Message   string   `json:"message"`
}

// Location renders the sheet/row/column position of the diagnostic.
func (d Diagnostic) Location() string {
	if d.Column > 0 {
		return fmt.Sprintf("%s!R%dC%d", d.Worksheet, d.Row, d.Column)
	}
	if d.Row > 0 {
		return fmt.Sprintf("%s!R%d", d.Worksheet, d.Row)
	}
	return d.Worksheet
}

// ImportResult is the only artifact an import run returns to the caller.
// Diagnostics preserve emission order.
type ImportResult struct {
	ProjectsCreated    int          `json:"projectsCreated"`
	AssignmentsCreated int          `json:"assignmentsCreated"`
	Diagnostics        []Diagnostic `json:"diagnostics"`
}

// CountBySeverity returns the number of diagnostics with the given severity.
func (r *ImportResult) CountBySeverity(sev Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			n++
		}
	}
	return n
}
