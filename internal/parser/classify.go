package parser

import (
	"regexp"
	"strings"
)

// rePMMarker matches the literal project-manager marker token at the start
// of a row label, with its usual separators.
var rePMMarker = regexp.MustCompile(`(?i)^pm\b[\s:.\-]*`)

var reNumericish = regexp.MustCompile(`^[\d\s./\-]+$`)

// Classifier assigns a RowKind to worksheet rows from their label cell. The
// manager registry is fixed at construction.
type Classifier struct {
	managers []string
}

// NewClassifier creates a row classifier over the given manager names,
// in registry order.
func NewClassifier(managerNames []string) *Classifier {
	return &Classifier{managers: managerNames}
}

// Classify applies the recognition rules in fixed order: month marker,
// fixed category keyword, resolved manager name, bare PM marker, then the
// blank/unrecognized fallback.
func (c *Classifier) Classify(label string) RowClass {
	label = strings.TrimSpace(label)

	if marker, ok := ParseMonthMarker(label); ok {
		return RowClass{Kind: RowMonthMarker, Label: label, Marker: marker}
	}

	if kind, ok := categoryKind(label); ok {
		return RowClass{Kind: kind, Label: label}
	}

	hadPM := rePMMarker.MatchString(label)
	name := rePMMarker.ReplaceAllString(label, "")
	if match, ok := BestNameMatch(name, c.managers); ok {
		return RowClass{Kind: RowManager, Label: label, Manager: match.Name}
	}
	if hadPM {
		// The row announces a manager we cannot resolve. Its day cells may
		// still hold real project data, so it is processed best-effort.
		return RowClass{Kind: RowManager, Label: label, Unresolved: true}
	}

	if label == "" || len(label) <= 3 || reNumericish.MatchString(label) {
		return RowClass{Kind: RowBlank, Label: label}
	}
	return RowClass{Kind: RowUnrecognized, Label: label}
}

func categoryKind(label string) (RowKind, bool) {
	switch strings.ToLower(strings.Join(strings.Fields(label), " ")) {
	case "shop", "shop/open", "shop / open":
		return RowShop, true
	case "training":
		return RowTraining, true
	case "time off", "holiday", "time off/holiday", "time off / holiday":
		return RowTimeOff, true
	}
	return RowBlank, false
}
