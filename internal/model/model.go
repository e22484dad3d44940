package model

import "time"

// ProjectStatus lifecycle state of a project.
type ProjectStatus string

const (
	StatusScheduled ProjectStatus = "scheduled"
	StatusActive    ProjectStatus = "active"
	StatusCompleted ProjectStatus = "completed"
)

// Resource is a field worker. One worksheet in the input workbook
// corresponds to one resource.
type Resource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Manager is a project manager / supervisor referenced by manager rows.
type Manager struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Project is one scheduling engagement. Imports create a fresh project per
// extracted cell record; identifiers are not unique across projects.
type Project struct {
	ID             string        `json:"id"`
	Identifier     string        `json:"identifier"`
	Description    string        `json:"description"`
	StartDate      time.Time     `json:"startDate"`
	EndDate        time.Time     `json:"endDate"`
	ManagerID      int64         `json:"managerId,omitempty"`
	Status         ProjectStatus `json:"status"`
	ContactAddress string        `json:"contactAddress,omitempty"`
	RequiresTravel bool          `json:"requiresTravel"`
}

// Assignment links a resource to a project for a date range.
type Assignment struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"projectId"`
	ResourceID     int64     `json:"resourceId"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	TravelOutDays  int       `json:"travelOutDays"`
	TravelBackDays int       `json:"travelBackDays"`
}

// Registry is the known-name lookup table for one import run. It is loaded
// once from the store and never mutated during the run; every component that
// needs name resolution receives it explicitly.
type Registry struct {
	Resources []Resource
	Managers  []Manager
}

// ManagerNames returns manager display names in registry order.
func (r *Registry) ManagerNames() []string {
	names := make([]string, len(r.Managers))
	for i, m := range r.Managers {
		names[i] = m.Name
	}
	return names
}

// ResourceNames returns resource display names in registry order.
func (r *Registry) ResourceNames() []string {
	names := make([]string, len(r.Resources))
	for i, res := range r.Resources {
		names[i] = res.Name
	}
	return names
}
