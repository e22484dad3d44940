package importer

import (
	"time"

	"crewcal/internal/model"
)

// ProjectFields carries the optional property updates applied to a project
// after creation. Nil fields are left untouched.
type ProjectFields struct {
	ManagerID      *int64
	Status         *model.ProjectStatus
	ContactAddress *string
	RequiresTravel *bool
}

// ScheduleService is the persistence collaborator the importer writes
// through. Implementations serialize their own writes but may not guarantee
// immediate read-your-write consistency; the materializer compensates with a
// bounded verify-and-repair step, not an open-ended wait.
type ScheduleService interface {
	// FindResourceByName returns the worker with the exact given name, or
	// nil when unknown.
	FindResourceByName(name string) (*model.Resource, error)
	// FindManagerByName returns the manager with the exact given name, or
	// nil when unknown.
	FindManagerByName(name string) (*model.Manager, error)

	CreateProject(identifier, description string, start, end time.Time) (*model.Project, error)
	UpdateProject(projectID string, fields ProjectFields) error
	// GetProject re-reads a project's persisted state, used for post-write
	// verification.
	GetProject(projectID string) (*model.Project, error)
	// FindProjectByIdentifier returns the oldest project with the given
	// identifier, or nil. Backs the fixed SHOP/TRAINING project lookups.
	FindProjectByIdentifier(identifier string) (*model.Project, error)
	// FindProjectsByIdentifier returns every project with the given
	// identifier. Backs cross-run assignment deduplication.
	FindProjectsByIdentifier(identifier string) ([]*model.Project, error)

	FindAssignmentsByProject(projectID string) ([]*model.Assignment, error)
	CreateAssignment(projectID string, resourceID int64, start, end time.Time, travelOutDays, travelBackDays int) (*model.Assignment, error)
}
