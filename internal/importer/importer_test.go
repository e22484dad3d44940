package importer

import (
	"fmt"
	"time"

	"crewcal/internal/grid"
	"crewcal/internal/model"
)

// fakeService is an in-memory ScheduleService for importer tests.
type fakeService struct {
	resources []model.Resource
	managers  []model.Manager

	projects    []*model.Project
	assignments []*model.Assignment

	nextID int

	createProjectErr error
	// travelWriteDrops silently discards that many RequiresTravel updates,
	// simulating the flaky persistence the verify step compensates for.
	travelWriteDrops int
}

func newFakeService(resources []model.Resource, managers []model.Manager) *fakeService {
	return &fakeService{resources: resources, managers: managers}
}

func (f *fakeService) registry() *model.Registry {
	return &model.Registry{Resources: f.resources, Managers: f.managers}
}

func (f *fakeService) FindResourceByName(name string) (*model.Resource, error) {
	for i := range f.resources {
		if f.resources[i].Name == name {
			return &f.resources[i], nil
		}
	}
	return nil, nil
}

func (f *fakeService) FindManagerByName(name string) (*model.Manager, error) {
	for i := range f.managers {
		if f.managers[i].Name == name {
			return &f.managers[i], nil
		}
	}
	return nil, nil
}

func (f *fakeService) CreateProject(identifier, description string, start, end time.Time) (*model.Project, error) {
	if f.createProjectErr != nil {
		return nil, f.createProjectErr
	}
	f.nextID++
	p := &model.Project{
		ID:          fmt.Sprintf("p-%d", f.nextID),
		Identifier:  identifier,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Status:      model.StatusScheduled,
	}
	f.projects = append(f.projects, p)
	return p, nil
}

func (f *fakeService) UpdateProject(projectID string, fields ProjectFields) error {
	p := f.project(projectID)
	if p == nil {
		return fmt.Errorf("project %q not found", projectID)
	}
	if fields.Status != nil {
		p.Status = *fields.Status
	}
	if fields.ManagerID != nil {
		p.ManagerID = *fields.ManagerID
	}
	if fields.ContactAddress != nil {
		p.ContactAddress = *fields.ContactAddress
	}
	if fields.RequiresTravel != nil {
		if f.travelWriteDrops > 0 {
			f.travelWriteDrops--
		} else {
			p.RequiresTravel = *fields.RequiresTravel
		}
	}
	return nil
}

func (f *fakeService) GetProject(projectID string) (*model.Project, error) {
	return f.project(projectID), nil
}

func (f *fakeService) FindProjectByIdentifier(identifier string) (*model.Project, error) {
	for _, p := range f.projects {
		if p.Identifier == identifier {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeService) FindProjectsByIdentifier(identifier string) ([]*model.Project, error) {
	var out []*model.Project
	for _, p := range f.projects {
		if p.Identifier == identifier {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeService) FindAssignmentsByProject(projectID string) ([]*model.Assignment, error) {
	var out []*model.Assignment
	for _, a := range f.assignments {
		if a.ProjectID == projectID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeService) CreateAssignment(projectID string, resourceID int64, start, end time.Time, travelOutDays, travelBackDays int) (*model.Assignment, error) {
	f.nextID++
	a := &model.Assignment{
		ID:             fmt.Sprintf("a-%d", f.nextID),
		ProjectID:      projectID,
		ResourceID:     resourceID,
		StartDate:      start,
		EndDate:        end,
		TravelOutDays:  travelOutDays,
		TravelBackDays: travelBackDays,
	}
	f.assignments = append(f.assignments, a)
	return a, nil
}

func (f *fakeService) project(id string) *model.Project {
	for _, p := range f.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// fakeSheet backs extractor tests without a workbook.
type fakeSheet struct {
	cells  map[[2]int]string // {col,row}
	notes  map[[2]int]string
	fills  map[[2]int]bool
	merges []grid.Region
}

func (s *fakeSheet) Text(col, row int) string {
	if region, ok := s.MergedRegion(col, row); ok {
		return region.Value
	}
	return s.cells[[2]int{col, row}]
}

func (s *fakeSheet) Note(col, row int) string {
	return s.notes[[2]int{col, row}]
}

func (s *fakeSheet) MergedRegion(col, row int) (grid.Region, bool) {
	for _, r := range s.merges {
		if col >= r.StartCol && col <= r.EndCol && row >= r.StartRow && row <= r.EndRow {
			return r, true
		}
	}
	return grid.Region{}, false
}

func (s *fakeSheet) HasHighlightFill(col, row int) bool {
	return s.fills[[2]int{col, row}]
}

func countSeverity(rep *Reporter, sev model.Severity) int {
	return rep.Result().CountBySeverity(sev)
}
