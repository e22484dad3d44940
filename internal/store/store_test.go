package store

import (
	"path/filepath"
	"testing"
	"time"

	"crewcal/internal/importer"
	"crewcal/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "crewcal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRegistryRoundTrip(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	r1, err := s.CreateResource("John Smith")
	if err != nil {
		t.Fatalf("create resource: %v", err)
	}
	if _, err := s.CreateResource("Jane Doe"); err != nil {
		t.Fatalf("create resource: %v", err)
	}
	if _, err := s.CreateManager("Carlos Rivera"); err != nil {
		t.Fatalf("create manager: %v", err)
	}

	reg, err := s.LoadRegistry()
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	if len(reg.Resources) != 2 || len(reg.Managers) != 1 {
		t.Fatalf("registry = %d resources, %d managers", len(reg.Resources), len(reg.Managers))
	}
	if reg.Resources[0].Name != "John Smith" {
		t.Fatalf("registry order: %v", reg.ResourceNames())
	}

	found, err := s.FindResourceByName("John Smith")
	if err != nil {
		t.Fatalf("find resource: %v", err)
	}
	if found == nil || found.ID != r1.ID {
		t.Fatalf("found = %+v, want id %d", found, r1.ID)
	}

	missing, err := s.FindResourceByName("Nobody")
	if err != nil {
		t.Fatalf("find missing resource: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing resource = %+v, want nil", missing)
	}
}

func TestCreateResource_DuplicateNameRejected(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	if _, err := s.CreateResource("John Smith"); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := s.CreateResource("John Smith"); err == nil {
		t.Fatal("duplicate name accepted")
	}
}

func TestProjectLifecycle(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)

	p, err := s.CreateProject("12345", "Downtown Tower", start, end)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if p.ID == "" {
		t.Fatal("project has no id")
	}

	manager, err := s.CreateManager("Carlos Rivera")
	if err != nil {
		t.Fatalf("create manager: %v", err)
	}

	status := model.StatusActive
	addr := "123 Main St, Springfield, IL 62704"
	travel := true
	err = s.UpdateProject(p.ID, importer.ProjectFields{
		ManagerID:      &manager.ID,
		Status:         &status,
		ContactAddress: &addr,
		RequiresTravel: &travel,
	})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}

	got, err := s.GetProject(p.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got == nil {
		t.Fatal("project not found after update")
	}
	if got.Status != model.StatusActive || got.ManagerID != manager.ID {
		t.Fatalf("updated project = %+v", got)
	}
	if got.ContactAddress != addr || !got.RequiresTravel {
		t.Fatalf("updated project = %+v", got)
	}
	if !got.StartDate.Equal(start) || !got.EndDate.Equal(end) {
		t.Fatalf("dates = %v..%v, want %v..%v", got.StartDate, got.EndDate, start, end)
	}
}

func TestUpdateProject_UnknownID(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	travel := true
	if err := s.UpdateProject("no-such-id", importer.ProjectFields{RequiresTravel: &travel}); err == nil {
		t.Fatal("update of unknown project succeeded")
	}
}

func TestUpdateProject_NoFieldsIsNoop(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	if err := s.UpdateProject("no-such-id", importer.ProjectFields{}); err != nil {
		t.Fatalf("empty update errored: %v", err)
	}
}

func TestFindProjectByIdentifier_OldestWins(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	day := func(d int) time.Time {
		return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	first, err := s.CreateProject("40100", "Dock phase 1", day(1), day(3))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateProject("40100", "Dock phase 2", day(10), day(12)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.FindProjectByIdentifier("40100")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Fatalf("got %+v, want the oldest project %s", got, first.ID)
	}

	all, err := s.FindProjectsByIdentifier("40100")
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("%d projects, want 2", len(all))
	}

	none, err := s.FindProjectByIdentifier("99999")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if none != nil {
		t.Fatalf("missing identifier = %+v, want nil", none)
	}
}

func TestAssignmentsRoundTrip(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	worker, err := s.CreateResource("John Smith")
	if err != nil {
		t.Fatalf("create resource: %v", err)
	}
	start := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	p, err := s.CreateProject("12345", "Downtown Tower", start, end)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	a, err := s.CreateAssignment(p.ID, worker.ID, start, end, 1, 2)
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	got, err := s.FindAssignmentsByProject(p.ID)
	if err != nil {
		t.Fatalf("find assignments: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("%d assignments, want 1", len(got))
	}
	if got[0].ID != a.ID || got[0].ResourceID != worker.ID {
		t.Fatalf("assignment = %+v", got[0])
	}
	if got[0].TravelOutDays != 1 || got[0].TravelBackDays != 2 {
		t.Fatalf("travel days = %d/%d", got[0].TravelOutDays, got[0].TravelBackDays)
	}
	if !got[0].StartDate.Equal(start) || !got[0].EndDate.Equal(end) {
		t.Fatalf("dates = %v..%v", got[0].StartDate, got[0].EndDate)
	}
}

func TestListProjects(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	day := func(d int) time.Time {
		return time.Date(2026, time.February, d, 0, 0, 0, 0, time.UTC)
	}
	if _, err := s.CreateProject("A", "first", day(1), day(2)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.CreateProject("B", "second", day(3), day(4)); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := s.ListProjects()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("%d projects", len(all))
	}
}
