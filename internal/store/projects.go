package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"crewcal/internal/importer"
	"crewcal/internal/model"
)

// CreateProject inserts a fresh project. Identifiers are not unique; the
// same identifier recurring in a source workbook legitimately represents
// distinct month instances.
func (s *Store) CreateProject(identifier, description string, start, end time.Time) (*model.Project, error) {
	p := &model.Project{
		ID:          uuid.New().String(),
		Identifier:  identifier,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		Status:      model.StatusScheduled,
	}
	_, err := s.db.Exec(`
		INSERT INTO projects (id, identifier, description, start_date, end_date, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, p.ID, p.Identifier, p.Description, formatDate(start), formatDate(end), string(p.Status))
	if err != nil {
		return nil, fmt.Errorf("create project %q: %w", identifier, err)
	}
	return p, nil
}

// UpdateProject applies the non-nil fields to a project.
func (s *Store) UpdateProject(projectID string, fields importer.ProjectFields) error {
	set := ""
	var args []any
	appendSet := func(clause string, value any) {
		if set != "" {
			set += ", "
		}
		set += clause
		args = append(args, value)
	}

	if fields.ManagerID != nil {
		appendSet("manager_id = ?", *fields.ManagerID)
	}
	if fields.Status != nil {
		appendSet("status = ?", string(*fields.Status))
	}
	if fields.ContactAddress != nil {
		appendSet("contact_address = ?", *fields.ContactAddress)
	}
	if fields.RequiresTravel != nil {
		appendSet("requires_travel = ?", boolToInt(*fields.RequiresTravel))
	}
	if set == "" {
		return nil
	}

	args = append(args, projectID)
	res, err := s.db.Exec(`UPDATE projects SET `+set+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update project %s: %w", projectID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update project %s: not found", projectID)
	}
	return nil
}

// GetProject re-reads a project's persisted state.
func (s *Store) GetProject(projectID string) (*model.Project, error) {
	p, err := s.scanProject(s.db.QueryRow(projectSelect+` WHERE id = ?`, projectID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// FindProjectByIdentifier returns the oldest project with the identifier,
// or nil. Fixed projects such as SHOP are resolved through this.
func (s *Store) FindProjectByIdentifier(identifier string) (*model.Project, error) {
	p, err := s.scanProject(s.db.QueryRow(projectSelect+` WHERE identifier = ? ORDER BY created_at, id LIMIT 1`, identifier))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// FindProjectsByIdentifier returns every project with the identifier.
func (s *Store) FindProjectsByIdentifier(identifier string) ([]*model.Project, error) {
	rows, err := s.db.Query(projectSelect+` WHERE identifier = ? ORDER BY created_at, id`, identifier)
	if err != nil {
		return nil, fmt.Errorf("find projects %q: %w", identifier, err)
	}
	defer rows.Close()

	var out []*model.Project
	for rows.Next() {
		p, err := s.scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects() ([]*model.Project, error) {
	rows, err := s.db.Query(projectSelect + ` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []*model.Project
	for rows.Next() {
		p, err := s.scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

const projectSelect = `
	SELECT id, identifier, description, start_date, end_date,
	       COALESCE(manager_id, 0), status, contact_address, requires_travel
	FROM projects`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanProject(row rowScanner) (*model.Project, error) {
	var p model.Project
	var start, end, status string
	var travel int
	if err := row.Scan(&p.ID, &p.Identifier, &p.Description, &start, &end,
		&p.ManagerID, &status, &p.ContactAddress, &travel); err != nil {
		return nil, err
	}
	p.StartDate = parseDate(start)
	p.EndDate = parseDate(end)
	p.Status = model.ProjectStatus(status)
	p.RequiresTravel = travel != 0
	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
