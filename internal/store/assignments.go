package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"crewcal/internal/model"
)

// CreateAssignment links a worker to a project for a date range.
func (s *Store) CreateAssignment(projectID string, resourceID int64, start, end time.Time, travelOutDays, travelBackDays int) (*model.Assignment, error) {
	a := &model.Assignment{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		ResourceID:     resourceID,
		StartDate:      start,
		EndDate:        end,
		TravelOutDays:  travelOutDays,
		TravelBackDays: travelBackDays,
	}
	_, err := s.db.Exec(`
		INSERT INTO assignments (id, project_id, resource_id, start_date, end_date, travel_out_days, travel_back_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.ProjectID, a.ResourceID, formatDate(start), formatDate(end), a.TravelOutDays, a.TravelBackDays)
	if err != nil {
		return nil, fmt.Errorf("create assignment on %s: %w", projectID, err)
	}
	return a, nil
}

// FindAssignmentsByProject returns a project's assignments in creation order.
func (s *Store) FindAssignmentsByProject(projectID string) ([]*model.Assignment, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, resource_id, start_date, end_date, travel_out_days, travel_back_days
		FROM assignments WHERE project_id = ? ORDER BY created_at, id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("find assignments of %s: %w", projectID, err)
	}
	defer rows.Close()

	var out []*model.Assignment
	for rows.Next() {
		var a model.Assignment
		var start, end string
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.ResourceID, &start, &end, &a.TravelOutDays, &a.TravelBackDays); err != nil {
			return nil, err
		}
		a.StartDate = parseDate(start)
		a.EndDate = parseDate(end)
		out = append(out, &a)
	}
	return out, rows.Err()
}
