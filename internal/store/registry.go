package store

import (
	"database/sql"
	"errors"
	"fmt"

	"crewcal/internal/model"
)

// LoadRegistry reads every resource and manager once. The returned registry
// is treated as immutable for the duration of an import run.
func (s *Store) LoadRegistry() (*model.Registry, error) {
	resources, err := s.ListResources()
	if err != nil {
		return nil, err
	}
	managers, err := s.ListManagers()
	if err != nil {
		return nil, err
	}
	return &model.Registry{Resources: resources, Managers: managers}, nil
}

// ListResources returns all workers ordered by id.
func (s *Store) ListResources() ([]model.Resource, error) {
	rows, err := s.db.Query(`SELECT id, name FROM resources ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var out []model.Resource
	for rows.Next() {
		var r model.Resource
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListManagers returns all managers ordered by id.
func (s *Store) ListManagers() ([]model.Manager, error) {
	rows, err := s.db.Query(`SELECT id, name FROM managers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()

	var out []model.Manager
	for rows.Next() {
		var m model.Manager
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CreateResource inserts a worker and returns it with its assigned id.
func (s *Store) CreateResource(name string) (*model.Resource, error) {
	res, err := s.db.Exec(`INSERT INTO resources (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("create resource %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Resource{ID: id, Name: name}, nil
}

// CreateManager inserts a manager and returns it with its assigned id.
func (s *Store) CreateManager(name string) (*model.Manager, error) {
	res, err := s.db.Exec(`INSERT INTO managers (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("create manager %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Manager{ID: id, Name: name}, nil
}

// FindResourceByName returns the worker with the exact name, or nil.
func (s *Store) FindResourceByName(name string) (*model.Resource, error) {
	var r model.Resource
	err := s.db.QueryRow(`SELECT id, name FROM resources WHERE name = ?`, name).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find resource %q: %w", name, err)
	}
	return &r, nil
}

// FindManagerByName returns the manager with the exact name, or nil.
func (s *Store) FindManagerByName(name string) (*model.Manager, error) {
	var m model.Manager
	err := s.db.QueryRow(`SELECT id, name FROM managers WHERE name = ?`, name).Scan(&m.ID, &m.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find manager %q: %w", name, err)
	}
	return &m, nil
}
