// Package store holds the in-progress estimate and the finalized list.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"paintestimator/models"
)

// ClientInfo is the contact record a new project starts from.
type ClientInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Store owns exactly one nullable current project plus the ordered list of
// finalized projects. Every read hands out a deep copy, so callers
// (including background renders) can never observe a mid-edit project.
// A mutex serializes writers; the design is still single-writer, the lock
// only guards against overlapping HTTP requests.
type Store struct {
	mu        sync.Mutex
	current   *models.Project
	finalized []*models.Project

	now func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// Start creates the current project with empty collections. It fails with
// ErrProjectConflict while an unfinalized project exists.
func (s *Store) Start(info ClientInfo) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return nil, ErrProjectConflict
	}

	s.current = &models.Project{
		ID:            uuid.NewString(),
		ClientName:    info.Name,
		ClientEmail:   info.Email,
		ClientPhone:   info.Phone,
		ClientAddress: info.Address,
		InteriorData:  []models.Room{},
		ExteriorData:  []models.SideArea{},
		CreatedAt:     s.now().UTC(),
	}
	return s.current.Clone(), nil
}

// Current returns a snapshot of the in-progress project, or nil.
func (s *Store) Current() *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// UpdateCurrent applies one structural edit to the current project and
// bumps its revision stamp. The mutator runs under the lock; it must not
// retain the pointer. Returns a snapshot of the edited project.
func (s *Store) UpdateCurrent(mutate func(*models.Project)) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoCurrentProject
	}

	mutate(s.current)
	s.current.Revision++
	return s.current.Clone(), nil
}

// Finalize atomically moves the current project to the finalized list and
// clears current. Finalizing with no current project fails with
// ErrNoCurrentProject and leaves the store untouched.
func (s *Store) Finalize() (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoCurrentProject
	}

	done := s.current
	s.finalized = append(s.finalized, done)
	s.current = nil
	return done.Clone(), nil
}

// Discard drops the current project without saving it.
func (s *Store) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoCurrentProject
	}
	s.current = nil
	return nil
}

// Find looks up a finalized project by id. Absence is not an error; the
// result is nil when nothing matches.
func (s *Store) Find(id string) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.finalized {
		if p.ID == id {
			return p.Clone()
		}
	}
	return nil
}

// Finalized returns snapshots of all finalized projects in save order.
func (s *Store) Finalized() []*models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Project, len(s.finalized))
	for i, p := range s.finalized {
		out[i] = p.Clone()
	}
	return out
}
