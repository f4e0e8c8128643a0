package models

import "sync"

// FilmStore holds the catalog as an ordered slice, newest-first. New films
// are inserted at the head, so "most recent" is always index 0.
type FilmStore struct {
	mu    sync.RWMutex
	films []*Film
}

func NewFilmStore() *FilmStore {
	return &FilmStore{
		films: make([]*Film, 0),
	}
}

// Add prepends the film so it becomes the new head. Duplicate titles and
// idNumbers are allowed: two physical copies may share metadata.
func (s *FilmStore) Add(film *Film) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if film == nil {
		return
	}
	s.films = append([]*Film{film}, s.films...)
}

// Update merges the patch into the film matching id. Returns false when no
// film matches; the catalog is left untouched in that case.
func (s *FilmStore) Update(id string, patch *FilmPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch == nil {
		return false
	}
	for _, f := range s.films {
		if f.ID == id {
			patch.Apply(f)
			return true
		}
	}
	return false
}

// Delete removes the film matching id and returns it. Returns false when no
// film matches.
func (s *FilmStore) Delete(id string) (*Film, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.films {
		if f.ID == id {
			s.films = append(s.films[:i], s.films[i+1:]...)
			return f, true
		}
	}
	return nil, false
}

// Get returns a copy of the film matching id.
func (s *FilmStore) Get(id string) (*Film, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.films {
		if f.ID == id {
			return f.Clone(), true
		}
	}
	return nil, false
}

// Snapshot returns a deep copy of the catalog in its current order.
func (s *FilmStore) Snapshot() []*Film {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Film, len(s.films))
	for i, f := range s.films {
		result[i] = f.Clone()
	}
	return result
}

// Recent returns a deep copy of the first n films.
func (s *FilmStore) Recent(n int) []*Film {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.films) {
		n = len(s.films)
	}
	if n < 0 {
		n = 0
	}
	result := make([]*Film, n)
	for i := 0; i < n; i++ {
		result[i] = s.films[i].Clone()
	}
	return result
}

func (s *FilmStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.films)
}

// PutData replaces the catalog with restored state. Nil entries are skipped.
func (s *FilmStore) PutData(films []*Film) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.films = make([]*Film, 0, len(films))
	for _, f := range films {
		if f == nil {
			continue
		}
		s.films = append(s.films, f)
	}
}

// GetData returns the catalog for persistence. Same copy discipline as
// Snapshot so a save never races a later mutation.
func (s *FilmStore) GetData() []*Film {
	return s.Snapshot()
}
