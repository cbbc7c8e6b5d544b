package store

import (
	"github.com/dannyvoid/gpu-preference/internal/pathutil"
)

// Entry is one (normalized executable path, preference) association.
type Entry struct {
	Path       string     `json:"path"`
	Preference Preference `json:"preference"`
}

// Store provides CRUD and bulk backup/restore over a Backend. Every
// operation goes straight through to the backend; there is no cache and
// no state beyond the backend reference.
type Store struct {
	backend Backend
}

func New(b Backend) *Store {
	return &Store{backend: b}
}

// ReadAll enumerates every stored entry. Value names are normalized and
// value data parsed on the way out; an absent namespace yields an empty
// slice, not an error. Order is whatever the backend produced.
func (s *Store) ReadAll() ([]Entry, error) {
	raw, err := s.backend.Enumerate()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raw))
	for _, v := range raw {
		entries = append(entries, Entry{
			Path:       pathutil.Normalize(v.Name),
			Preference: FromRegistryValue(v.Data),
		})
	}
	return entries, nil
}

// SetPreference writes or overwrites the entry for path. The path is
// normalized first, so two spellings of the same location land on one
// entry.
func (s *Store) SetPreference(path string, pref Preference) error {
	return s.backend.Set(pathutil.Normalize(path), pref.RegistryValue())
}

// Delete removes the entry for path. Deleting a path with no entry is a
// no-op.
func (s *Store) Delete(path string) error {
	return s.backend.Delete(pathutil.Normalize(path))
}
