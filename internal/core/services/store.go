package services

import (
	"strings"
	"sync"

	"github.com/gabiest/hostsdash/internal/core/domain"
)

// Store is the client-side cache of the asset list. It always holds the result
// of the most recently completed successful fetch, replaced wholesale; callers
// never mutate elements in place.
type Store struct {
	mu     sync.RWMutex
	assets []domain.Asset
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Replace swaps the whole list atomically. Server order is preserved.
func (s *Store) Replace(assets []domain.Asset) {
	copied := append([]domain.Asset(nil), assets...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = copied
}

// Current returns the list last set by Replace.
func (s *Store) Current() []domain.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Asset(nil), s.assets...)
}

// Len returns the number of cached assets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assets)
}

// Find returns a copy of the asset with the given id, or false when the store
// holds no such asset.
func (s *Store) Find(id int) (domain.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Asset{}, false
}

// Filter returns the assets whose name, MAC, IP, status or condition contain
// the term, case-insensitively. An empty term returns the full cached list.
// Filtering never touches the network and never reorders.
func (s *Store) Filter(term string) []domain.Asset {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return s.Current()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []domain.Asset
	for _, a := range s.assets {
		if assetMatches(a, term) {
			matched = append(matched, a)
		}
	}
	return matched
}

func assetMatches(a domain.Asset, term string) bool {
	for _, field := range []string{a.Name, a.MACAddress, a.IPAddress, a.Status, a.Condition} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
