package profile

import (
	"strings"
	"sync"

	"github.com/foodpilot-ai/food-pilot/models"
)

// Store holds the user profile. Updates replace fields wholesale; the allergy
// set is kept unique with insertion order preserved for display.
type Store struct {
	mu      sync.RWMutex
	profile models.UserProfile
}

// NewStore creates a profile store holding the default (blank) profile.
func NewStore() *Store {
	return &Store{profile: models.DefaultProfile()}
}

// Get returns the current profile.
func (s *Store) Get() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.profile
	p.Allergies = append([]string{}, s.profile.Allergies...)
	return p
}

// Set replaces the profile. Allergies are de-duplicated preserving the order
// of first appearance.
func (s *Store) Set(p models.UserProfile) {
	p.Allergies = dedupe(p.Allergies)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

// ToggleAllergy adds the allergy when absent and removes it when present.
func (s *Store) ToggleAllergy(allergy string) models.UserProfile {
	allergy = strings.TrimSpace(allergy)

	s.mu.Lock()
	defer s.mu.Unlock()

	if allergy != "" {
		found := -1
		for i, a := range s.profile.Allergies {
			if a == allergy {
				found = i
				break
			}
		}
		if found >= 0 {
			s.profile.Allergies = append(s.profile.Allergies[:found], s.profile.Allergies[found+1:]...)
		} else {
			s.profile.Allergies = append(s.profile.Allergies, allergy)
		}
	}

	p := s.profile
	p.Allergies = append([]string{}, s.profile.Allergies...)
	return p
}

// Reset restores the given profile. Used by the demo login/logout flow.
func (s *Store) Reset(p models.UserProfile) {
	s.Set(p)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
