package foodlog

import (
	"strconv"
	"sync"

	"github.com/foodpilot-ai/food-pilot/models"
)

// Store is the in-memory food-log history backing the Explorer view. Entries
// are display-only; the store never mutates them after installation.
type Store struct {
	mu      sync.RWMutex
	entries []models.FoodLogEntry
}

// Stats summarizes the log for the Explorer header cards.
type Stats struct {
	EntryCount  int `json:"entryCount"`
	TodayTotal  int `json:"todayTotal"`
	MealAverage int `json:"mealAverage"`
}

// NewStore creates an empty food log.
func NewStore() *Store {
	return &Store{}
}

// Entries returns the log in display order.
func (s *Store) Entries() []models.FoodLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FoodLogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (models.FoodLogEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.FoodLogEntry{}, false
}

// Stats computes the aggregate figures shown above the log list.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{EntryCount: len(s.entries)}
	total := 0
	for _, e := range s.entries {
		kcal, err := strconv.Atoi(e.Calories)
		if err != nil {
			continue
		}
		total += kcal
		if e.Date == "今天" {
			st.TodayTotal += kcal
		}
	}
	if len(s.entries) > 0 {
		st.MealAverage = total / len(s.entries)
	}
	return st
}

// Reset replaces the log contents. Used by the demo login/logout flow.
func (s *Store) Reset(entries []models.FoodLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}
