package foodlog

import (
	"testing"

	"github.com/foodpilot-ai/food-pilot/models"
)

func TestStats(t *testing.T) {
	s := NewStore()
	s.Reset([]models.FoodLogEntry{
		{ID: "1", Name: "能量碗", Calories: "480", Date: "今天"},
		{ID: "2", Name: "燕麦粥", Calories: "320", Date: "今天"},
		{ID: "3", Name: "牛排晚餐", Calories: "700", Date: "昨天"},
	})

	st := s.Stats()
	if st.EntryCount != 3 {
		t.Fatalf("entryCount = %d, want 3", st.EntryCount)
	}
	if st.TodayTotal != 800 {
		t.Fatalf("todayTotal = %d, want 800", st.TodayTotal)
	}
	if st.MealAverage != 500 {
		t.Fatalf("mealAverage = %d, want 500", st.MealAverage)
	}
}

func TestStatsSkipsUnparsableCalories(t *testing.T) {
	s := NewStore()
	s.Reset([]models.FoodLogEntry{
		{ID: "1", Calories: "480", Date: "今天"},
		{ID: "2", Calories: "约 300", Date: "今天"},
	})

	st := s.Stats()
	if st.TodayTotal != 480 {
		t.Fatalf("todayTotal = %d, want 480", st.TodayTotal)
	}
}

func TestStatsEmptyLog(t *testing.T) {
	st := NewStore().Stats()
	if st.EntryCount != 0 || st.TodayTotal != 0 || st.MealAverage != 0 {
		t.Fatalf("stats = %+v, want zeros", st)
	}
}

func TestGet(t *testing.T) {
	s := NewStore()
	s.Reset(SeedEntries())

	entry, ok := s.Get("1")
	if !ok {
		t.Fatal("seed entry not found")
	}
	if entry.SessionID == "" {
		t.Fatal("seed entry missing session back-reference")
	}

	if _, ok := s.Get("999"); ok {
		t.Fatal("unknown id should not resolve")
	}
}
