package profile

import (
	"testing"

	"github.com/foodpilot-ai/food-pilot/models"
)

func TestSetDeduplicatesAllergies(t *testing.T) {
	s := NewStore()

	p := models.UserProfile{
		Age:       "28",
		Allergies: []string{"坚果", "乳制品", "坚果", " 乳制品 ", ""},
	}
	s.Set(p)

	got := s.Get()
	want := []string{"坚果", "乳制品"}
	if len(got.Allergies) != len(want) {
		t.Fatalf("allergies = %v, want %v", got.Allergies, want)
	}
	for i := range want {
		if got.Allergies[i] != want[i] {
			t.Fatalf("allergies = %v, want %v", got.Allergies, want)
		}
	}
}

func TestToggleAllergy(t *testing.T) {
	s := NewStore()

	got := s.ToggleAllergy("坚果")
	if len(got.Allergies) != 1 || got.Allergies[0] != "坚果" {
		t.Fatalf("after add: %v", got.Allergies)
	}

	got = s.ToggleAllergy("海鲜")
	if len(got.Allergies) != 2 {
		t.Fatalf("after second add: %v", got.Allergies)
	}

	got = s.ToggleAllergy("坚果")
	if len(got.Allergies) != 1 || got.Allergies[0] != "海鲜" {
		t.Fatalf("after remove: %v", got.Allergies)
	}

	got = s.ToggleAllergy("   ")
	if len(got.Allergies) != 1 {
		t.Fatalf("blank toggle changed allergies: %v", got.Allergies)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.ToggleAllergy("坚果")

	got := s.Get()
	got.Allergies[0] = "changed"

	if s.Get().Allergies[0] != "坚果" {
		t.Fatal("Get leaked internal slice")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewStore()
	s.Set(SeedProfile())
	if s.Get().Age == "" {
		t.Fatal("seed profile not installed")
	}

	s.Reset(models.DefaultProfile())
	got := s.Get()
	if got.Age != "" || len(got.Allergies) != 0 {
		t.Fatalf("reset profile = %+v", got)
	}
	if got.KcalTarget != "2000" {
		t.Fatalf("kcalTarget = %q, want default", got.KcalTarget)
	}
}
