package profile

import "github.com/foodpilot-ai/food-pilot/models"

// SeedProfile returns the demo user profile installed on login.
func SeedProfile() models.UserProfile {
	return models.UserProfile{
		Age:           "28",
		Height:        "178",
		Weight:        "72",
		Sex:           "男",
		ActivityLevel: "轻度活动",
		ExerciseType:  "混合运动",
		Goal:          "增肌",
		Pace:          "适中",
		KcalTarget:    "2400",
		DietStyle:     "高蛋白饮食",
		Allergies:     []string{"坚果"},
	}
}
