package foodlog

import "github.com/foodpilot-ai/food-pilot/models"

// SeedEntries returns the demo food log installed on login.
func SeedEntries() []models.FoodLogEntry {
	return []models.FoodLogEntry{
		{
			ID:          "1",
			Name:        "香草鸡肉能量碗",
			Description: "烤鸡胸肉配藜麦、羽衣甘蓝和柠檬芝麻酱。",
			Calories:    "480",
			Date:        "今天",
			Time:        "下午 1:15",
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&q=80&w=400",
			Protein:     "32g",
			Carbs:       "45g",
			Fat:         "18g",
			Breakdown: []models.IngredientItem{
				{Name: "烤鸡肉", Portion: "150g", Energy: "248 kcal"},
				{Name: "藜麦", Portion: "1 杯", Energy: "222 kcal"},
				{Name: "羽衣甘蓝 & 芝麻酱", Portion: "1.5 杯", Energy: "10 kcal"},
			},
			SessionID: "8291",
		},
	}
}
