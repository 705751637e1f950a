package chat

import (
	"time"

	"github.com/foodpilot-ai/food-pilot/models"
	"github.com/google/uuid"
)

// SeedSessions returns the demo conversation installed on login.
func SeedSessions() []*Session {
	return []*Session{
		{
			ID:        "8291",
			Title:     "地中海风格午餐",
			Icon:      "restaurant",
			Timestamp: time.Now(),
			Messages: []Message{
				&PlainMessage{
					ID:      uuid.NewString(),
					Role:    RoleUser,
					Clock:   "下午 12:45",
					Content: "请预估一份鸡肉沙拉（含牛油果和一个小苹果）的热量。",
				},
				&ResultMessage{
					ID:          uuid.NewString(),
					Clock:       "下午 12:46",
					Title:       "分析完成",
					Confidence:  "高准确度",
					Description: "根据标准份量，这顿餐食是瘦肉蛋白、健康脂肪和纤维的均衡组合。",
					Items: []models.IngredientItem{
						{Name: "烤鸡胸肉", Portion: "150g", Energy: "248 kcal"},
						{Name: "新鲜混合生菜", Portion: "2 杯", Energy: "20 kcal"},
						{Name: "哈斯牛油果", Portion: "0.5 个", Energy: "160 kcal"},
						{Name: "嘎啦苹果", Portion: "1 个（小）", Energy: "75 kcal"},
					},
					Total: "503 kcal",
				},
			},
		},
	}
}

// StarterQueries are the suggested prompts shown by the workspace empty state.
func StarterQueries() []string {
	return []string{
		"经典的牛油果吐司包含哪些营养？",
		"一份波奇饭大约有多少热量？",
	}
}
