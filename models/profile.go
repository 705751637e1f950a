package models

// UserProfile holds the demographic, lifestyle and goal fields the analysis
// persona can be tuned with. All values are kept as display strings, the way
// the profile form edits them.
type UserProfile struct {
	Age           string   `json:"age"`
	Height        string   `json:"height"`
	Weight        string   `json:"weight"`
	Sex           string   `json:"sex"`
	ActivityLevel string   `json:"activityLevel"`
	ExerciseType  string   `json:"exerciseType"`
	Goal          string   `json:"goal"`
	Pace          string   `json:"pace"`
	KcalTarget    string   `json:"kcalTarget"`
	DietStyle     string   `json:"dietStyle"`
	Allergies     []string `json:"allergies"`
}

// DefaultProfile returns the blank profile used before login and after logout.
func DefaultProfile() UserProfile {
	return UserProfile{
		Sex:           "不愿透露",
		ActivityLevel: "久坐",
		ExerciseType:  "极少",
		Goal:          "日常健康",
		Pace:          "适中",
		KcalTarget:    "2000",
		DietStyle:     "均衡饮食",
		Allergies:     []string{},
	}
}
