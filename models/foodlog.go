package models

// FoodLogEntry is a display-only record of a past meal estimate. SessionID is
// an optional back-reference to the conversation the estimate came from; it is
// a lookup key for navigation, not an ownership relation.
type FoodLogEntry struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Calories    string           `json:"calories"`
	Date        string           `json:"date"`
	Time        string           `json:"time"`
	Image       string           `json:"image"`
	Breakdown   []IngredientItem `json:"breakdown"`
	Protein     string           `json:"protein"`
	Carbs       string           `json:"carbs"`
	Fat         string           `json:"fat"`
	SessionID   string           `json:"sessionId,omitempty"`
}
