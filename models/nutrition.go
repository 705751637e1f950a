package models

// IngredientItem is one row of an itemized nutrition breakdown.
type IngredientItem struct {
	Name    string `json:"name"`
	Portion string `json:"portion"`
	Energy  string `json:"energy"`
}

// NutritionResult is the structured payload returned by the analysis model.
// Field names mirror the structured-output schema sent with every request.
type NutritionResult struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Confidence    string           `json:"confidence"`
	Items         []IngredientItem `json:"items"`
	TotalCalories string           `json:"totalCalories"`
	Suggestion    string           `json:"suggestion"`
}
