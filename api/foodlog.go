package api

import (
	"github.com/gin-gonic/gin"

	"github.com/foodpilot-ai/food-pilot/foodlog"
	"github.com/foodpilot-ai/food-pilot/models"
)

// FoodLogResponse is the payload of GET /api/foodlog: the full history plus
// the aggregate figures shown above it.
type FoodLogResponse struct {
	Entries []models.FoodLogEntry `json:"entries"`
	Stats   foodlog.Stats         `json:"stats"`
}

// ListFoodLog handles GET /api/foodlog
func (h *Handlers) ListFoodLog(c *gin.Context) {
	RespondData(c, FoodLogResponse{
		Entries: h.FoodLog.Entries(),
		Stats:   h.FoodLog.Stats(),
	})
}

// GetFoodLogEntry handles GET /api/foodlog/:id
func (h *Handlers) GetFoodLogEntry(c *gin.Context) {
	entry, ok := h.FoodLog.Get(c.Param("id"))
	if !ok {
		RespondNotFound(c, "food log entry not found")
		return
	}
	RespondData(c, entry)
}
