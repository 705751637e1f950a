package api

import (
	"github.com/gin-gonic/gin"

	"github.com/foodpilot-ai/food-pilot/models"
)

// GetProfile handles GET /api/profile
func (h *Handlers) GetProfile(c *gin.Context) {
	RespondData(c, h.Profile.Get())
}

// UpdateProfile handles PUT /api/profile
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var p models.UserProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	h.Profile.Set(p)
	RespondData(c, h.Profile.Get())
}

type allergyRequest struct {
	Allergy string `json:"allergy"`
}

// ToggleAllergy handles POST /api/profile/allergies. Adds the allergy when
// absent, removes it when present.
func (h *Handlers) ToggleAllergy(c *gin.Context) {
	var req allergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}
	if req.Allergy == "" {
		RespondValidationError(c, "allergy must not be empty")
		return
	}
	RespondData(c, h.Profile.ToggleAllergy(req.Allergy))
}
