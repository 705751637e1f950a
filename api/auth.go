package api

import (
	"github.com/gin-gonic/gin"

	"github.com/foodpilot-ai/food-pilot/chat"
	"github.com/foodpilot-ai/food-pilot/foodlog"
	"github.com/foodpilot-ai/food-pilot/models"
	"github.com/foodpilot-ai/food-pilot/profile"
)

// Demo authentication: a single local account with no credentials. Login
// installs the sample workspace, logout clears everything back to the
// signed-out state.

type authState struct {
	LoggedIn bool `json:"loggedIn"`
}

// GetAuthState handles GET /api/auth
func (h *Handlers) GetAuthState(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	RespondData(c, authState{LoggedIn: h.loggedIn})
}

// Login handles POST /api/auth/login
func (h *Handlers) Login(c *gin.Context) {
	h.mu.Lock()
	h.loggedIn = true
	h.mu.Unlock()

	h.Workspace.Store().Reset(chat.SeedSessions())
	h.FoodLog.Reset(foodlog.SeedEntries())
	h.Profile.Reset(profile.SeedProfile())

	RespondData(c, authState{LoggedIn: true})
}

// Logout handles POST /api/auth/logout
func (h *Handlers) Logout(c *gin.Context) {
	h.mu.Lock()
	h.loggedIn = false
	h.mu.Unlock()

	h.Workspace.Store().Reset(nil)
	h.FoodLog.Reset(nil)
	h.Profile.Reset(models.DefaultProfile())

	RespondData(c, authState{LoggedIn: false})
}
