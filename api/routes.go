package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/foodpilot-ai/food-pilot/chat"
	"github.com/foodpilot-ai/food-pilot/foodlog"
	"github.com/foodpilot-ai/food-pilot/profile"
)

// Handlers bundles the application state the API operates on. One instance is
// shared by all routes.
type Handlers struct {
	Workspace *chat.Workspace
	Profile   *profile.Store
	FoodLog   *foodlog.Store

	mu       sync.RWMutex
	loggedIn bool
}

// NewHandlers wires the API over the application stores. The demo account
// starts logged in so the sample workspace is visible on first load.
func NewHandlers(workspace *chat.Workspace, profileStore *profile.Store, foodLog *foodlog.Store) *Handlers {
	return &Handlers{
		Workspace: workspace,
		Profile:   profileStore,
		FoodLog:   foodLog,
		loggedIn:  true,
	}
}

// SetupRoutes registers all API routes on the gin engine
func SetupRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/health", Health)

	api := r.Group("/api")
	{
		api.GET("/sessions", h.ListSessions)
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.DELETE("/sessions/:id", h.DeleteSession)
		api.PUT("/sessions/:id/title", h.RenameSession)
		api.POST("/sessions/:id/activate", h.ActivateSession)

		api.POST("/chat", h.SendChat)

		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", h.UpdateProfile)
		api.POST("/profile/allergies", h.ToggleAllergy)

		api.GET("/foodlog", h.ListFoodLog)
		api.GET("/foodlog/:id", h.GetFoodLogEntry)

		api.GET("/auth", h.GetAuthState)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)

		api.GET("/notifications/stream", h.NotificationStream)
	}
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
