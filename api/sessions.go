package api

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodpilot-ai/food-pilot/chat"
)

// SessionSummary is the list representation of a chat session.
type SessionSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	Timestamp time.Time `json:"timestamp"`
	Messages  int       `json:"messageCount"`
}

// WorkspaceState is the payload of GET /api/sessions: the full sidebar state
// plus the in-flight analysis indicator.
type WorkspaceState struct {
	Sessions           []SessionSummary `json:"sessions"`
	ActiveSessionID    string           `json:"activeSessionId"`
	IsAnalyzing        bool             `json:"isAnalyzing"`
	AnalyzingSessionID string           `json:"analyzingSessionId,omitempty"`
	StarterQueries     []string         `json:"starterQueries"`
}

func summarize(s chat.Session) SessionSummary {
	return SessionSummary{
		ID:        s.ID,
		Title:     s.Title,
		Icon:      s.Icon,
		Timestamp: s.Timestamp,
		Messages:  len(s.Messages),
	}
}

// ListSessions handles GET /api/sessions
func (h *Handlers) ListSessions(c *gin.Context) {
	store := h.Workspace.Store()
	sessions := store.Sessions()

	summaries := make([]SessionSummary, 0, len(sessions))
	for _, s := range sessions {
		summaries = append(summaries, summarize(s))
	}

	analyzing, sessionID := h.Workspace.IsAnalyzing()
	RespondData(c, WorkspaceState{
		Sessions:           summaries,
		ActiveSessionID:    store.ActiveID(),
		IsAnalyzing:        analyzing,
		AnalyzingSessionID: sessionID,
		StarterQueries:     chat.StarterQueries(),
	})
}

// CreateSession handles POST /api/sessions
func (h *Handlers) CreateSession(c *gin.Context) {
	session := h.Workspace.Store().CreateSession()
	RespondCreated(c, session, "/api/sessions/"+session.ID)
}

// GetSession handles GET /api/sessions/:id
func (h *Handlers) GetSession(c *gin.Context) {
	session, ok := h.Workspace.Store().Get(c.Param("id"))
	if !ok {
		RespondNotFound(c, "session not found")
		return
	}
	RespondData(c, session)
}

// DeleteSession handles DELETE /api/sessions/:id
func (h *Handlers) DeleteSession(c *gin.Context) {
	if err := h.Workspace.Store().DeleteSession(c.Param("id")); err != nil {
		RespondNotFound(c, "session not found")
		return
	}
	RespondNoContent(c)
}

type renameRequest struct {
	Title string `json:"title"`
}

// RenameSession handles PUT /api/sessions/:id/title
func (h *Handlers) RenameSession(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	store := h.Workspace.Store()
	if err := store.RenameSession(c.Param("id"), req.Title); err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyTitle):
			RespondValidationError(c, "title must not be empty")
		case errors.Is(err, chat.ErrSessionNotFound):
			RespondNotFound(c, "session not found")
		default:
			RespondInternalError(c, "failed to rename session")
		}
		return
	}
	session, _ := store.Get(c.Param("id"))
	RespondData(c, session)
}

// ActivateSession handles POST /api/sessions/:id/activate
func (h *Handlers) ActivateSession(c *gin.Context) {
	if err := h.Workspace.Store().SetActive(c.Param("id")); err != nil {
		RespondNotFound(c, "session not found")
		return
	}
	RespondNoContent(c)
}
