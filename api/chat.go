package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/foodpilot-ai/food-pilot/chat"
)

type chatRequest struct {
	Text string `json:"text"`
}

// ChatResponse carries both halves of a completed exchange.
type ChatResponse struct {
	SessionID        string       `json:"sessionId"`
	UserMessage      chat.Message `json:"userMessage"`
	AssistantMessage chat.Message `json:"assistantMessage"`
}

// SendChat handles POST /api/chat. The request blocks until the analysis
// settles; a send while another analysis is in flight is refused with 409.
func (h *Handlers) SendChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondBadRequest(c, "invalid request body")
		return
	}

	result, err := h.Workspace.SendMessage(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			RespondValidationError(c, "text must not be empty")
		case errors.Is(err, chat.ErrAnalysisInFlight):
			RespondConflict(c, "an analysis is already in progress")
		default:
			RespondInternalError(c, "failed to process message")
		}
		return
	}

	RespondData(c, ChatResponse{
		SessionID:        result.SessionID,
		UserMessage:      result.UserMessage,
		AssistantMessage: result.AssistantMessage,
	})
}
