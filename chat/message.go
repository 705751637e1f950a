package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/foodpilot-ai/food-pilot/models"
	"github.com/google/uuid"
)

// Role is the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Kind discriminates the two message shapes on the wire.
type Kind string

const (
	KindPlain  Kind = "plain"
	KindResult Kind = "result"
)

// Message is implemented by both message shapes. Messages are immutable once
// appended to a session log. A result message is assistant-authored by
// construction; a user-role result is unrepresentable.
type Message interface {
	json.Marshaler
	GetKind() Kind
	GetRole() Role
	GetClock() string
}

var (
	_ Message = (*PlainMessage)(nil)
	_ Message = (*ResultMessage)(nil)
)

// PlainMessage is free text from either side of the conversation.
type PlainMessage struct {
	ID      string
	Role    Role
	Clock   string
	Content string
}

// ResultMessage is an assistant message carrying a structured nutrition
// breakdown. Suggestion is the optional trailing follow-up line.
type ResultMessage struct {
	ID          string
	Clock       string
	Title       string
	Confidence  string
	Description string
	Items       []models.IngredientItem
	Total       string
	Suggestion  string
}

// NewPlainMessage builds a free-text message stamped with the given clock.
func NewPlainMessage(role Role, content, clock string) *PlainMessage {
	return &PlainMessage{
		ID:      uuid.NewString(),
		Role:    role,
		Clock:   clock,
		Content: content,
	}
}

// NewResultMessage wraps an analysis result as an assistant message.
func NewResultMessage(result *models.NutritionResult, clock string) *ResultMessage {
	return &ResultMessage{
		ID:          uuid.NewString(),
		Clock:       clock,
		Title:       result.Title,
		Confidence:  result.Confidence,
		Description: result.Description,
		Items:       result.Items,
		Total:       result.TotalCalories,
		Suggestion:  result.Suggestion,
	}
}

func (m *PlainMessage) GetKind() Kind    { return KindPlain }
func (m *PlainMessage) GetRole() Role    { return m.Role }
func (m *PlainMessage) GetClock() string { return m.Clock }

func (m *ResultMessage) GetKind() Kind    { return KindResult }
func (m *ResultMessage) GetRole() Role    { return RoleAssistant }
func (m *ResultMessage) GetClock() string { return m.Clock }

// MarshalJSON emits the wire shape the UI renders: a kind tag plus the flat
// fields of the variant.
func (m *PlainMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    Kind   `json:"kind"`
		ID      string `json:"id"`
		Role    Role   `json:"role"`
		Time    string `json:"time"`
		Content string `json:"content"`
	}{KindPlain, m.ID, m.Role, m.Clock, m.Content})
}

func (m *ResultMessage) MarshalJSON() ([]byte, error) {
	items := m.Items
	if items == nil {
		items = []models.IngredientItem{}
	}
	return json.Marshal(struct {
		Kind        Kind                    `json:"kind"`
		ID          string                  `json:"id"`
		Role        Role                    `json:"role"`
		Time        string                  `json:"time"`
		Title       string                  `json:"title"`
		Confidence  string                  `json:"confidence"`
		Description string                  `json:"description"`
		Items       []models.IngredientItem `json:"items"`
		Total       string                  `json:"total"`
		Content     string                  `json:"content,omitempty"`
	}{KindResult, m.ID, RoleAssistant, m.Clock, m.Title, m.Confidence, m.Description, items, m.Total, m.Suggestion})
}

// FormatClock renders a timestamp the way the UI shows message times,
// zh-CN 12-hour style ("下午 12:46").
func FormatClock(t time.Time) string {
	period := "上午"
	hour := t.Hour()
	if hour >= 12 {
		period = "下午"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%s %d:%02d", period, hour, t.Minute())
}
