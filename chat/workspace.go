package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/foodpilot-ai/food-pilot/log"
	"github.com/foodpilot-ai/food-pilot/models"
	"github.com/foodpilot-ai/food-pilot/notifications"
)

// analysisFallbackText is the conversational reply shown whenever the
// analysis call fails; the underlying cause is only logged.
const analysisFallbackText = "抱歉，我现在无法处理该请求。能请你再次描述一下这顿餐食吗？"

var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrAnalysisInFlight = errors.New("analysis already in flight")
)

var workspaceLogger = log.GetLogger("Workspace")

// Analyzer turns a free-text meal description into a structured nutrition
// estimate.
type Analyzer interface {
	Analyze(ctx context.Context, query string) (*models.NutritionResult, error)
}

// Workspace coordinates the session store and the analyzer. Per conversation
// it is a two-state machine, idle -> awaiting-analysis -> idle: while a
// request is in flight further sends are refused (dropped, not queued), and
// the settled assistant message is appended to the session id captured when
// the send started, regardless of where the user navigated in the meantime.
type Workspace struct {
	store    *Store
	analyzer Analyzer
	now      func() time.Time

	mu              sync.Mutex
	inFlight        bool
	inFlightSession string
}

// NewWorkspace wires the workspace over a session store and an analyzer.
func NewWorkspace(store *Store, analyzer Analyzer) *Workspace {
	return &Workspace{
		store:    store,
		analyzer: analyzer,
		now:      time.Now,
	}
}

// Store exposes the underlying session store.
func (w *Workspace) Store() *Store {
	return w.store
}

// IsAnalyzing reports whether an analysis is in flight and for which session.
func (w *Workspace) IsAnalyzing() (bool, string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight, w.inFlightSession
}

// SendResult carries both halves of a completed exchange.
type SendResult struct {
	SessionID        string
	UserMessage      Message
	AssistantMessage Message
}

// SendMessage runs one exchange: append the user message to the active
// session (creating one seeded with it when none exists), call the analyzer,
// and append the assistant reply — the structured result on success, the
// fixed fallback text on any failure. Blank input returns ErrEmptyMessage; a
// send while another is in flight returns ErrAnalysisInFlight and appends
// nothing. Either way nothing is queued.
func (w *Workspace) SendMessage(ctx context.Context, text string) (*SendResult, error) {
	query := strings.TrimSpace(text)
	if query == "" {
		return nil, ErrEmptyMessage
	}

	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return nil, ErrAnalysisInFlight
	}
	w.inFlight = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.inFlight = false
		w.inFlightSession = ""
		w.mu.Unlock()
	}()

	userMsg := NewPlainMessage(RoleUser, query, FormatClock(w.now()))

	// Capture the target session id before suspending on the analyzer; the
	// reply goes to this id even if the active session changes mid-flight.
	targetID := w.store.ActiveID()
	if targetID == "" {
		targetID = w.store.CreateSession().ID
	}
	w.store.AppendMessage(targetID, userMsg)

	w.mu.Lock()
	w.inFlightSession = targetID
	w.mu.Unlock()

	capturedTitle := ""
	if sess, ok := w.store.Get(targetID); ok {
		capturedTitle = sess.Title
	}

	notifications.GetService().NotifySessionUpdated(targetID)
	notifications.GetService().NotifyAnalysisStarted(targetID)

	result, err := w.analyzer.Analyze(ctx, query)

	var assistantMsg Message
	if err != nil {
		workspaceLogger.Error().Err(err).Str("session", targetID).Msg("analysis failed")
		assistantMsg = NewPlainMessage(RoleAssistant, analysisFallbackText, FormatClock(w.now()))
	} else {
		assistantMsg = NewResultMessage(result, FormatClock(w.now()))
	}

	// No cancellation: a settled analysis is always appended, reviving the
	// captured session when it was deleted mid-flight.
	w.store.AppendOrRevive(targetID, capturedTitle, assistantMsg)

	notifications.GetService().NotifyAnalysisCompleted(targetID)
	notifications.GetService().NotifySessionUpdated(targetID)

	return &SendResult{
		SessionID:        targetID,
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
	}, nil
}
