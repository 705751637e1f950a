package notifications

import (
	"sync"
	"time"
)

// EventType represents the type of notification event
type EventType string

const (
	EventConnected         EventType = "connected"
	EventAnalysisStarted   EventType = "analysis-started"
	EventAnalysisCompleted EventType = "analysis-completed"
	EventSessionUpdated    EventType = "session-updated"
)

// Event represents a notification event pushed to the UI over SSE. The
// analysis events drive the typing indicator; session-updated tells the UI to
// refresh the session list.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	SessionID string    `json:"sessionId,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Service manages SSE subscriptions and event broadcasting
type Service struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	shutdown    bool
}

var (
	service     *Service
	serviceOnce sync.Once
)

// GetService returns the singleton notification service
func GetService() *Service {
	serviceOnce.Do(func() {
		service = NewService()
	})
	return service
}

// NewService creates a new notification service
func NewService() *Service {
	return &Service{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe creates a new subscription channel.
// Returns the event channel and an unsubscribe function.
func (s *Service) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 10)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, exists := s.subscribers[ch]; exists {
			delete(s.subscribers, ch)
			close(ch)
		}
	}

	return ch, unsubscribe
}

// Notify broadcasts an event to all subscribers
func (s *Service) Notify(event Event) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.shutdown {
		return
	}

	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			// Channel full, skip this subscriber
		}
	}
}

// NotifyAnalysisStarted signals that an analysis request went in flight
func (s *Service) NotifyAnalysisStarted(sessionID string) {
	s.Notify(Event{Type: EventAnalysisStarted, SessionID: sessionID})
}

// NotifyAnalysisCompleted signals that the in-flight analysis settled
func (s *Service) NotifyAnalysisCompleted(sessionID string) {
	s.Notify(Event{Type: EventAnalysisCompleted, SessionID: sessionID})
}

// NotifySessionUpdated signals that a session's log or title changed
func (s *Service) NotifySessionUpdated(sessionID string) {
	s.Notify(Event{Type: EventSessionUpdated, SessionID: sessionID})
}

// Shutdown closes all subscriber channels so SSE handlers can return
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdown = true
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
}
