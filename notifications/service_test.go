package notifications

import (
	"testing"
	"time"
)

func TestSubscribeAndNotify(t *testing.T) {
	s := NewService()

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.NotifyAnalysisStarted("8291")

	select {
	case event := <-events:
		if event.Type != EventAnalysisStarted || event.SessionID != "8291" {
			t.Fatalf("event = %+v", event)
		}
		if event.Timestamp == 0 {
			t.Fatal("timestamp not stamped")
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	s := NewService()

	events, unsubscribe := s.Subscribe()
	unsubscribe()

	if _, ok := <-events; ok {
		t.Fatal("channel still open after unsubscribe")
	}

	// Double unsubscribe must not panic
	unsubscribe()
}

func TestNotifyDropsWhenSubscriberFull(t *testing.T) {
	s := NewService()

	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	// Fill the buffer past capacity; Notify must never block
	for i := 0; i < 20; i++ {
		s.NotifySessionUpdated("8291")
	}

	drained := 0
	for {
		select {
		case <-events:
			drained++
		default:
			if drained == 0 || drained > 10 {
				t.Fatalf("drained %d events", drained)
			}
			return
		}
	}
}

func TestShutdownClosesSubscribers(t *testing.T) {
	s := NewService()

	events, _ := s.Subscribe()
	s.Shutdown()

	if _, ok := <-events; ok {
		t.Fatal("channel still open after shutdown")
	}

	// Notify after shutdown is a no-op
	s.NotifySessionUpdated("8291")
}
