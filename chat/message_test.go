package chat

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{0, 5, "上午 12:05"},
		{9, 30, "上午 9:30"},
		{12, 46, "下午 12:46"},
		{13, 15, "下午 1:15"},
		{23, 59, "下午 11:59"},
	}
	for _, tc := range tests {
		ts := time.Date(2025, 6, 1, tc.hour, tc.minute, 0, 0, time.UTC)
		if got := FormatClock(ts); got != tc.want {
			t.Errorf("FormatClock(%02d:%02d) = %q, want %q", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestResultMessageIsAlwaysAssistant(t *testing.T) {
	msg := NewResultMessage(sampleResult(), "下午 12:46")
	if msg.GetRole() != RoleAssistant {
		t.Fatalf("role = %q, want assistant", msg.GetRole())
	}

	data, err := json.Marshal(Message(msg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire["kind"] != "result" || wire["role"] != "assistant" {
		t.Fatalf("wire shape = %v", wire)
	}
	if wire["total"] != "248 kcal" {
		t.Fatalf("total = %v", wire["total"])
	}
}

func TestPlainMessageWireShape(t *testing.T) {
	msg := NewPlainMessage(RoleUser, "一份鸡肉沙拉", "下午 12:45")

	data, err := json.Marshal(Message(msg))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if wire["kind"] != "plain" || wire["role"] != "user" || wire["content"] != "一份鸡肉沙拉" {
		t.Fatalf("wire shape = %v", wire)
	}
	if wire["time"] != "下午 12:45" {
		t.Fatalf("time = %v", wire["time"])
	}
}
