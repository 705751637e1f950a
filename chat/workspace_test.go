package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodpilot-ai/food-pilot/models"
)

type stubAnalyzer struct {
	result *models.NutritionResult
	err    error

	started chan struct{} // closed when Analyze is entered, if set
	release chan struct{} // Analyze blocks until closed, if set
}

func (a *stubAnalyzer) Analyze(ctx context.Context, query string) (*models.NutritionResult, error) {
	if a.started != nil {
		close(a.started)
	}
	if a.release != nil {
		<-a.release
	}
	return a.result, a.err
}

func sampleResult() *models.NutritionResult {
	return &models.NutritionResult{
		Title:       "分析完成",
		Description: "这份餐食的热量估算如下。",
		Confidence:  "高准确度",
		Items: []models.IngredientItem{
			{Name: "烤鸡胸肉", Portion: "150g", Energy: "248 kcal"},
		},
		TotalCalories: "248 kcal",
		Suggestion:    "需要我推荐一份搭配的蔬菜吗？",
	}
}

func TestSendMessageCreatesSessionWhenNoneExists(t *testing.T) {
	w := NewWorkspace(testStore(), &stubAnalyzer{result: sampleResult()})

	res, err := w.SendMessage(context.Background(), "一份鸡胸肉的热量")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	store := w.Store()
	if store.Len() != 1 {
		t.Fatalf("sessions = %d, want 1", store.Len())
	}
	if got := store.ActiveID(); got != res.SessionID {
		t.Fatalf("active = %q, want %q", got, res.SessionID)
	}

	sess, _ := store.Get(res.SessionID)
	if len(sess.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(sess.Messages))
	}
	if sess.Messages[0].GetKind() != KindPlain || sess.Messages[0].GetRole() != RoleUser {
		t.Fatal("first message is not the user query")
	}
	if sess.Messages[1].GetKind() != KindResult {
		t.Fatal("second message is not the analysis result")
	}
	if sess.Title != "一份鸡胸肉的热量" {
		t.Fatalf("title = %q", sess.Title)
	}
}

func TestSendMessageBlankInput(t *testing.T) {
	w := NewWorkspace(testStore(), &stubAnalyzer{result: sampleResult()})

	if _, err := w.SendMessage(context.Background(), "   \n\t "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("err = %v, want ErrEmptyMessage", err)
	}
	if w.Store().Len() != 0 {
		t.Fatal("blank send created a session")
	}
}

func TestSendMessageFailureAppendsFallback(t *testing.T) {
	w := NewWorkspace(testStore(), &stubAnalyzer{err: errors.New("upstream unavailable")})

	res, err := w.SendMessage(context.Background(), "一碗牛肉面")
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	sess, _ := w.Store().Get(res.SessionID)
	if len(sess.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(sess.Messages))
	}
	last := sess.Messages[1]
	if last.GetKind() != KindPlain || last.GetRole() != RoleAssistant {
		t.Fatal("fallback is not an assistant plain message")
	}
	if last.(*PlainMessage).Content != analysisFallbackText {
		t.Fatalf("fallback content = %q", last.(*PlainMessage).Content)
	}
}

func TestSendMessageDropsConcurrentSend(t *testing.T) {
	analyzer := &stubAnalyzer{
		result:  sampleResult(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := NewWorkspace(testStore(), analyzer)

	done := make(chan error, 1)
	go func() {
		_, err := w.SendMessage(context.Background(), "第一条")
		done <- err
	}()
	<-analyzer.started

	if _, err := w.SendMessage(context.Background(), "第二条"); !errors.Is(err, ErrAnalysisInFlight) {
		t.Fatalf("concurrent send err = %v, want ErrAnalysisInFlight", err)
	}

	close(analyzer.release)
	if err := <-done; err != nil {
		t.Fatalf("first send: %v", err)
	}

	// The dropped send left no trace
	sess, _ := w.Store().Get(w.Store().ActiveID())
	if len(sess.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(sess.Messages))
	}

	if analyzing, _ := w.IsAnalyzing(); analyzing {
		t.Fatal("in-flight flag not cleared")
	}
}

func TestSendMessageResultFollowsCapturedSession(t *testing.T) {
	analyzer := &stubAnalyzer{
		result:  sampleResult(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := NewWorkspace(testStore(), analyzer)
	target := w.Store().CreateSession()

	done := make(chan *SendResult, 1)
	go func() {
		res, err := w.SendMessage(context.Background(), "希腊沙拉的热量")
		if err != nil {
			t.Error(err)
		}
		done <- res
	}()
	<-analyzer.started

	// Navigate away while the analysis is still running
	other := w.Store().CreateSession()
	close(analyzer.release)
	res := <-done

	if res.SessionID != target.ID {
		t.Fatalf("result session = %q, want %q", res.SessionID, target.ID)
	}
	targetSess, _ := w.Store().Get(target.ID)
	if len(targetSess.Messages) != 2 {
		t.Fatalf("target messages = %d, want 2", len(targetSess.Messages))
	}
	otherSess, _ := w.Store().Get(other.ID)
	if len(otherSess.Messages) != 0 {
		t.Fatalf("other session received %d messages", len(otherSess.Messages))
	}
}

func TestSendMessageRevivesDeletedSession(t *testing.T) {
	analyzer := &stubAnalyzer{
		result:  sampleResult(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := NewWorkspace(testStore(), analyzer)
	target := w.Store().CreateSession()

	done := make(chan *SendResult, 1)
	go func() {
		res, err := w.SendMessage(context.Background(), "一份寿司拼盘")
		if err != nil {
			t.Error(err)
		}
		done <- res
	}()
	<-analyzer.started

	if err := w.Store().DeleteSession(target.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	close(analyzer.release)
	res := <-done

	sess, ok := w.Store().Get(res.SessionID)
	if !ok {
		t.Fatal("session was not revived after mid-flight delete")
	}
	if sess.Title != "一份寿司拼盘" {
		t.Fatalf("revived title = %q", sess.Title)
	}
	if len(sess.Messages) != 1 || sess.Messages[0].GetKind() != KindResult {
		t.Fatalf("revived session should hold only the settled result, got %d messages", len(sess.Messages))
	}
}

func TestIsAnalyzingReportsSession(t *testing.T) {
	analyzer := &stubAnalyzer{
		result:  sampleResult(),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := NewWorkspace(testStore(), analyzer)

	done := make(chan struct{})
	go func() {
		w.SendMessage(context.Background(), "查询")
		close(done)
	}()
	<-analyzer.started

	deadline := time.After(time.Second)
	for {
		analyzing, sessionID := w.IsAnalyzing()
		if analyzing && sessionID != "" {
			break
		}
		select {
		case <-deadline:
			t.Fatal("in-flight session never reported")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	close(analyzer.release)
	<-done
	if analyzing, _ := w.IsAnalyzing(); analyzing {
		t.Fatal("still analyzing after settle")
	}
}
