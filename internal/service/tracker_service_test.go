package service

import (
	"context"
	"testing"

	"github.com/yuqie6/lifemirror/internal/content"
	"github.com/yuqie6/lifemirror/internal/eventbus"
	"github.com/yuqie6/lifemirror/internal/ledger"
	"github.com/yuqie6/lifemirror/internal/storage"
)

func newTestTracker(t *testing.T) (*TrackerService, *eventbus.Hub) {
	t.Helper()
	registry, err := content.NewRegistry("")
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	hub := eventbus.NewHub()
	l := ledger.New(storage.NewMemoryStore())
	return NewTrackerService(l, registry, hub), hub
}

func TestRecordCalculatorUse(t *testing.T) {
	svc, _ := newTestTracker(t)
	ctx := context.Background()

	if err := svc.RecordCalculatorUse(ctx, "bmi"); err != nil {
		t.Fatalf("RecordCalculatorUse: %v", err)
	}
	if err := svc.RecordCalculatorUse(ctx, "bmi"); err != nil {
		t.Fatalf("RecordCalculatorUse: %v", err)
	}

	stats := svc.Stats(ctx)
	if stats.TotalCalculatorUses != 2 {
		t.Errorf("TotalCalculatorUses = %d, 期望 2", stats.TotalCalculatorUses)
	}
	if stats.UniqueCalculatorsUsed != 1 {
		t.Errorf("UniqueCalculatorsUsed = %d, 期望 1", stats.UniqueCalculatorsUsed)
	}
}

func TestRecordCalculatorUseUnknownSlug(t *testing.T) {
	svc, _ := newTestTracker(t)
	ctx := context.Background()

	if err := svc.RecordCalculatorUse(ctx, "no-such-tool"); err == nil {
		t.Fatal("未知 slug 应该被拒绝")
	}
	if stats := svc.Stats(ctx); stats.TotalCalculatorUses != 0 {
		t.Errorf("被拒绝的调用不应计数, TotalCalculatorUses = %d", stats.TotalCalculatorUses)
	}
}

func TestCompleteQuizScored(t *testing.T) {
	svc, _ := newTestTracker(t)
	ctx := context.Background()

	outcome, err := svc.CompleteQuiz(ctx, "anatomy-basics", 7, 10, "knowledge")
	if err != nil {
		t.Fatalf("CompleteQuiz: %v", err)
	}
	if outcome.Score != 70 || outcome.MaxScore != 100 {
		t.Errorf("outcome = %+v, 期望 70/100", outcome)
	}

	state := svc.State(ctx)
	record, ok := state.QuizCompletions["anatomy-basics"]
	if !ok {
		t.Fatal("账本里没有测验记录")
	}
	if record.Attempts != 1 || record.BestScore == nil || *record.BestScore != 70 {
		t.Errorf("record = %+v", record)
	}
}

func TestCompleteQuizPrakriti(t *testing.T) {
	svc, _ := newTestTracker(t)
	ctx := context.Background()

	// 体质问卷不计分，名字和分数都不参与
	if _, err := svc.CompleteQuiz(ctx, "", 0, 0, QuizKindPrakriti); err != nil {
		t.Fatalf("CompleteQuiz: %v", err)
	}

	stats := svc.Stats(ctx)
	if stats.PrakritiQuizCompletions != 1 {
		t.Errorf("PrakritiQuizCompletions = %d, 期望 1", stats.PrakritiQuizCompletions)
	}
	if stats.TotalQuizAttempts != 0 {
		t.Errorf("体质问卷不应算进计分测验, TotalQuizAttempts = %d", stats.TotalQuizAttempts)
	}
}

func TestCompleteQuizInvalidInput(t *testing.T) {
	svc, _ := newTestTracker(t)
	ctx := context.Background()

	if _, err := svc.CompleteQuiz(ctx, "", 5, 10, "knowledge"); err == nil {
		t.Error("空测验名应该报错")
	}
	if _, err := svc.CompleteQuiz(ctx, "quiz", 11, 10, "knowledge"); err == nil {
		t.Error("答对数超过总数应该报错")
	}
}

func TestTrackerPublishesEvents(t *testing.T) {
	svc, hub := newTestTracker(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := hub.Subscribe(ctx, 8)
	if err := svc.RecordWellnessPlanGeneration(ctx); err != nil {
		t.Fatalf("RecordWellnessPlanGeneration: %v", err)
	}
	if err := svc.RecordKoshaAdvisorUsage(ctx); err != nil {
		t.Fatalf("RecordKoshaAdvisorUsage: %v", err)
	}

	for i := 0; i < 2; i++ {
		evt := <-ch
		if evt.Type != eventbus.TypeActivity {
			t.Errorf("事件类型 = %q, 期望 %q", evt.Type, eventbus.TypeActivity)
		}
	}

	stats := svc.Stats(ctx)
	if stats.WellnessPlanGenerations != 1 || stats.KoshaAdvisorUsages != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
