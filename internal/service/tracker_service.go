package service

import (
	"context"
	"fmt"

	"github.com/yuqie6/lifemirror/internal/content"
	"github.com/yuqie6/lifemirror/internal/eventbus"
	"github.com/yuqie6/lifemirror/internal/ledger"
	"github.com/yuqie6/lifemirror/internal/wellness"
)

// TrackerService 活动追踪服务：账本写入的唯一入口，写入后广播事件
type TrackerService struct {
	ledger   *ledger.Ledger
	registry *content.Registry
	hub      *eventbus.Hub
}

// NewTrackerService 创建追踪服务
func NewTrackerService(l *ledger.Ledger, registry *content.Registry, hub *eventbus.Hub) *TrackerService {
	return &TrackerService{ledger: l, registry: registry, hub: hub}
}

// RecordCalculatorUse 记录一次工具使用。未知 slug 拒绝，防止脏数据进账本。
func (s *TrackerService) RecordCalculatorUse(ctx context.Context, slug string) error {
	if s.registry != nil && !s.registry.KnownCalculator(slug) {
		return fmt.Errorf("未知的工具: %s", slug)
	}
	if err := s.ledger.IncrementCalculatorUsage(ctx, slug); err != nil {
		return err
	}
	s.hub.Publish(eventbus.ActivityEvent("calculator", slug))
	return nil
}

// QuizKindPrakriti 体质测验（分类问卷，不计分）
const QuizKindPrakriti = "prakriti"

// QuizOutcome 测验完成结果
type QuizOutcome struct {
	Score    int
	MaxScore int
}

// CompleteQuiz 记录一次测验完成。
// 体质测验只计次数；知识测验按答对题数计分并更新最高分。
func (s *TrackerService) CompleteQuiz(ctx context.Context, name string, correctCount, totalCount int, kind string) (QuizOutcome, error) {
	if kind == QuizKindPrakriti {
		if err := s.ledger.IncrementPrakritiQuizCompletions(ctx); err != nil {
			return QuizOutcome{}, err
		}
		s.hub.Publish(eventbus.ActivityEvent("prakriti_quiz", ""))
		return QuizOutcome{}, nil
	}

	if name == "" {
		return QuizOutcome{}, fmt.Errorf("测验名不能为空")
	}
	result, err := wellness.ScoreQuiz(correctCount, totalCount)
	if err != nil {
		return QuizOutcome{}, err
	}
	if err := s.ledger.RecordQuizCompletion(ctx, name, result.Score, result.MaxScore); err != nil {
		return QuizOutcome{}, err
	}
	s.hub.Publish(eventbus.ActivityEvent("quiz", name))
	return QuizOutcome{Score: result.Score, MaxScore: result.MaxScore}, nil
}

// RecordWellnessPlanGeneration 症状调理建议生成 +1
func (s *TrackerService) RecordWellnessPlanGeneration(ctx context.Context) error {
	if err := s.ledger.IncrementWellnessPlanGenerations(ctx); err != nil {
		return err
	}
	s.hub.Publish(eventbus.ActivityEvent("wellness_plan", ""))
	return nil
}

// RecordKoshaAdvisorUsage 五鞘顾问使用 +1
func (s *TrackerService) RecordKoshaAdvisorUsage(ctx context.Context) error {
	if err := s.ledger.IncrementKoshaAdvisorUsages(ctx); err != nil {
		return err
	}
	s.hub.Publish(eventbus.ActivityEvent("kosha_advisor", ""))
	return nil
}

// Stats 账本统计投影
func (s *TrackerService) Stats(ctx context.Context) ledger.Stats {
	return s.ledger.ProjectStats(ctx)
}

// State 账本完整状态（CLI 报表用）
func (s *TrackerService) State(ctx context.Context) ledger.State {
	return s.ledger.Read(ctx)
}
