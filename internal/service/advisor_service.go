package service

import (
	"context"
	"log/slog"

	"github.com/yuqie6/lifemirror/internal/ai"
)

// AdvisorService 在 AI 顾问外面套一层活动记账：
// 每次成功的调用都会计入账本对应的计数器。
// AI 调用失败时不计数，记账失败不影响返回结果。
type AdvisorService struct {
	advisor *ai.Advisor
	tracker *TrackerService
}

// NewAdvisorService 创建 AI 顾问服务
func NewAdvisorService(advisor *ai.Advisor, tracker *TrackerService) *AdvisorService {
	return &AdvisorService{advisor: advisor, tracker: tracker}
}

// RecommendForSymptoms 根据症状描述生成养生建议并计数
func (s *AdvisorService) RecommendForSymptoms(ctx context.Context, symptoms string) (*ai.Recommendations, error) {
	rec, err := s.advisor.RecommendForSymptoms(ctx, symptoms)
	if err != nil {
		return nil, err
	}
	if err := s.tracker.RecordWellnessPlanGeneration(ctx); err != nil {
		slog.Warn("记录养生建议使用次数失败", "error", err)
	}
	return rec, nil
}

// GenerateKoshaPlan 根据体质类型生成五鞘调理方案并计数
func (s *AdvisorService) GenerateKoshaPlan(ctx context.Context, prakriti, concerns string) (*ai.KoshaPlan, error) {
	plan, err := s.advisor.GenerateKoshaPlan(ctx, prakriti, concerns)
	if err != nil {
		return nil, err
	}
	if err := s.tracker.RecordKoshaAdvisorUsage(ctx); err != nil {
		slog.Warn("记录体质顾问使用次数失败", "error", err)
	}
	return plan, nil
}
