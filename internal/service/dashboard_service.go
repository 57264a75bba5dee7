package service

import (
	"context"
	"fmt"

	"github.com/yuqie6/lifemirror/internal/content"
	"github.com/yuqie6/lifemirror/internal/journal"
	"github.com/yuqie6/lifemirror/internal/model"
)

// Card 仪表盘卡片：标签 + 图标引用 + 展示值
type Card struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Value string `json:"value"`
}

// noData 没有记录时卡片的占位文案。卡片集合是固定的，
// 没数据也要渲染占位，而不是隐藏卡片。
const noData = "暂无数据"

// DashboardService 把账本 + 各日志投影成固定的一组卡片
type DashboardService struct {
	tracker  *TrackerService
	journals *JournalService
	registry *content.Registry
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(tracker *TrackerService, journals *JournalService, registry *content.Registry) *DashboardService {
	return &DashboardService{tracker: tracker, journals: journals, registry: registry}
}

// Cards 生成仪表盘卡片。纯读取，无副作用
// （按日滚动的 key 清扫发生在 Daily.Load 里，属于读取路径的一部分）。
func (s *DashboardService) Cards(ctx context.Context) []Card {
	stats := s.tracker.Stats(ctx)
	hydration := s.journals.TodayHydration(ctx)
	checklist := s.journals.TodayChecklist(ctx)

	cards := []Card{
		{
			Label: "工具使用",
			Icon:  "sparkles",
			Value: fmt.Sprintf("%d 次 · %d 种工具", stats.TotalCalculatorUses, stats.UniqueCalculatorsUsed),
		},
		{
			Label: "测验",
			Icon:  "trophy",
			Value: quizValue(stats.TotalQuizAttempts, stats.PrakritiQuizCompletions),
		},
		{
			Label: "饮水打卡",
			Icon:  s.icon("hydration"),
			Value: fmt.Sprintf("%d / %d 杯", hydration.Intake, hydration.Goal),
		},
		{
			Label: "晨间作息",
			Icon:  s.icon("dinacharya"),
			Value: checklistValue(len(checklist.Done)),
		},
	}

	cards = append(cards,
		latestCard(ctx, "情绪", s.icon("mood"), s.journals.Mood, func(e journal.Entry[model.MoodEntry]) string {
			return e.Payload.Mood
		}),
		countCard("感恩日记", s.icon("gratitude"), len(s.journals.Gratitude.List(ctx)), "条"),
		latestCard(ctx, "运动", s.icon("exercise"), s.journals.Exercise, func(e journal.Entry[model.ExerciseEntry]) string {
			return fmt.Sprintf("%s · %d 分钟", e.Payload.Activity, e.Payload.DurationMin)
		}),
		latestCard(ctx, "睡眠", s.icon("sleep"), s.journals.Sleep, func(e journal.Entry[model.SleepEntry]) string {
			return fmt.Sprintf("%.1f 小时", e.Payload.Hours)
		}),
		silenceCard(ctx, s.icon("silence"), s.journals.Silence),
		countCard("冥想日志", s.icon("meditation"), len(s.journals.Meditation.List(ctx)), "篇"),
		countCard("自省练习", s.icon("self-inquiry"), len(s.journals.SelfInquiry.List(ctx)), "条"),
		countCard("愿心回顾", s.icon("sankalpa"), len(s.journals.Sankalpa.List(ctx)), "条"),
		countCard("灵性书单", s.icon("books"), len(s.journals.Books.List(ctx)), "本"),
	)

	return cards
}

// latestCard 取最新一条记录渲染；没有记录时渲染占位
func latestCard[T any](ctx context.Context, label, icon string, log *journal.Log[T], render func(journal.Entry[T]) string) Card {
	entries := log.List(ctx)
	if len(entries) == 0 {
		return Card{Label: label, Icon: icon, Value: noData}
	}
	return Card{Label: label, Icon: icon, Value: render(entries[0])}
}

// countCard 按条数渲染
func countCard(label, icon string, count int, unit string) Card {
	if count == 0 {
		return Card{Label: label, Icon: icon, Value: noData}
	}
	return Card{Label: label, Icon: icon, Value: fmt.Sprintf("%d %s", count, unit)}
}

// silenceCard 静默练习按累计时长渲染
func silenceCard(ctx context.Context, icon string, log *journal.Log[model.SilenceEntry]) Card {
	entries := log.List(ctx)
	if len(entries) == 0 {
		return Card{Label: "静默练习", Icon: icon, Value: noData}
	}
	total := 0
	for _, e := range entries {
		total += e.Payload.DurationMin
	}
	return Card{Label: "静默练习", Icon: icon, Value: fmt.Sprintf("累计 %d 分钟", total)}
}

func (s *DashboardService) icon(slug string) string {
	if s.registry == nil {
		return "sparkles"
	}
	return s.registry.CalculatorIcon(slug)
}

func quizValue(attempts, prakriti int) string {
	if attempts == 0 && prakriti == 0 {
		return noData
	}
	return fmt.Sprintf("%d 次测验 · %d 次体质问卷", attempts, prakriti)
}

func checklistValue(done int) string {
	if done == 0 {
		return noData
	}
	return fmt.Sprintf("今日完成 %d 项", done)
}
