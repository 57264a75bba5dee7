package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/yuqie6/lifemirror/internal/eventbus"
	"github.com/yuqie6/lifemirror/internal/journal"
	"github.com/yuqie6/lifemirror/internal/model"
	"github.com/yuqie6/lifemirror/internal/pkg/config"
	"github.com/yuqie6/lifemirror/internal/storage"
)

// JournalService 管理所有特性日志与按日滚动的状态。
// 业务校验在这里完成，journal 包只管持久化形态。
type JournalService struct {
	hub *eventbus.Hub

	Mood        *journal.Log[model.MoodEntry]
	Gratitude   *journal.Log[model.GratitudeEntry]
	Exercise    *journal.Log[model.ExerciseEntry]
	Sleep       *journal.Log[model.SleepEntry]
	Silence     *journal.Log[model.SilenceEntry]
	Meditation  *journal.Log[model.MeditationNote]
	SelfInquiry *journal.Log[model.SelfInquiryEntry]
	Sankalpa    *journal.Log[model.SankalpaReflection]
	Books       *journal.Log[model.BookEntry]

	Hydration     *journal.Daily[int]
	HydrationGoal *journal.Daily[int]
	Checklist     *journal.Daily[model.DinacharyaChecklist]

	features map[string]featureLog
}

// NewJournalService 创建日志服务。各日志的条数上限来自配置。
func NewJournalService(store storage.Store, retention config.RetentionConfig, hub *eventbus.Hub) *JournalService {
	short := retention.ShortLogCap
	long := retention.LongLogCap

	s := &JournalService{
		hub:         hub,
		Mood:        journal.NewLog[model.MoodEntry](store, model.KeyMoodLog, short),
		Gratitude:   journal.NewLog[model.GratitudeEntry](store, model.KeyGratitudeLog, long),
		Exercise:    journal.NewLog[model.ExerciseEntry](store, model.KeyExerciseLog, short),
		Sleep:       journal.NewLog[model.SleepEntry](store, model.KeySleepLog, short),
		Silence:     journal.NewLog[model.SilenceEntry](store, model.KeySilenceLog, short),
		Meditation:  journal.NewLog[model.MeditationNote](store, model.KeyMeditationJournal, long),
		SelfInquiry: journal.NewLog[model.SelfInquiryEntry](store, model.KeySelfInquiryLog, long),
		Sankalpa:    journal.NewLog[model.SankalpaReflection](store, model.KeySankalpaReflections, long),
		Books:       journal.NewLog[model.BookEntry](store, model.KeyBookLog, long),

		Hydration:     journal.NewDaily[int](store, model.PrefixHydration),
		HydrationGoal: journal.NewDaily[int](store, model.PrefixHydrationGoal),
		Checklist:     journal.NewDaily[model.DinacharyaChecklist](store, model.PrefixDinacharya),
	}

	s.features = map[string]featureLog{
		"mood":         adapt(s.Mood, validateMood),
		"gratitude":    adapt(s.Gratitude, validateGratitude),
		"exercise":     adapt(s.Exercise, validateExercise),
		"sleep":        adapt(s.Sleep, validateSleep),
		"silence":      adapt(s.Silence, validateSilence),
		"meditation":   adapt(s.Meditation, validateMeditation),
		"self-inquiry": adapt(s.SelfInquiry, validateSelfInquiry),
		"sankalpa":     adapt(s.Sankalpa, validateSankalpa),
		"books":        adapt(s.Books, validateBook),
	}
	return s
}

// Features 返回所有日志特性名（固定集合，字典序）
func (s *JournalService) Features() []string {
	names := make([]string, 0, len(s.features))
	for name := range s.features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List 按特性名列出条目（新的在前）
func (s *JournalService) List(ctx context.Context, feature string) (any, error) {
	f, err := s.feature(feature)
	if err != nil {
		return nil, err
	}
	return f.list(ctx), nil
}

// Append 校验负载后追加条目，返回落盘后的条目
func (s *JournalService) Append(ctx context.Context, feature string, payload json.RawMessage) (any, error) {
	f, err := s.feature(feature)
	if err != nil {
		return nil, err
	}
	entry, err := f.append(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(eventbus.JournalEvent(feature, "append"))
	return entry, nil
}

// Remove 按 id 删除；id 不存在返回 false，不算错误
func (s *JournalService) Remove(ctx context.Context, feature, id string) (bool, error) {
	f, err := s.feature(feature)
	if err != nil {
		return false, err
	}
	removed, err := f.remove(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.hub.Publish(eventbus.JournalEvent(feature, "remove"))
	}
	return removed, nil
}

// Clear 清空某个特性的日志
func (s *JournalService) Clear(ctx context.Context, feature string) error {
	f, err := s.feature(feature)
	if err != nil {
		return err
	}
	if err := f.clear(ctx); err != nil {
		return err
	}
	s.hub.Publish(eventbus.JournalEvent(feature, "clear"))
	return nil
}

func (s *JournalService) feature(name string) (featureLog, error) {
	f, ok := s.features[name]
	if !ok {
		return nil, fmt.Errorf("未知的日志特性: %s", name)
	}
	return f, nil
}

// ========== 按日滚动的状态 ==========

// HydrationStatus 当日饮水状态
type HydrationStatus struct {
	Intake int
	Goal   int
}

// TodayHydration 读取当日饮水（首次读取会触发过期 key 清扫）
func (s *JournalService) TodayHydration(ctx context.Context) HydrationStatus {
	intake, _ := s.Hydration.Load(ctx)
	goal, ok := s.HydrationGoal.Load(ctx)
	if !ok || goal <= 0 {
		goal = model.HydrationGoalDefault
	}
	return HydrationStatus{Intake: intake, Goal: goal}
}

// Drink 当日饮水 +1 杯
func (s *JournalService) Drink(ctx context.Context) (HydrationStatus, error) {
	status := s.TodayHydration(ctx)
	status.Intake++
	if err := s.Hydration.Save(ctx, status.Intake); err != nil {
		return HydrationStatus{}, err
	}
	s.hub.Publish(eventbus.HydrationEvent(status.Intake, status.Goal))
	return status, nil
}

// SetHydrationGoal 设置当日目标（杯数）
func (s *JournalService) SetHydrationGoal(ctx context.Context, goal int) (HydrationStatus, error) {
	if goal <= 0 || goal > 30 {
		return HydrationStatus{}, fmt.Errorf("目标杯数必须在 1 到 30 之间")
	}
	if err := s.HydrationGoal.Save(ctx, goal); err != nil {
		return HydrationStatus{}, err
	}
	status := s.TodayHydration(ctx)
	s.hub.Publish(eventbus.HydrationEvent(status.Intake, status.Goal))
	return status, nil
}

// TodayChecklist 当日作息清单
func (s *JournalService) TodayChecklist(ctx context.Context) model.DinacharyaChecklist {
	list, _ := s.Checklist.Load(ctx)
	if list.Done == nil {
		list.Done = []string{}
	}
	return list
}

// SaveChecklist 整体写入当日清单（前端勾选后整份提交）
func (s *JournalService) SaveChecklist(ctx context.Context, list model.DinacharyaChecklist) error {
	if list.Done == nil {
		list.Done = []string{}
	}
	return s.Checklist.Save(ctx, list)
}
