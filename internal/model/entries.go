// Package model 定义各日志特性的负载类型与存储 key。
// 持久化形态（JSON 数组 / 单值）由 internal/journal 统一处理。
package model

// 各特性的存储 key。一个特性一个 key，互不引用。
const (
	KeyLedger              = "wellnessActivity"
	KeyMoodLog             = "moodLog"
	KeyGratitudeLog        = "gratitudeLog"
	KeyExerciseLog         = "exerciseLog"
	KeySleepLog            = "sleepLog"
	KeySilenceLog          = "silenceLog"
	KeyMeditationJournal   = "meditationJournal"
	KeySelfInquiryLog      = "selfInquiryLog"
	KeySankalpaReflections = "sankalpaReflections"
	KeyBookLog             = "spiritualBookLog"

	// 按日滚动的前缀（实际 key 形如 hydration_2026-08-31）
	PrefixHydration     = "hydration"
	PrefixHydrationGoal = "hydrationGoal"
	PrefixDinacharya    = "dinacharya"
)

// MoodEntry 情绪打卡
type MoodEntry struct {
	Mood string `json:"mood"` // calm / happy / anxious / sad / angry / tired
	Note string `json:"note,omitempty"`
}

// GratitudeEntry 感恩日记
type GratitudeEntry struct {
	Text string `json:"text"`
}

// ExerciseEntry 运动记录
type ExerciseEntry struct {
	Activity    string `json:"activity"`
	DurationMin int    `json:"durationMin"`
	Intensity   string `json:"intensity,omitempty"` // light / moderate / vigorous
}

// SleepEntry 睡眠记录
type SleepEntry struct {
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality,omitempty"` // poor / fair / good / excellent
}

// SilenceEntry 静默练习
type SilenceEntry struct {
	DurationMin int    `json:"durationMin"`
	Note        string `json:"note,omitempty"`
}

// MeditationNote 冥想日志
type MeditationNote struct {
	Technique   string `json:"technique,omitempty"`
	DurationMin int    `json:"durationMin"`
	Note        string `json:"note,omitempty"`
}

// SelfInquiryEntry 自省记录
type SelfInquiryEntry struct {
	Question string `json:"question"`
	Insight  string `json:"insight,omitempty"`
}

// SankalpaReflection 愿心回顾
type SankalpaReflection struct {
	Sankalpa   string `json:"sankalpa"`
	Reflection string `json:"reflection,omitempty"`
}

// BookEntry 灵性书单
type BookEntry struct {
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	Status string `json:"status,omitempty"` // reading / finished / wishlist
}

// DinacharyaChecklist 当日晨间作息清单
type DinacharyaChecklist struct {
	Done []string `json:"done"` // 已完成项的 id
}

// HydrationGoalDefault 每日默认饮水目标（杯）
const HydrationGoalDefault = 8
