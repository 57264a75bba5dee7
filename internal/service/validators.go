package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuqie6/lifemirror/internal/model"
)

// 各特性的业务校验。校验失败时不会有任何状态变化。

var moods = map[string]bool{
	"calm": true, "happy": true, "anxious": true,
	"sad": true, "angry": true, "tired": true,
}

func validateMood(e model.MoodEntry) error {
	if !moods[e.Mood] {
		return fmt.Errorf("未知的情绪: %s", e.Mood)
	}
	if utf8.RuneCountInString(e.Note) > 500 {
		return fmt.Errorf("备注不能超过 500 字符")
	}
	return nil
}

func validateGratitude(e model.GratitudeEntry) error {
	// 按字符数算，不是字节数，中文一个字算一个字符
	text := strings.TrimSpace(e.Text)
	if utf8.RuneCountInString(text) < 3 {
		return fmt.Errorf("内容至少 3 个字符")
	}
	if utf8.RuneCountInString(text) > 1000 {
		return fmt.Errorf("内容不能超过 1000 字符")
	}
	return nil
}

var intensities = map[string]bool{
	"": true, "light": true, "moderate": true, "vigorous": true,
}

func validateExercise(e model.ExerciseEntry) error {
	if strings.TrimSpace(e.Activity) == "" {
		return fmt.Errorf("运动类型不能为空")
	}
	if e.DurationMin <= 0 || e.DurationMin > 600 {
		return fmt.Errorf("时长必须在 1 到 600 分钟之间")
	}
	if !intensities[e.Intensity] {
		return fmt.Errorf("未知的强度: %s", e.Intensity)
	}
	return nil
}

var sleepQualities = map[string]bool{
	"": true, "poor": true, "fair": true, "good": true, "excellent": true,
}

func validateSleep(e model.SleepEntry) error {
	if e.Hours <= 0 || e.Hours > 24 {
		return fmt.Errorf("睡眠时长必须在 0 到 24 小时之间")
	}
	if !sleepQualities[e.Quality] {
		return fmt.Errorf("未知的睡眠质量: %s", e.Quality)
	}
	return nil
}

func validateSilence(e model.SilenceEntry) error {
	if e.DurationMin <= 0 || e.DurationMin > 1440 {
		return fmt.Errorf("时长必须在 1 到 1440 分钟之间")
	}
	return nil
}

func validateMeditation(e model.MeditationNote) error {
	if e.DurationMin <= 0 || e.DurationMin > 720 {
		return fmt.Errorf("时长必须在 1 到 720 分钟之间")
	}
	return nil
}

func validateSelfInquiry(e model.SelfInquiryEntry) error {
	if utf8.RuneCountInString(strings.TrimSpace(e.Question)) < 3 {
		return fmt.Errorf("问题至少 3 个字符")
	}
	return nil
}

func validateSankalpa(e model.SankalpaReflection) error {
	if utf8.RuneCountInString(strings.TrimSpace(e.Sankalpa)) < 3 {
		return fmt.Errorf("愿心至少 3 个字符")
	}
	return nil
}

var bookStatuses = map[string]bool{
	"": true, "reading": true, "finished": true, "wishlist": true,
}

func validateBook(e model.BookEntry) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("书名不能为空")
	}
	if !bookStatuses[e.Status] {
		return fmt.Errorf("未知的状态: %s", e.Status)
	}
	return nil
}
