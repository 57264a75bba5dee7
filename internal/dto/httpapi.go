package dto

// 注意：本包用于承载"对外契约"的 DTO（与前端/HTTP API 保持稳定）。
// 不要在这里放 GORM/持久化细节；内部持久化 schema 请见 internal/schema；业务逻辑收敛在 internal/service。

// ========== 计算工具 ==========

type BMIRequestDTO struct {
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

type BMIResultDTO struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}

type BMRRequestDTO struct {
	Gender        string  `json:"gender"` // "male" | "female"
	Age           int     `json:"age"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
}

type BMRResultDTO struct {
	BMR  int `json:"bmr"`
	TDEE int `json:"tdee"`
}

type WHRRequestDTO struct {
	Gender  string  `json:"gender"`
	WaistCm float64 `json:"waist_cm"`
	HipCm   float64 `json:"hip_cm"`
}

type WHRResultDTO struct {
	WHR  float64 `json:"whr"`
	Risk string  `json:"risk"`
}

// ========== 测验 ==========

type QuizCompleteRequestDTO struct {
	Name         string `json:"name"`
	CorrectCount int    `json:"correct_count"`
	TotalCount   int    `json:"total_count"`
	Kind         string `json:"kind,omitempty"` // "prakriti" 时只计次数
}

type QuizResultDTO struct {
	Score    int `json:"score"`
	MaxScore int `json:"max_score"`
}

// ========== 统计 ==========

type StatsDTO struct {
	TotalCalculatorUses     int    `json:"total_calculator_uses"`
	UniqueCalculatorsUsed   int    `json:"unique_calculators_used"`
	PrakritiQuizCompletions int    `json:"prakriti_quiz_completions"`
	WellnessPlanGenerations int    `json:"wellness_plan_generations"`
	KoshaAdvisorUsages      int    `json:"kosha_advisor_usages"`
	TotalQuizAttempts       int    `json:"total_quiz_attempts"`
	LastActivityDate        string `json:"last_activity_date,omitempty"`
}

// ========== 饮水 / 清单 ==========

type HydrationDTO struct {
	Intake int `json:"intake"`
	Goal   int `json:"goal"`
}

type HydrationGoalRequestDTO struct {
	Goal int `json:"goal"`
}

type ChecklistDTO struct {
	Done []string `json:"done"`
}

// ========== AI 顾问 ==========

type RecommendationsRequestDTO struct {
	Symptoms string `json:"symptoms"`
}

type RecommendationsDTO struct {
	Recommendations string `json:"recommendations"`
}

type KoshaPlanRequestDTO struct {
	Prakriti string `json:"prakriti"`
	Concerns string `json:"concerns,omitempty"`
}

type KoshaPlanDTO struct {
	Diet       string `json:"diet"`
	Lifestyle  string `json:"lifestyle"`
	Yoga       string `json:"yoga"`
	Meditation string `json:"meditation"`
	Disclaimer string `json:"disclaimer"`
}

// ========== 设置 ==========

type AISettingsDTO struct {
	ConfigPath string `json:"config_path"`

	DeepSeekAPIKeySet bool   `json:"deepseek_api_key_set"`
	DeepSeekBaseURL   string `json:"deepseek_base_url"`
	DeepSeekModel     string `json:"deepseek_model"`
}

type SaveAISettingsRequestDTO struct {
	DeepSeekAPIKey  *string `json:"deepseek_api_key,omitempty"`
	DeepSeekBaseURL *string `json:"deepseek_base_url,omitempty"`
	DeepSeekModel   *string `json:"deepseek_model,omitempty"`
}

type SaveSettingsResponseDTO struct {
	RestartRequired bool `json:"restart_required"`
}
