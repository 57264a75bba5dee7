package ledger

import "context"

// Stats 账本的只读统计投影
type Stats struct {
	TotalCalculatorUses     int    // 各工具使用次数之和
	UniqueCalculatorsUsed   int    // 用过的不同工具数
	PrakritiQuizCompletions int
	WellnessPlanGenerations int
	KoshaAdvisorUsages      int
	TotalQuizAttempts       int // 各测验 attempts 之和
	LastActivityDate        string
}

// ProjectStats 读取账本并生成统计投影
func (l *Ledger) ProjectStats(ctx context.Context) Stats {
	return ProjectStats(l.Read(ctx))
}

// ProjectStats 纯函数：把账本状态归约为统计值
func ProjectStats(state State) Stats {
	stats := Stats{
		PrakritiQuizCompletions: state.PrakritiQuizCompletions,
		WellnessPlanGenerations: state.WellnessPlanGenerations,
		KoshaAdvisorUsages:      state.KoshaAdvisorUsages,
		LastActivityDate:        state.LastActivityDate,
	}

	for _, n := range state.CalculatorUsage {
		stats.TotalCalculatorUses += n
	}
	stats.UniqueCalculatorsUsed = len(state.CalculatorUsage)

	for _, rec := range state.QuizCompletions {
		stats.TotalQuizAttempts += rec.Attempts
	}

	return stats
}
