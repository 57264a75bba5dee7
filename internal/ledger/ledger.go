// Package ledger 维护全局活动账本：各工具的使用计数、测验完成记录等。
// 账本整体序列化为一条 JSON，落在键值存储的单个 key 下。
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/yuqie6/lifemirror/internal/storage"
)

// DefaultKey 账本在键值存储中的 key
const DefaultKey = "wellnessActivity"

// QuizRecord 单个测验的完成记录
type QuizRecord struct {
	Attempts  int  `json:"attempts"`
	BestScore *int `json:"bestScore,omitempty"`
}

// State 账本状态。所有计数只增不减。
type State struct {
	CalculatorUsage         map[string]int        `json:"calculatorUsage"`
	PrakritiQuizCompletions int                   `json:"prakritiQuizCompletions"`
	WellnessPlanGenerations int                   `json:"wellnessPlanGenerations"`
	KoshaAdvisorUsages      int                   `json:"koshaAdvisorUsages"`
	QuizCompletions         map[string]QuizRecord `json:"quizCompletions"`
	LastActivityDate        string                `json:"lastActivityDate"` // RFC3339
}

// defaultState 空账本
func defaultState() State {
	return State{
		CalculatorUsage: make(map[string]int),
		QuizCompletions: make(map[string]QuizRecord),
	}
}

// Ledger 活动账本。读改写在进程内用互斥锁串行化；
// 跨进程并发写是 last-write-wins，没有版本号检测（已知限制）。
type Ledger struct {
	store storage.Store
	key   string
	mu    sync.Mutex
	now   func() time.Time
}

// New 创建账本
func New(store storage.Store) *Ledger {
	return NewWithKey(store, DefaultKey)
}

// NewWithKey 创建使用指定 key 的账本
func NewWithKey(store storage.Store, key string) *Ledger {
	return &Ledger{store: store, key: key, now: time.Now}
}

// Read 读取账本。永不失败：key 缺失、JSON 损坏、字段类型不对
// 都按字段级兜底处理，等价于"还没有任何活动"。
func (l *Ledger) Read(ctx context.Context) State {
	raw, ok, err := l.store.Get(ctx, l.key)
	if err != nil {
		slog.Warn("读取账本失败，按空账本处理", "error", err)
		return defaultState()
	}
	if !ok {
		return defaultState()
	}
	return decodeState([]byte(raw))
}

// IncrementCalculatorUsage 工具使用 +1（首次使用记为 1）
func (l *Ledger) IncrementCalculatorUsage(ctx context.Context, slug string) error {
	return l.update(ctx, func(s *State) {
		s.CalculatorUsage[slug]++
	})
}

// IncrementPrakritiQuizCompletions 体质测验完成 +1
func (l *Ledger) IncrementPrakritiQuizCompletions(ctx context.Context) error {
	return l.update(ctx, func(s *State) {
		s.PrakritiQuizCompletions++
	})
}

// IncrementWellnessPlanGenerations 健康方案生成 +1
func (l *Ledger) IncrementWellnessPlanGenerations(ctx context.Context) error {
	return l.update(ctx, func(s *State) {
		s.WellnessPlanGenerations++
	})
}

// IncrementKoshaAdvisorUsages 五鞘顾问使用 +1
func (l *Ledger) IncrementKoshaAdvisorUsages(ctx context.Context) error {
	return l.update(ctx, func(s *State) {
		s.KoshaAdvisorUsages++
	})
}

// RecordQuizCompletion 记录一次测验完成：attempts+1，bestScore 取历史最高。
// maxScore 目前只接收不存储，为将来按满分归一化预留。
func (l *Ledger) RecordQuizCompletion(ctx context.Context, quizName string, score, maxScore int) error {
	_ = maxScore
	return l.update(ctx, func(s *State) {
		rec := s.QuizCompletions[quizName]
		rec.Attempts++
		if rec.BestScore == nil || score > *rec.BestScore {
			best := score
			rec.BestScore = &best
		}
		s.QuizCompletions[quizName] = rec
	})
}

// update 单次读改写：读当前状态、应用变更、盖时间戳、整体写回
func (l *Ledger) update(ctx context.Context, mutate func(*State)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.Read(ctx)
	mutate(&state)
	state.LastActivityDate = l.now().Format(time.RFC3339)

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("序列化账本失败: %w", err)
	}
	if err := l.store.Set(ctx, l.key, string(raw)); err != nil {
		return fmt.Errorf("写入账本失败: %w", err)
	}
	return nil
}
