package ledger

import "encoding/json"

// decodeState 容错反序列化：逐字段解析，缺失或类型不对的字段
// 单独回退到默认值，绝不抛错。老版本存储的账本也能被新代码读出来。
func decodeState(raw []byte) State {
	state := defaultState()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		// 整条 JSON 损坏：视为空账本
		return state
	}

	if v, ok := fields["calculatorUsage"]; ok {
		var usage map[string]int
		if json.Unmarshal(v, &usage) == nil && usage != nil {
			for slug, n := range usage {
				if n > 0 {
					state.CalculatorUsage[slug] = n
				}
			}
		}
	}

	state.PrakritiQuizCompletions = decodeCounter(fields["prakritiQuizCompletions"])
	state.WellnessPlanGenerations = decodeCounter(fields["wellnessPlanGenerations"])
	state.KoshaAdvisorUsages = decodeCounter(fields["koshaAdvisorUsages"])

	if v, ok := fields["quizCompletions"]; ok {
		var quizzes map[string]json.RawMessage
		if json.Unmarshal(v, &quizzes) == nil {
			for name, rawRec := range quizzes {
				var rec QuizRecord
				if json.Unmarshal(rawRec, &rec) != nil {
					continue
				}
				if rec.Attempts < 0 {
					rec.Attempts = 0
				}
				state.QuizCompletions[name] = rec
			}
		}
	}

	if v, ok := fields["lastActivityDate"]; ok {
		var date string
		if json.Unmarshal(v, &date) == nil {
			state.LastActivityDate = date
		}
	}

	return state
}

// decodeCounter 解析单个计数字段，解析失败或为负时回退为 0
func decodeCounter(raw json.RawMessage) int {
	if raw == nil {
		return 0
	}
	var n int
	if json.Unmarshal(raw, &n) != nil || n < 0 {
		return 0
	}
	return n
}
