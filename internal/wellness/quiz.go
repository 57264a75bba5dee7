package wellness

import "fmt"

// PointsPerCorrectAnswer 每答对一题的固定得分
const PointsPerCorrectAnswer = 10

// QuizResult 测验评分结果
type QuizResult struct {
	Score    int
	MaxScore int
}

// ScoreQuiz 按答对题数计分：score = correct × 10
func ScoreQuiz(correctCount, totalCount int) (QuizResult, error) {
	if totalCount <= 0 {
		return QuizResult{}, fmt.Errorf("题目总数必须为正数")
	}
	if correctCount < 0 || correctCount > totalCount {
		return QuizResult{}, fmt.Errorf("答对题数必须在 0 到 %d 之间", totalCount)
	}

	return QuizResult{
		Score:    correctCount * PointsPerCorrectAnswer,
		MaxScore: totalCount * PointsPerCorrectAnswer,
	}, nil
}
