package progress

import "shakti_backend/internal/catalog"

// PassThreshold is the minimum score, inclusive, for a quiz attempt to
// count as passed. It is a platform constant, not per-course.
const PassThreshold = 70.0

type QuestionResult struct {
	QuestionID string `json:"questionId"`
	Correct    bool   `json:"correct"`
}

type GradeResult struct {
	Score        float64          `json:"score"`
	Passed       bool             `json:"passed"`
	CorrectCount int              `json:"correctCount"`
	TotalCount   int              `json:"totalCount"`
	PerQuestion  []QuestionResult `json:"perQuestion"`
}

// GradeQuiz scores submitted option indices against the question bank.
// Answers may omit questions; unanswered counts as incorrect. An empty
// question bank grades to 0 and not passed.
func GradeQuiz(questions []catalog.QuizQuestion, answers map[string]int) GradeResult {
	result := GradeResult{
		TotalCount:  len(questions),
		PerQuestion: make([]QuestionResult, 0, len(questions)),
	}

	for _, q := range questions {
		selected, answered := answers[q.ID]
		correct := answered && selected == q.CorrectOption
		if correct {
			result.CorrectCount++
		}
		result.PerQuestion = append(result.PerQuestion, QuestionResult{
			QuestionID: q.ID,
			Correct:    correct,
		})
	}

	if result.TotalCount > 0 {
		result.Score = 100 * float64(result.CorrectCount) / float64(result.TotalCount)
		result.Passed = result.Score >= PassThreshold
	}
	return result
}
