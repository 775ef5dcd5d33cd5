package progress

import (
	"testing"

	"shakti_backend/internal/catalog"
)

func fiveQuestions() []catalog.QuizQuestion {
	return []catalog.QuizQuestion{
		{ID: "q1", Options: []string{"a", "b", "c"}, CorrectOption: 0},
		{ID: "q2", Options: []string{"a", "b", "c"}, CorrectOption: 1},
		{ID: "q3", Options: []string{"a", "b", "c"}, CorrectOption: 2},
		{ID: "q4", Options: []string{"a", "b"}, CorrectOption: 0},
		{ID: "q5", Options: []string{"a", "b"}, CorrectOption: 1},
	}
}

func TestGradeQuiz_ThreeOfFiveFails(t *testing.T) {
	result := GradeQuiz(fiveQuestions(), map[string]int{
		"q1": 0, "q2": 1, "q3": 2, "q4": 1, "q5": 0,
	})

	if result.Score != 60 {
		t.Errorf("Score = %v, want 60", result.Score)
	}
	if result.Passed {
		t.Error("Passed = true at 60%")
	}
	if result.CorrectCount != 3 || result.TotalCount != 5 {
		t.Errorf("counts = %d/%d, want 3/5", result.CorrectCount, result.TotalCount)
	}
}

func TestGradeQuiz_ThresholdIsInclusive(t *testing.T) {
	// 7 of 10 is exactly the threshold and must pass.
	questions := make([]catalog.QuizQuestion, 10)
	answers := map[string]int{}
	for i := range questions {
		id := string(rune('a' + i))
		questions[i] = catalog.QuizQuestion{ID: id, Options: []string{"x", "y"}, CorrectOption: 0}
		if i < 7 {
			answers[id] = 0
		} else {
			answers[id] = 1
		}
	}

	result := GradeQuiz(questions, answers)
	if result.Score != 70 {
		t.Errorf("Score = %v, want 70", result.Score)
	}
	if !result.Passed {
		t.Error("Passed = false at exactly 70%")
	}
}

func TestGradeQuiz_UnansweredCountsIncorrect(t *testing.T) {
	result := GradeQuiz(fiveQuestions(), map[string]int{"q1": 0, "q2": 1})

	if result.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", result.CorrectCount)
	}
	if result.Score != 40 {
		t.Errorf("Score = %v, want 40", result.Score)
	}
	if result.Passed {
		t.Error("Passed = true with 3 unanswered questions")
	}
}

func TestGradeQuiz_UnknownQuestionIDsIgnored(t *testing.T) {
	result := GradeQuiz(fiveQuestions(), map[string]int{
		"q1": 0, "q2": 1, "q3": 2, "q4": 0, "q5": 1, "bogus": 0,
	})

	if result.Score != 100 || !result.Passed {
		t.Errorf("got %v/%v, want 100/passed with an extra bogus answer", result.Score, result.Passed)
	}
	if len(result.PerQuestion) != 5 {
		t.Errorf("PerQuestion has %d entries, want 5", len(result.PerQuestion))
	}
}

func TestGradeQuiz_EmptyBank(t *testing.T) {
	result := GradeQuiz(nil, map[string]int{"q1": 0})

	if result.Score != 0 {
		t.Errorf("Score = %v, want 0", result.Score)
	}
	if result.Passed {
		t.Error("Passed = true for an empty question bank")
	}
}
