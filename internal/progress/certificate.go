package progress

import (
	"shakti_backend/internal/catalog"
	"shakti_backend/internal/model"
)

// CertificateEligible reports whether a learner has earned the course
// certificate: every item complete and every quiz passed. A quiz with no
// stored result counts as not passed; the predicate never errors.
func CertificateEligible(course *catalog.Course, completed map[string]bool, quizResults map[string]model.QuizResult) bool {
	if ComputeProgress(course, completed).OverallPercent != 100 {
		return false
	}
	for _, ref := range course.QuizItems() {
		res, ok := quizResults[ref.Key()]
		if !ok || !res.Passed {
			return false
		}
	}
	return true
}
