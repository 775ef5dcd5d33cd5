package progress

import (
	"testing"

	"shakti_backend/internal/model"
)

func allCompleted(courseID string) map[string]bool {
	course := testCourse()
	completed := map[string]bool{}
	for _, m := range course.Modules {
		for _, it := range m.Items {
			completed[key(courseID, m.ID, it.ID)] = true
		}
	}
	return completed
}

func TestCertificateEligible(t *testing.T) {
	course := testCourse()
	passed := map[string]model.QuizResult{
		key(course.ID, "m1", "i3"): {Score: 80, Passed: true},
		key(course.ID, "m2", "i3"): {Score: 100, Passed: true},
	}

	tests := []struct {
		name        string
		completed   map[string]bool
		quizResults map[string]model.QuizResult
		want        bool
	}{
		{
			name:        "everything done and passed",
			completed:   allCompleted(course.ID),
			quizResults: passed,
			want:        true,
		},
		{
			name: "incomplete items",
			completed: map[string]bool{
				key(course.ID, "m1", "i1"): true,
			},
			quizResults: passed,
			want:        false,
		},
		{
			name:      "missing quiz result",
			completed: allCompleted(course.ID),
			quizResults: map[string]model.QuizResult{
				key(course.ID, "m1", "i3"): {Score: 80, Passed: true},
			},
			want: false,
		},
		{
			name:      "failed quiz on record",
			completed: allCompleted(course.ID),
			quizResults: map[string]model.QuizResult{
				key(course.ID, "m1", "i3"): {Score: 80, Passed: true},
				key(course.ID, "m2", "i3"): {Score: 60, Passed: false},
			},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CertificateEligible(course, tc.completed, tc.quizResults)
			if got != tc.want {
				t.Errorf("CertificateEligible() = %v, want %v", got, tc.want)
			}
		})
	}
}
