package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult is the latest grading outcome for one quiz item. Retakes
// overwrite it; no attempt history is kept.
type QuizResult struct {
	Score        float64   `json:"score"`
	Passed       bool      `json:"passed"`
	CorrectCount int       `json:"correctCount"`
	TotalCount   int       `json:"totalCount"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// Enrollment is the per-user per-course progress record. Completion keys
// and quiz-result keys are fully qualified courseID/moduleID/itemID, so a
// record never depends on item ids being unique across modules.
//
// The same struct is the unit of storage for both enrollment backends:
// a MySQL row with JSON columns, or a JSON blob in a per-user Redis hash.
type Enrollment struct {
	gorm.Model
	UserID         uint                  `gorm:"index:idx_user_course,unique" json:"userId"`
	CourseID       string                `gorm:"size:64;index:idx_user_course,unique" json:"courseId"`
	Enrolled       bool                  `gorm:"default:true" json:"enrolled"`
	Progress       int                   `gorm:"default:0" json:"progress"`
	LastUpdated    time.Time             `json:"lastUpdated"`
	CompletedItems []string              `gorm:"serializer:json;type:json" json:"completedItems"`
	QuizResults    map[string]QuizResult `gorm:"serializer:json;type:json" json:"quizResults"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// CompletionSet returns the completed item keys as a set.
func (e *Enrollment) CompletionSet() map[string]bool {
	set := make(map[string]bool, len(e.CompletedItems))
	for _, key := range e.CompletedItems {
		set[key] = true
	}
	return set
}

// MarkCompleted adds an item key to the completion set. Completion is
// monotonic: marking twice is a no-op and reports false.
func (e *Enrollment) MarkCompleted(key string) bool {
	for _, k := range e.CompletedItems {
		if k == key {
			return false
		}
	}
	e.CompletedItems = append(e.CompletedItems, key)
	return true
}
