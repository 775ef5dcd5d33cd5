package repository

import (
	"context"
	"errors"

	"shakti_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEnrollmentStore keeps enrollment records as MySQL rows with JSON
// columns for the completion set and quiz results.
type GormEnrollmentStore struct {
	DB *gorm.DB
}

func NewGormEnrollmentStore(db *gorm.DB) *GormEnrollmentStore {
	return &GormEnrollmentStore{DB: db}
}

func (s *GormEnrollmentStore) GetRecord(ctx context.Context, userID uint, courseID string) (*model.Enrollment, error) {
	var rec model.Enrollment
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *GormEnrollmentStore) PutRecord(ctx context.Context, userID uint, courseID string, rec *model.Enrollment) error {
	rec.UserID = userID
	rec.CourseID = courseID
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"enrolled", "progress", "last_updated", "completed_items", "quiz_results", "updated_at",
			}),
		}).
		Create(rec).Error
}

func (s *GormEnrollmentStore) ListRecords(ctx context.Context, userID uint) ([]model.Enrollment, error) {
	var recs []model.Enrollment
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_updated DESC").
		Find(&recs).Error
	return recs, err
}
