package service

import (
	"context"
	"errors"
	"time"

	"shakti_backend/internal/catalog"
	"shakti_backend/internal/model"
	"shakti_backend/internal/progress"
	"shakti_backend/internal/repository"
	"shakti_backend/internal/util"
	"shakti_backend/pkg/monitoring"
)

// storeReadTimeout bounds enrollment reads so a slow backend can't hang a
// page load. Read-only callers fall back to an empty record on timeout.
const storeReadTimeout = 3 * time.Second

// EnrollmentService owns the learning flows: enroll, complete items,
// submit quizzes, report progress. It talks to whichever EnrollmentStore
// backend was wired in and never branches on the storage technology.
type EnrollmentService struct {
	Catalog *catalog.Registry
	Store   repository.EnrollmentStore
}

func NewEnrollmentService(reg *catalog.Registry, store repository.EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{Catalog: reg, Store: store}
}

type QuizSubmission struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

type SubmitQuizResponse struct {
	Result   progress.GradeResult `json:"result"`
	Snapshot progress.Snapshot    `json:"snapshot"`
}

type CourseProgress struct {
	CourseID string            `json:"courseId"`
	Enrolled bool              `json:"enrolled"`
	Snapshot progress.Snapshot `json:"snapshot"`
}

func (s *EnrollmentService) course(courseID string) (*catalog.Course, error) {
	course, ok := s.Catalog.Course(courseID)
	if !ok {
		return nil, util.ErrCourseNotFound
	}
	return course, nil
}

// record loads the enrollment row, requiring it to exist and be enrolled.
func (s *EnrollmentService) record(ctx context.Context, userID uint, courseID string) (*model.Enrollment, error) {
	rec, err := s.Store.GetRecord(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.Enrolled {
		return nil, util.ErrNotEnrolled
	}
	if rec.QuizResults == nil {
		rec.QuizResults = map[string]model.QuizResult{}
	}
	return rec, nil
}

// Enroll creates the enrollment record, or re-activates it keeping any
// existing progress. Calling it twice is harmless.
func (s *EnrollmentService) Enroll(ctx context.Context, userID uint, courseID string) (*model.Enrollment, error) {
	if _, err := s.course(courseID); err != nil {
		return nil, err
	}

	rec, err := s.Store.GetRecord(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &model.Enrollment{
			UserID:      userID,
			CourseID:    courseID,
			QuizResults: map[string]model.QuizResult{},
		}
	}
	rec.Enrolled = true
	rec.LastUpdated = time.Now()

	if err := s.Store.PutRecord(ctx, userID, courseID, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// CompleteItem marks a video, notes or assignment item done. Quiz items
// are refused here; the only path to a completed quiz is a passing grade.
func (s *EnrollmentService) CompleteItem(ctx context.Context, userID uint, courseID, moduleID, itemID string) (*progress.Snapshot, error) {
	course, err := s.course(courseID)
	if err != nil {
		return nil, err
	}
	item, ok := s.Catalog.Item(courseID, moduleID, itemID)
	if !ok {
		return nil, util.ErrItemNotFound
	}
	if item.Kind == catalog.KindQuiz {
		return nil, util.ErrQuizCompletion
	}

	rec, err := s.record(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	ref := catalog.ItemRef{CourseID: courseID, ModuleID: moduleID, ItemID: itemID}
	changed := rec.MarkCompleted(ref.Key())

	snap := progress.ComputeProgress(course, rec.CompletionSet())
	if changed {
		rec.Progress = snap.OverallPercent
		rec.LastUpdated = time.Now()
		if err := s.Store.PutRecord(ctx, userID, courseID, rec); err != nil {
			return nil, err
		}
	}
	return &snap, nil
}

// SubmitQuiz grades an attempt, overwrites the stored latest result, and
// marks the item complete when the attempt passes. Failed attempts leave
// the item incomplete and can be retried without limit; a previously
// passed quiz never regresses to incomplete.
func (s *EnrollmentService) SubmitQuiz(ctx context.Context, userID uint, courseID, moduleID, itemID string, answers map[string]int) (*SubmitQuizResponse, error) {
	course, err := s.course(courseID)
	if err != nil {
		return nil, err
	}
	item, ok := s.Catalog.Item(courseID, moduleID, itemID)
	if !ok {
		return nil, util.ErrItemNotFound
	}
	if item.Kind != catalog.KindQuiz {
		return nil, util.ErrNotAQuiz
	}

	rec, err := s.record(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	result := progress.GradeQuiz(item.Questions, answers)

	ref := catalog.ItemRef{CourseID: courseID, ModuleID: moduleID, ItemID: itemID}
	rec.QuizResults[ref.Key()] = model.QuizResult{
		Score:        result.Score,
		Passed:       result.Passed,
		CorrectCount: result.CorrectCount,
		TotalCount:   result.TotalCount,
		SubmittedAt:  time.Now(),
	}
	if result.Passed {
		rec.MarkCompleted(ref.Key())
		monitoring.QuizSubmissions.WithLabelValues("passed").Inc()
	} else {
		monitoring.QuizSubmissions.WithLabelValues("failed").Inc()
	}

	snap := progress.ComputeProgress(course, rec.CompletionSet())
	rec.Progress = snap.OverallPercent
	rec.LastUpdated = time.Now()

	if err := s.Store.PutRecord(ctx, userID, courseID, rec); err != nil {
		return nil, err
	}

	return &SubmitQuizResponse{Result: result, Snapshot: snap}, nil
}

// Progress recomputes the snapshot from the stored record. A missing
// record or a store timeout yields the zero snapshot rather than an error,
// so the course page still renders.
func (s *EnrollmentService) Progress(ctx context.Context, userID uint, courseID string) (*CourseProgress, error) {
	course, err := s.course(courseID)
	if err != nil {
		return nil, err
	}

	readCtx, cancel := context.WithTimeout(ctx, storeReadTimeout)
	defer cancel()

	enrolled := false
	completed := map[string]bool{}
	rec, err := s.Store.GetRecord(readCtx, userID, courseID)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		// safe default: show zero progress instead of failing the page
	case err != nil:
		return nil, err
	case rec != nil:
		enrolled = rec.Enrolled
		completed = rec.CompletionSet()
	}

	snap := progress.ComputeProgress(course, completed)
	return &CourseProgress{
		CourseID: courseID,
		Enrolled: enrolled,
		Snapshot: snap,
	}, nil
}

// List returns all of the user's enrollment records.
func (s *EnrollmentService) List(ctx context.Context, userID uint) ([]model.Enrollment, error) {
	readCtx, cancel := context.WithTimeout(ctx, storeReadTimeout)
	defer cancel()

	recs, err := s.Store.ListRecords(readCtx, userID)
	if errors.Is(err, context.DeadlineExceeded) {
		return []model.Enrollment{}, nil
	}
	return recs, err
}
