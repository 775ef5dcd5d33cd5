package service

import (
	"context"
	"strings"
	"time"

	"shakti_backend/internal/catalog"
	"shakti_backend/internal/model"
	"shakti_backend/internal/progress"
	"shakti_backend/internal/repository"
	"shakti_backend/internal/util"
	"shakti_backend/pkg/monitoring"

	"github.com/google/uuid"
)

// CertificateService gates and issues course certificates. It only
// assembles the data the client renders; no pixels are produced here.
type CertificateService struct {
	Catalog  *catalog.Registry
	Store    repository.EnrollmentStore
	CertRepo *repository.CertificateRepository
}

func NewCertificateService(reg *catalog.Registry, store repository.EnrollmentStore, certRepo *repository.CertificateRepository) *CertificateService {
	return &CertificateService{Catalog: reg, Store: store, CertRepo: certRepo}
}

// CertificateData is the render payload handed to the client.
type CertificateData struct {
	CertificateNumber   string `json:"certificateNumber"`
	StudentName         string `json:"studentName"`
	CourseTitle         string `json:"courseTitle"`
	DurationLabel       string `json:"durationLabel"`
	InstructorName      string `json:"instructorName"`
	CompletionDateLabel string `json:"completionDateLabel"`
}

// Status returns the eligibility verdict and, when eligible, the issued
// certificate (issuing it on first request).
func (s *CertificateService) Status(ctx context.Context, user *model.User, courseID string) (bool, *CertificateData, error) {
	course, ok := s.Catalog.Course(courseID)
	if !ok {
		return false, nil, util.ErrCourseNotFound
	}

	rec, err := s.Store.GetRecord(ctx, user.ID, courseID)
	if err != nil {
		return false, nil, err
	}
	if rec == nil || !rec.Enrolled {
		return false, nil, nil
	}

	if !progress.CertificateEligible(course, rec.CompletionSet(), rec.QuizResults) {
		return false, nil, nil
	}

	cert, err := s.CertRepo.Find(user.ID, courseID)
	if err != nil {
		return true, nil, err
	}
	if cert == nil {
		cert = &model.Certificate{
			UserID:            user.ID,
			CourseID:          courseID,
			CertificateNumber: certificateNumber(),
			StudentName:       user.Name,
			CourseTitle:       course.Title,
			DurationLabel:     course.Duration,
			InstructorName:    course.Instructor,
			IssuedAt:          time.Now(),
		}
		if err := s.CertRepo.Create(cert); err != nil {
			return true, nil, err
		}
		monitoring.CertificatesIssued.Inc()
	}

	return true, &CertificateData{
		CertificateNumber:   cert.CertificateNumber,
		StudentName:         cert.StudentName,
		CourseTitle:         cert.CourseTitle,
		DurationLabel:       cert.DurationLabel,
		InstructorName:      cert.InstructorName,
		CompletionDateLabel: cert.IssuedAt.Format("2 January 2006"),
	}, nil
}

func (s *CertificateService) ListByUser(userID uint) ([]model.Certificate, error) {
	return s.CertRepo.ListByUser(userID)
}

func certificateNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "SHAKTI-" + id[:12]
}
