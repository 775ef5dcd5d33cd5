package model

import (
	"time"

	"gorm.io/gorm"
)

// Certificate records an issued course-completion certificate. The actual
// image is rendered client side; the backend only supplies the data.
type Certificate struct {
	gorm.Model
	UserID            uint      `gorm:"index:idx_user_course_cert,unique" json:"userId"`
	CourseID          string    `gorm:"size:64;index:idx_user_course_cert,unique" json:"courseId"`
	CertificateNumber string    `gorm:"size:64;unique" json:"certificateNumber"`
	StudentName       string    `gorm:"size:100" json:"studentName"`
	CourseTitle       string    `gorm:"size:255" json:"courseTitle"`
	DurationLabel     string    `gorm:"size:50" json:"durationLabel"`
	InstructorName    string    `gorm:"size:100" json:"instructorName"`
	IssuedAt          time.Time `json:"issuedAt"`
}

func (Certificate) TableName() string {
	return "certificates"
}
