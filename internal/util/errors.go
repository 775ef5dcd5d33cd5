package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")

	ErrCourseNotFound = errors.New("course not found")
	ErrItemNotFound   = errors.New("lesson item not found")
	ErrNotEnrolled    = errors.New("not enrolled in course")
	ErrNotAQuiz       = errors.New("item is not a quiz")
	// Quiz items can only be completed by a passing grade.
	ErrQuizCompletion = errors.New("quiz items are completed by passing the quiz")
	ErrNotEligible    = errors.New("certificate requirements not met")

	ErrEmptyPrompt = errors.New("prompt must not be empty")
	ErrEmptyText   = errors.New("text must not be empty")

	ErrProductNotFound   = errors.New("product not found")
	ErrOutOfStock        = errors.New("not enough stock")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
