package repository

import (
	"context"

	"shakti_backend/internal/model"
)

// EnrollmentStore is the boundary between the progress logic and whatever
// holds enrollment records. Two backends implement it: MySQL rows and a
// per-user Redis hash. Services only ever see this interface, so the
// backend can be swapped in config without touching the engine.
//
// GetRecord returns (nil, nil) when no record exists; absence is a normal
// state, not an error. Writes are last-writer-wins at record granularity.
type EnrollmentStore interface {
	GetRecord(ctx context.Context, userID uint, courseID string) (*model.Enrollment, error)
	PutRecord(ctx context.Context, userID uint, courseID string, rec *model.Enrollment) error
	ListRecords(ctx context.Context, userID uint) ([]model.Enrollment, error)
}
