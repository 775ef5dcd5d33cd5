package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"shakti_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

// RedisEnrollmentStore keeps the whole enrollment record as a JSON blob in
// a per-user hash, one field per course. It mirrors the behaviour of the
// database store: whole-record reads and last-writer-wins writes.
type RedisEnrollmentStore struct {
	Redis *redis.Client
}

func NewRedisEnrollmentStore(rdb *redis.Client) *RedisEnrollmentStore {
	return &RedisEnrollmentStore{Redis: rdb}
}

func enrollmentKey(userID uint) string {
	return fmt.Sprintf("enrollments:%d", userID)
}

func (s *RedisEnrollmentStore) GetRecord(ctx context.Context, userID uint, courseID string) (*model.Enrollment, error) {
	raw, err := s.Redis.HGet(ctx, enrollmentKey(userID), courseID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec model.Enrollment
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("corrupt enrollment record for user %d course %s: %w", userID, courseID, err)
	}
	return &rec, nil
}

func (s *RedisEnrollmentStore) PutRecord(ctx context.Context, userID uint, courseID string, rec *model.Enrollment) error {
	rec.UserID = userID
	rec.CourseID = courseID
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.Redis.HSet(ctx, enrollmentKey(userID), courseID, raw).Err()
}

func (s *RedisEnrollmentStore) ListRecords(ctx context.Context, userID uint) ([]model.Enrollment, error) {
	fields, err := s.Redis.HGetAll(ctx, enrollmentKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	recs := make([]model.Enrollment, 0, len(fields))
	for courseID, raw := range fields {
		var rec model.Enrollment
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("corrupt enrollment record for user %d course %s: %w", userID, courseID, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
