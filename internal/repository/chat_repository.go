package repository

import (
	"shakti_backend/internal/model"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) SaveTurn(turn *model.ChatTurn) error {
	return r.DB.Create(turn).Error
}

// History returns the user's most recent turns, oldest first.
func (r *ChatRepository) History(userID uint, limit int) ([]model.ChatTurn, error) {
	var turns []model.ChatTurn
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&turns).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}
