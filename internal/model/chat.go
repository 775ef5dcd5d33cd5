package model

import "gorm.io/gorm"

// ChatTurn is one stored message of the assistant conversation, either the
// user's prompt or the model's reply.
type ChatTurn struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Role    string `gorm:"size:20;not null" json:"role"`
	Content string `gorm:"type:text" json:"content"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
