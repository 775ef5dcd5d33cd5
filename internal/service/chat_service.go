package service

import (
	"context"

	"shakti_backend/internal/model"
	"shakti_backend/internal/repository"
	"shakti_backend/pkg/logger"

	"go.uber.org/zap"
)

const chatHistoryLimit = 20

// ChatService runs the assistant conversation: recent turns go back to the
// model as context, and both sides of each exchange are persisted.
type ChatService struct {
	ai       *AIService
	chatRepo *repository.ChatRepository
}

func NewChatService(ai *AIService, chatRepo *repository.ChatRepository) *ChatService {
	return &ChatService{ai: ai, chatRepo: chatRepo}
}

type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

func (s *ChatService) history(userID uint) []AIChatMessage {
	turns, err := s.chatRepo.History(userID, chatHistoryLimit)
	if err != nil {
		// history is best effort; the prompt still goes through
		logger.Log.Warn("failed to load chat history", zap.Uint("userId", userID), zap.Error(err))
		return nil
	}
	messages := make([]AIChatMessage, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, AIChatMessage{Role: t.Role, Content: t.Content})
	}
	return messages
}

func (s *ChatService) saveTurn(userID uint, role, content string) {
	if err := s.chatRepo.SaveTurn(&model.ChatTurn{UserID: userID, Role: role, Content: content}); err != nil {
		logger.Log.Warn("failed to save chat turn", zap.Uint("userId", userID), zap.Error(err))
	}
}

func (s *ChatService) Ask(ctx context.Context, userID uint, prompt string) (*ChatReply, error) {
	reply, err := s.ai.Chat(ctx, prompt, s.history(userID))
	if err != nil {
		return nil, err
	}

	s.saveTurn(userID, "user", prompt)
	s.saveTurn(userID, "assistant", reply)

	return &ChatReply{Reply: reply}, nil
}

// AskStream streams chunks to the caller and stores the assembled reply
// once the stream ends.
func (s *ChatService) AskStream(ctx context.Context, userID uint, prompt string) (<-chan string, <-chan error) {
	stream, errChan := s.ai.ChatStream(ctx, prompt, s.history(userID))

	out := make(chan string)
	outErr := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(outErr)

		var full []byte
		for chunk := range stream {
			full = append(full, chunk...)
			out <- chunk
		}
		if err := <-errChan; err != nil {
			outErr <- err
			return
		}
		s.saveTurn(userID, "user", prompt)
		s.saveTurn(userID, "assistant", string(full))
	}()

	return out, outErr
}

func (s *ChatService) History(userID uint) ([]model.ChatTurn, error) {
	return s.chatRepo.History(userID, chatHistoryLimit)
}
