package service

import (
	"shakti_backend/internal/model"
	"shakti_backend/internal/repository"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Village  string `json:"village"`
	District string `json:"district"`
	Language string `json:"language"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Village != "" {
		user.Village = req.Village
	}
	if req.District != "" {
		user.District = req.District
	}
	if req.Language != "" {
		user.Language = LanguageCode(req.Language)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetAvatar(userID uint, avatarURL string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Avatar = avatarURL
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
