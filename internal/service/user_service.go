package service

import (
	"errors"

	"drive_safe_backend/internal/repository"
	"drive_safe_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo  *repository.UserRepository
	ScoreRepo *repository.ScoreRepository
}

func NewUserService(userRepo *repository.UserRepository, scoreRepo *repository.ScoreRepository) *UserService {
	return &UserService{
		UserRepo:  userRepo,
		ScoreRepo: scoreRepo,
	}
}

// UserInfo 用户公开信息：ID、用户名和累计积分
type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

func (s *UserService) GetUserInfo(userID uint) (*UserInfo, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	score, err := s.ScoreRepo.FindByUser(user.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// 历史数据可能缺少积分记录，按 0 分处理
		return &UserInfo{ID: user.ID, Username: user.Username}, nil
	}

	return &UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Score:    score.Score,
	}, nil
}
