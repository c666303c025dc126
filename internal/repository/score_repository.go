package repository

import (
	"drive_safe_backend/internal/model"

	"gorm.io/gorm"
)

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

func (r *ScoreRepository) FindByUser(userID uint) (*model.UserScore, error) {
	var score model.UserScore
	err := r.DB.Where("user_id = ?", userID).First(&score).Error
	return &score, err
}

// AddPoints 原子地为用户积分加上 points，使用传入的事务句柄
func (r *ScoreRepository) AddPoints(tx *gorm.DB, userID uint, points int) error {
	return tx.Model(&model.UserScore{}).
		Where("user_id = ?", userID).
		Update("score", gorm.Expr("score + ?", points)).
		Error
}
