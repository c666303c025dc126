package repository

import (
	"drive_safe_backend/internal/model"

	"gorm.io/gorm"
)

type TestPassedRepository struct {
	DB *gorm.DB
}

func NewTestPassedRepository(db *gorm.DB) *TestPassedRepository {
	return &TestPassedRepository{DB: db}
}

func (r *TestPassedRepository) Exists(userID, adviceID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.TestPassed{}).
		Where("user_id = ? AND advice_id = ?", userID, adviceID).
		Count(&count).Error
	return count > 0, err
}

// ExistsTx 同 Exists，但在给定事务内执行
func (r *TestPassedRepository) ExistsTx(tx *gorm.DB, userID, adviceID uint) (bool, error) {
	var count int64
	err := tx.Model(&model.TestPassed{}).
		Where("user_id = ? AND advice_id = ?", userID, adviceID).
		Count(&count).Error
	return count > 0, err
}

func (r *TestPassedRepository) CreateTx(tx *gorm.DB, record *model.TestPassed) error {
	return tx.Create(record).Error
}
