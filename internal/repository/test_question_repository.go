package repository

import (
	"drive_safe_backend/internal/model"

	"gorm.io/gorm"
)

type TestQuestionRepository struct {
	DB *gorm.DB
}

func NewTestQuestionRepository(db *gorm.DB) *TestQuestionRepository {
	return &TestQuestionRepository{DB: db}
}

func (r *TestQuestionRepository) Create(question *model.TestQuestion) error {
	return r.DB.Create(question).Error
}

func (r *TestQuestionRepository) FindByID(id uint) (*model.TestQuestion, error) {
	var question model.TestQuestion
	err := r.DB.First(&question, id).Error
	return &question, err
}

// FindByAdvice 返回某建议的全部自测题，按创建顺序
func (r *TestQuestionRepository) FindByAdvice(adviceID uint) ([]model.TestQuestion, error) {
	var questions []model.TestQuestion
	err := r.DB.Where("advice_id = ?", adviceID).Order("id asc").Find(&questions).Error
	return questions, err
}

func (r *TestQuestionRepository) Update(question *model.TestQuestion) error {
	return r.DB.Save(question).Error
}

func (r *TestQuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.TestQuestion{}, id).Error
}
