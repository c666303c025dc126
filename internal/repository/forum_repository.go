package repository

import (
	"drive_safe_backend/internal/model"

	"gorm.io/gorm"
)

type ForumQuestionRepository struct {
	DB *gorm.DB
}

func NewForumQuestionRepository(db *gorm.DB) *ForumQuestionRepository {
	return &ForumQuestionRepository{DB: db}
}

func (r *ForumQuestionRepository) Create(question *model.ForumQuestion) error {
	return r.DB.Create(question).Error
}

func (r *ForumQuestionRepository) FindAll() ([]model.ForumQuestion, error) {
	var questions []model.ForumQuestion
	err := r.DB.Order("id asc").Find(&questions).Error
	return questions, err
}

func (r *ForumQuestionRepository) FindByID(id uint) (*model.ForumQuestion, error) {
	var question model.ForumQuestion
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *ForumQuestionRepository) Update(question *model.ForumQuestion) error {
	return r.DB.Save(question).Error
}

func (r *ForumQuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ForumQuestion{}, id).Error
}

type ForumAnswerRepository struct {
	DB *gorm.DB
}

func NewForumAnswerRepository(db *gorm.DB) *ForumAnswerRepository {
	return &ForumAnswerRepository{DB: db}
}

func (r *ForumAnswerRepository) Create(answer *model.ForumAnswer) error {
	return r.DB.Create(answer).Error
}

func (r *ForumAnswerRepository) FindAll() ([]model.ForumAnswer, error) {
	var answers []model.ForumAnswer
	err := r.DB.Order("id asc").Find(&answers).Error
	return answers, err
}

func (r *ForumAnswerRepository) FindByID(id uint) (*model.ForumAnswer, error) {
	var answer model.ForumAnswer
	err := r.DB.First(&answer, id).Error
	return &answer, err
}

func (r *ForumAnswerRepository) FindByQuestion(questionID uint) ([]model.ForumAnswer, error) {
	var answers []model.ForumAnswer
	err := r.DB.Where("question_id = ?", questionID).Order("id asc").Find(&answers).Error
	return answers, err
}

func (r *ForumAnswerRepository) Update(answer *model.ForumAnswer) error {
	return r.DB.Save(answer).Error
}

func (r *ForumAnswerRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ForumAnswer{}, id).Error
}
