package repository

import (
	"drive_safe_backend/internal/model"

	"gorm.io/gorm"
)

type AdviceRepository struct {
	DB *gorm.DB
}

func NewAdviceRepository(db *gorm.DB) *AdviceRepository {
	return &AdviceRepository{DB: db}
}

func (r *AdviceRepository) Create(advice *model.Advice) error {
	return r.DB.Create(advice).Error
}

func (r *AdviceRepository) FindByID(id uint) (*model.Advice, error) {
	var advice model.Advice
	err := r.DB.Preload("Tags").First(&advice, id).Error
	return &advice, err
}

// FindAll 按创建时间升序返回全部建议
func (r *AdviceRepository) FindAll() ([]model.Advice, error) {
	var advices []model.Advice
	err := r.DB.Preload("Tags").Order("created_at asc").Find(&advices).Error
	return advices, err
}

func (r *AdviceRepository) FindByTag(tagID uint) ([]model.Advice, error) {
	var advices []model.Advice
	err := r.DB.Preload("Tags").
		Joins("JOIN advice_tags ON advice_tags.advice_id = advices.id").
		Where("advice_tags.tag_id = ?", tagID).
		Order("advices.created_at asc").
		Find(&advices).Error
	return advices, err
}

func (r *AdviceRepository) Update(advice *model.Advice) error {
	return r.DB.Save(advice).Error
}

func (r *AdviceRepository) ReplaceTags(advice *model.Advice, tags []model.Tag) error {
	return r.DB.Model(advice).Association("Tags").Replace(tags)
}

func (r *AdviceRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Advice{}, id).Error
}

func (r *AdviceRepository) CreateLike(like *model.AdviceLike) error {
	return r.DB.Create(like).Error
}

func (r *AdviceRepository) DeleteLike(userID, adviceID uint) (int64, error) {
	res := r.DB.Where("user_id = ? AND advice_id = ?", userID, adviceID).
		Delete(&model.AdviceLike{})
	return res.RowsAffected, res.Error
}

func (r *AdviceRepository) CountLikes(adviceID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.AdviceLike{}).
		Where("advice_id = ?", adviceID).
		Count(&count).Error
	return count, err
}
