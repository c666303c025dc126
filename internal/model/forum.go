package model

// ForumQuestion 建议下的讨论提问
// swagger:model ForumQuestion
type ForumQuestion struct {
	BaseModel
	Text     string `gorm:"type:text;not null" json:"text"`
	AdviceID uint   `gorm:"index;not null" json:"adviceId"`
	UserID   uint   `gorm:"index;not null" json:"userId"`
}

func (ForumQuestion) TableName() string {
	return "forum_questions"
}

// swagger:model ForumAnswer
type ForumAnswer struct {
	BaseModel
	Text       string `gorm:"type:text;not null" json:"text"`
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	UserID     uint   `gorm:"index;not null" json:"userId"`
}

func (ForumAnswer) TableName() string {
	return "forum_answers"
}
