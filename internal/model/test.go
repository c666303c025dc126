package model

// TestQuestion 建议自测题：三个选项，正确答案字母不对外暴露
// swagger:model TestQuestion
type TestQuestion struct {
	BaseModel
	AdviceID      uint   `gorm:"index;not null" json:"-"`
	QuestionText  string `gorm:"type:text;not null" json:"questionText"`
	AnswerA       string `gorm:"type:text;not null" json:"answerA"`
	AnswerB       string `gorm:"type:text;not null" json:"answerB"`
	AnswerC       string `gorm:"type:text;not null" json:"answerC"`
	CorrectAnswer string `gorm:"size:1;not null" json:"-"`
}

func (TestQuestion) TableName() string {
	return "test_questions"
}

// TestPassed 记录某用户通过某建议自测的事实，(user, advice) 唯一
// swagger:model TestPassed
type TestPassed struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_test_passed_user_advice;not null" json:"userId"`
	AdviceID uint `gorm:"uniqueIndex:idx_test_passed_user_advice;not null" json:"adviceId"`
	Passed   bool `gorm:"not null" json:"passed"`
}

func (TestPassed) TableName() string {
	return "test_passed"
}
