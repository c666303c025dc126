package model

// Advice 行车安全建议文章，可关联标签与自测题
// swagger:model Advice
type Advice struct {
	BaseModel
	Title      string `gorm:"size:128;not null" json:"title"`
	Text       string `gorm:"type:text;not null" json:"text"`
	TestPoints int    `gorm:"not null;default:0" json:"testPoints"`
	Tags       []Tag  `gorm:"many2many:advice_tags" json:"tags"`
}

func (Advice) TableName() string {
	return "advices"
}

// swagger:model Tag
type Tag struct {
	BaseModel
	Name string `gorm:"size:32;uniqueIndex;not null" json:"name"`
}

func (Tag) TableName() string {
	return "tags"
}

// AdviceLike 每个用户对同一篇建议最多点赞一次
type AdviceLike struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_advice_like_user;not null" json:"userId"`
	AdviceID uint `gorm:"uniqueIndex:idx_advice_like_user;not null" json:"adviceId"`
}

func (AdviceLike) TableName() string {
	return "advice_likes"
}
