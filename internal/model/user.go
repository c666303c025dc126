package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// UserScore 用户累计积分，注册时创建，只由测试判分流程增加
// swagger:model UserScore
type UserScore struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	Score  int  `gorm:"not null;default:0" json:"score"`
}

func (UserScore) TableName() string {
	return "user_scores"
}
