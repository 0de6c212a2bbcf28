package model

import "time"

// 用户角色
const (
	RoleAdmin   = "Admin"
	RoleNormal  = "Normal"
	RoleSuspend = "Suspend"
)

// CodePrefixUser 用户发号前缀
const CodePrefixUser = "US"

// User 用户模型，发号前缀US
type User struct {
	BaseModel
	UserCode       string     `gorm:"size:32;not null;index" json:"user_code"`
	UserName       string     `gorm:"size:100;not null" json:"user_name"`
	Passwd         string     `gorm:"size:255;not null" json:"-"` // bcrypt哈希，不返回到前端
	Role           string     `gorm:"size:20;not null" json:"role"`
	Email          string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Description    *string    `gorm:"type:text" json:"description"`
	Phone          *string    `gorm:"size:30" json:"phone"`
	Avatar         *string    `gorm:"size:255" json:"avatar"`
	Token          *string    `gorm:"size:64" json:"-"` // 为空代表已登出
	TokenExpiredAt *time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
