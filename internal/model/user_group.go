package model

// CodePrefixUserGroup 用户组发号前缀
const CodePrefixUserGroup = "UG"

// UserGroup 用户组模型，发号前缀UG
type UserGroup struct {
	BaseModel
	GroupCode  string `gorm:"size:32;not null;index" json:"group_code"`
	GroupName  string `gorm:"size:100;not null" json:"group_name"`
	GroupOwner string `gorm:"size:32;not null;index" json:"group_owner"` // 组长用户码，必须始终在成员表中
}

func (UserGroup) TableName() string {
	return "user_groups"
}

// UserToUserGroup 用户-用户组关系行，纯关联无负载
type UserToUserGroup struct {
	BaseModel
	UserCode  string `gorm:"size:32;not null;index;uniqueIndex:uk_user_group" json:"user_code"`
	GroupCode string `gorm:"size:32;not null;index;uniqueIndex:uk_user_group" json:"group_code"`
}

func (UserToUserGroup) TableName() string {
	return "user_to_user_group"
}
