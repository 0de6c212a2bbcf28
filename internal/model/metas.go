package model

// 枚举类别
const (
	MetaTypeUserRole         = "USER_ROLE"
	MetaTypeProjectStatus    = "PROJECT_STATUS"
	MetaTypeProjectPrivilege = "PROJECT_PRIVILEGE"
	MetaTypeIssueStatus      = "ISSUE_STATUS"
)

// Metas 枚举查找表，配置数据而非领域约束对象
type Metas struct {
	BaseModel
	MetaType  string  `gorm:"size:50;not null;index" json:"meta_type"`
	MetaValue string  `gorm:"size:100;not null" json:"meta_value"`
	Note      *string `gorm:"size:255" json:"note"`
}

func (Metas) TableName() string {
	return "metas"
}
