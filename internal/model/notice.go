package model

// CodePrefixNotice 公告发号前缀
const CodePrefixNotice = "NT"

// Notice 全局公告模型，发号前缀NT，无归属人
type Notice struct {
	BaseModel
	NoticeCode string `gorm:"size:32;not null;index" json:"notice_code"`
	Content    string `gorm:"type:text;not null" json:"content"`
}

func (Notice) TableName() string {
	return "notices"
}
