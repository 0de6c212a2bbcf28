package model

// Sequence 简易发号器行，业务码 = 前缀 + 自增ID
type Sequence struct {
	BaseModel
	Prefix string `gorm:"size:8;not null;index" json:"prefix"`
}

func (Sequence) TableName() string {
	return "sequences"
}

// IssueSequence 项目内议题编号计数器
type IssueSequence struct {
	BaseModel
	ProjectCode string `gorm:"size:32;not null;uniqueIndex" json:"project_code"`
	NextSeq     int    `gorm:"not null;default:0" json:"next_seq"`
}

func (IssueSequence) TableName() string {
	return "issue_sequences"
}
