package model

import (
	"time"

	"gorm.io/datatypes"
)

// CodePrefixIssueComment 评论发号前缀
const CodePrefixIssueComment = "IC"

// IssueComment 议题评论模型，发号前缀IC
type IssueComment struct {
	BaseModel
	CommentCode string                      `gorm:"size:32;not null;index" json:"comment_code"`
	IssueCode   string                      `gorm:"size:32;not null;index" json:"issue_code"`
	CommentTime time.Time                   `gorm:"not null" json:"comment_time"`
	Commenter   string                      `gorm:"size:32;not null;index" json:"commenter"` // 评论人用户码
	Fold        bool                        `gorm:"not null;default:false" json:"fold"`
	Content     string                      `gorm:"type:text;not null" json:"content"`
	Appendices  datatypes.JSONSlice[string] `json:"appendices"` // 附件路径，有序
}

func (IssueComment) TableName() string {
	return "issue_comments"
}
