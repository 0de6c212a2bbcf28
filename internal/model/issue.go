package model

import "time"

// CodePrefixIssue 议题发号前缀
const CodePrefixIssue = "IS"

// 议题状态
const (
	IssueStatusOpen     = "Open"
	IssueStatusFinished = "Finished"
	IssueStatusClosed   = "Closed"
)

// 议题标签类型
const (
	LabelKindTag      = "tag"
	LabelKindFollower = "follower"
	LabelKindAssignee = "assignee"
)

// Issue 议题模型，发号前缀IS。
// IssueID为项目内编号，从1起，仅在项目内唯一。
type Issue struct {
	BaseModel
	IssueCode   string    `gorm:"size:32;not null;index" json:"issue_code"`
	ProjectCode string    `gorm:"size:32;not null;index" json:"project_code"`
	IssueID     int       `gorm:"not null" json:"issue_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Owner       string    `gorm:"size:32;not null;index" json:"owner"` // 议题作者用户码
	ProposeDate time.Time `gorm:"not null" json:"propose_date"`
	Status      string    `gorm:"size:20;not null" json:"status"`

	// 标签集合存放于issue_labels子表，精确匹配查询
	Tags      []string `gorm:"-" json:"tags"`
	Followers []string `gorm:"-" json:"followers"`
	Assigned  []string `gorm:"-" json:"assigned"`
}

func (Issue) TableName() string {
	return "issues"
}

// IssueLabel 议题标签行，kind区分tag/follower/assignee
type IssueLabel struct {
	BaseModel
	IssueCode string `gorm:"size:32;not null;index;uniqueIndex:uk_issue_label" json:"issue_code"`
	Kind      string `gorm:"size:16;not null;uniqueIndex:uk_issue_label" json:"kind"`
	Value     string `gorm:"size:100;not null;index;uniqueIndex:uk_issue_label" json:"value"`
}

func (IssueLabel) TableName() string {
	return "issue_labels"
}
