package model

import "gorm.io/datatypes"

// 动态类别
const (
	ActivityNewComment    = "NewComment"
	ActivityFoldComment   = "FoldComment"
	ActivityNewIssue      = "NewIssue"
	ActivityChangeIssue   = "ChangeIssue"
	ActivityDeleteIssue   = "DeleteIssue"
	ActivityFollowIssue   = "FollowIssue"
	ActivityUnfollowIssue = "UnfollowIssue"
	ActivityNewProject    = "NewProject"
	ActivityDeleteProject = "DeleteProject"
	ActivityChangeProject = "ChangeProject"
	ActivityJoinProject   = "JoinProject"
	ActivityNewGroup      = "NewGroup"
	ActivityDeleteGroup   = "DeleteGroup"
	ActivityChangeGroup   = "ChangeGroup"
	ActivityAddGroup      = "AddGroup"
)

// Activity 动态模型，只追加的审计流水，用于渲染用户动态页
type Activity struct {
	BaseModel
	Subject  string            `gorm:"size:32;not null;index" json:"subject"` // 行为发起人用户码
	Target   string            `gorm:"size:32;not null;index" json:"target"`  // 行为对象业务码
	Category string            `gorm:"size:32;not null" json:"category"`
	ExtInfo  datatypes.JSONMap `json:"ext_info"` // 附加负载，如展示名快照
}

func (Activity) TableName() string {
	return "activities"
}
