package model

import "time"

// CodePrefixProject 项目发号前缀
const CodePrefixProject = "PJ"

// 项目权限
const (
	PrivilegePublic  = "Public"
	PrivilegePrivate = "Private"
)

// 项目状态
const (
	ProjectStatusStart      = "Start"
	ProjectStatusProcessing = "Processing"
	ProjectStatusCheck      = "Check"
	ProjectStatusFinished   = "Finished"
)

// Project 项目模型，发号前缀PJ
type Project struct {
	BaseModel
	ProjectCode string     `gorm:"size:32;not null;index" json:"project_code"`
	ProjectName string     `gorm:"size:100;not null" json:"project_name"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Owner       string     `gorm:"size:32;not null;index" json:"owner"` // 项目负责人用户码
	Description *string    `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:20;not null" json:"status"`
	Budget      *string    `gorm:"size:100" json:"budget"`
	Privilege   string     `gorm:"size:20;not null" json:"privilege"` // Public/Private，私有仅限负责人与参与者查看
}

func (Project) TableName() string {
	return "projects"
}

// ProjectToUser 项目-用户参与关系行
type ProjectToUser struct {
	BaseModel
	ProjectCode string `gorm:"size:32;not null;index;uniqueIndex:uk_project_user" json:"project_code"`
	UserCode    string `gorm:"size:32;not null;index;uniqueIndex:uk_project_user" json:"user_code"`
}

func (ProjectToUser) TableName() string {
	return "project_to_user"
}
