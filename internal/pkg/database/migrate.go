package database

import (
	"gorm.io/gorm"

	"issuer/internal/model"
)

// Migrate 建表，启动时执行
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Sequence{},
		&model.IssueSequence{},
		&model.User{},
		&model.UserGroup{},
		&model.UserToUserGroup{},
		&model.Project{},
		&model.ProjectToUser{},
		&model.Issue{},
		&model.IssueLabel{},
		&model.IssueComment{},
		&model.Notice{},
		&model.Activity{},
		&model.Metas{},
	)
}
