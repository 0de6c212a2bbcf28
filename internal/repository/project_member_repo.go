package repository

import (
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

// ProjectMemberRepository 项目-用户参与关系表维护
type ProjectMemberRepository interface {
	Add(projectCode, userCode string) error
	Remove(projectCode, userCode string) error
	RemoveByProject(projectCode string) error
	RemoveByUser(userCode string) error
	ReplaceAll(projectCode string, userCodes []string) error
	Exists(projectCode, userCode string) (bool, error)
	ListByProject(projectCode string, page, pageSize int) ([]*model.ProjectToUser, error)
	ListCodesByProject(projectCode string) ([]string, error)
	ListByUser(userCode string, page, pageSize int) ([]*model.ProjectToUser, error)
	CountByUser(userCode string) (int64, error)
}

type projectMemberRepository struct {
	db *gorm.DB
}

func NewProjectMemberRepository(db *gorm.DB) ProjectMemberRepository {
	return &projectMemberRepository{db: db}
}

func (r *projectMemberRepository) Add(projectCode, userCode string) error {
	row := model.ProjectToUser{ProjectCode: projectCode, UserCode: userCode}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil && !isDuplicateErr(err) {
		return wrapDBError("添加项目参与者失败", err)
	}
	return nil
}

func (r *projectMemberRepository) Remove(projectCode, userCode string) error {
	res := r.db.Where("project_code = ? AND user_code = ?", projectCode, userCode).
		Delete(&model.ProjectToUser{})
	if res.Error != nil {
		return wrapDBError("移除项目参与者失败", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgErrors.ErrRecordNotFound
	}
	return nil
}

func (r *projectMemberRepository) RemoveByProject(projectCode string) error {
	err := r.db.Where("project_code = ?", projectCode).Delete(&model.ProjectToUser{}).Error
	if err != nil {
		return wrapDBError("清理项目参与者失败", err)
	}
	return nil
}

func (r *projectMemberRepository) RemoveByUser(userCode string) error {
	err := r.db.Where("user_code = ?", userCode).Delete(&model.ProjectToUser{}).Error
	if err != nil {
		return wrapDBError("清理项目参与关系失败", err)
	}
	return nil
}

// ReplaceAll 全量替换项目参与者，单事务差集更新
func (r *projectMemberRepository) ReplaceAll(projectCode string, userCodes []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&model.ProjectToUser{}).
			Where("project_code = ?", projectCode).
			Pluck("user_code", &existing).Error; err != nil {
			return err
		}

		target := lo.Uniq(userCodes)
		toRemove, toAdd := lo.Difference(existing, target)

		if len(toRemove) > 0 {
			if err := tx.Where("project_code = ? AND user_code IN ?", projectCode, toRemove).
				Delete(&model.ProjectToUser{}).Error; err != nil {
				return err
			}
		}
		for _, userCode := range toAdd {
			row := model.ProjectToUser{ProjectCode: projectCode, UserCode: userCode}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapDBError("替换项目参与者失败", err)
	}
	return nil
}

// Exists 判断用户是否为项目参与者，按联合唯一索引点查
func (r *projectMemberRepository) Exists(projectCode, userCode string) (bool, error) {
	var total int64
	err := r.db.Model(&model.ProjectToUser{}).
		Where("project_code = ? AND user_code = ?", projectCode, userCode).
		Count(&total).Error
	if err != nil {
		return false, wrapDBError("查询项目参与关系失败", err)
	}
	return total > 0, nil
}

func (r *projectMemberRepository) ListByProject(projectCode string, page, pageSize int) ([]*model.ProjectToUser, error) {
	var rows []*model.ProjectToUser
	err := r.db.Where("project_code = ?", projectCode).
		Order("id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, wrapDBError("查询项目参与者失败", err)
	}
	return rows, nil
}

// ListCodesByProject 取项目全部参与者用户码，不分页
func (r *projectMemberRepository) ListCodesByProject(projectCode string) ([]string, error) {
	var codes []string
	err := r.db.Model(&model.ProjectToUser{}).
		Where("project_code = ?", projectCode).
		Order("id ASC").
		Pluck("user_code", &codes).Error
	if err != nil {
		return nil, wrapDBError("查询项目参与者失败", err)
	}
	return codes, nil
}

func (r *projectMemberRepository) ListByUser(userCode string, page, pageSize int) ([]*model.ProjectToUser, error) {
	var rows []*model.ProjectToUser
	err := r.db.Where("user_code = ?", userCode).
		Order("id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, wrapDBError("查询项目参与关系失败", err)
	}
	return rows, nil
}

func (r *projectMemberRepository) CountByUser(userCode string) (int64, error) {
	var total int64
	err := r.db.Model(&model.ProjectToUser{}).
		Where("user_code = ?", userCode).
		Count(&total).Error
	if err != nil {
		return 0, wrapDBError("统计项目参与关系失败", err)
	}
	return total, nil
}
