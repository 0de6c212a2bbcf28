package repository

import (
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

// GroupMemberRepository 用户-用户组关系表维护
type GroupMemberRepository interface {
	Add(userCode, groupCode string) error
	Remove(userCode, groupCode string) error
	RemoveByGroup(groupCode string) error
	RemoveByUser(userCode string) error
	ReplaceAll(groupCode string, userCodes []string) error
	ListByUser(userCode string, page, pageSize int) ([]*model.UserToUserGroup, error)
	ListByGroup(groupCode string, page, pageSize int) ([]*model.UserToUserGroup, error)
	ListCodesByGroup(groupCode string) ([]string, error)
	CountByUser(userCode string) (int64, error)
}

type groupMemberRepository struct {
	db *gorm.DB
}

func NewGroupMemberRepository(db *gorm.DB) GroupMemberRepository {
	return &groupMemberRepository{db: db}
}

// Add 幂等插入，重复成员依赖联合唯一索引吸收，调用方无需预查
func (r *groupMemberRepository) Add(userCode, groupCode string) error {
	row := model.UserToUserGroup{UserCode: userCode, GroupCode: groupCode}
	err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil && !isDuplicateErr(err) {
		return wrapDBError("添加组成员失败", err)
	}
	return nil
}

func (r *groupMemberRepository) Remove(userCode, groupCode string) error {
	res := r.db.Where("user_code = ? AND group_code = ?", userCode, groupCode).
		Delete(&model.UserToUserGroup{})
	if res.Error != nil {
		return wrapDBError("移除组成员失败", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgErrors.ErrRecordNotFound
	}
	return nil
}

func (r *groupMemberRepository) RemoveByGroup(groupCode string) error {
	err := r.db.Where("group_code = ?", groupCode).Delete(&model.UserToUserGroup{}).Error
	if err != nil {
		return wrapDBError("清理组成员失败", err)
	}
	return nil
}

func (r *groupMemberRepository) RemoveByUser(userCode string) error {
	err := r.db.Where("user_code = ?", userCode).Delete(&model.UserToUserGroup{}).Error
	if err != nil {
		return wrapDBError("清理用户组关系失败", err)
	}
	return nil
}

// ReplaceAll 全量替换组成员。单事务内按差集增删，
// 不做先清空再重插，中途失败不会留下空成员组。
func (r *groupMemberRepository) ReplaceAll(groupCode string, userCodes []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(&model.UserToUserGroup{}).
			Where("group_code = ?", groupCode).
			Pluck("user_code", &existing).Error; err != nil {
			return err
		}

		target := lo.Uniq(userCodes)
		toRemove, toAdd := lo.Difference(existing, target)

		if len(toRemove) > 0 {
			if err := tx.Where("group_code = ? AND user_code IN ?", groupCode, toRemove).
				Delete(&model.UserToUserGroup{}).Error; err != nil {
				return err
			}
		}
		for _, userCode := range toAdd {
			row := model.UserToUserGroup{UserCode: userCode, GroupCode: groupCode}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapDBError("替换组成员失败", err)
	}
	return nil
}

func (r *groupMemberRepository) ListByUser(userCode string, page, pageSize int) ([]*model.UserToUserGroup, error) {
	var rows []*model.UserToUserGroup
	err := r.db.Where("user_code = ?", userCode).
		Order("id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, wrapDBError("查询用户组关系失败", err)
	}
	return rows, nil
}

func (r *groupMemberRepository) ListByGroup(groupCode string, page, pageSize int) ([]*model.UserToUserGroup, error) {
	var rows []*model.UserToUserGroup
	err := r.db.Where("group_code = ?", groupCode).
		Order("id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, wrapDBError("查询组成员失败", err)
	}
	return rows, nil
}

// ListCodesByGroup 取组全部成员用户码，不分页
func (r *groupMemberRepository) ListCodesByGroup(groupCode string) ([]string, error) {
	var codes []string
	err := r.db.Model(&model.UserToUserGroup{}).
		Where("group_code = ?", groupCode).
		Order("id ASC").
		Pluck("user_code", &codes).Error
	if err != nil {
		return nil, wrapDBError("查询组成员失败", err)
	}
	return codes, nil
}

// CountByUser 统计用户加入的组数
func (r *groupMemberRepository) CountByUser(userCode string) (int64, error) {
	var total int64
	err := r.db.Model(&model.UserToUserGroup{}).
		Where("user_code = ?", userCode).
		Count(&total).Error
	if err != nil {
		return 0, wrapDBError("统计用户组关系失败", err)
	}
	return total, nil
}
