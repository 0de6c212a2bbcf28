package repository

import (
	"gorm.io/gorm"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

// UserGroupCondition 用户组组合查询条件，零值字段不参与过滤
type UserGroupCondition struct {
	GroupCode string
	GroupName string // 模糊匹配
	Owner     string
	Members   []string // 含任一成员即命中
}

type UserGroupRepository interface {
	Create(group *model.UserGroup) (string, error)
	FindByCode(groupCode string) (*model.UserGroup, error)
	FindByOwner(owner string) ([]*model.UserGroup, error)
	UpdateByCode(group *model.UserGroup) error
	DeleteByCode(groupCode string) error
	ListByCondition(cond *UserGroupCondition, page, pageSize int) ([]*model.UserGroup, error)
	CountByCondition(cond *UserGroupCondition) (int64, error)
}

type userGroupRepository struct {
	db      *gorm.DB
	seqRepo SequenceRepository
}

func NewUserGroupRepository(db *gorm.DB, seqRepo SequenceRepository) UserGroupRepository {
	return &userGroupRepository{db: db, seqRepo: seqRepo}
}

func (r *userGroupRepository) Create(group *model.UserGroup) (string, error) {
	if group.GroupCode == "" {
		code, err := r.seqRepo.NextCode(model.CodePrefixUserGroup)
		if err != nil {
			return "", err
		}
		group.GroupCode = code
	}
	if err := r.db.Create(group).Error; err != nil {
		return "", wrapDBError("创建用户组失败", err)
	}
	return group.GroupCode, nil
}

func (r *userGroupRepository) FindByCode(groupCode string) (*model.UserGroup, error) {
	var group model.UserGroup
	err := r.db.Where("group_code = ?", groupCode).First(&group).Error
	if err != nil {
		return nil, wrapDBError("查询用户组失败", err)
	}
	return &group, nil
}

func (r *userGroupRepository) FindByOwner(owner string) ([]*model.UserGroup, error) {
	var groups []*model.UserGroup
	err := r.db.Where("group_owner = ?", owner).Order("id ASC").Find(&groups).Error
	if err != nil {
		return nil, wrapDBError("查询用户组失败", err)
	}
	return groups, nil
}

func (r *userGroupRepository) UpdateByCode(group *model.UserGroup) error {
	var result model.UserGroup
	if err := r.db.Where("group_code = ?", group.GroupCode).First(&result).Error; err != nil {
		return wrapDBError("查询用户组失败", err)
	}

	result.GroupName = group.GroupName
	result.GroupOwner = group.GroupOwner

	if err := r.db.Save(&result).Error; err != nil {
		return wrapDBError("更新用户组失败", err)
	}
	return nil
}

func (r *userGroupRepository) DeleteByCode(groupCode string) error {
	res := r.db.Where("group_code = ?", groupCode).Delete(&model.UserGroup{})
	if res.Error != nil {
		return wrapDBError("删除用户组失败", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgErrors.ErrRecordNotFound
	}
	return nil
}

// buildCondition 组合查询，成员过滤经关系表联接
func (r *userGroupRepository) buildCondition(cond *UserGroupCondition) *gorm.DB {
	query := r.db.Model(&model.UserGroup{}).
		Joins("JOIN user_to_user_group ON user_to_user_group.group_code = user_groups.group_code")

	if cond.GroupCode != "" {
		query = query.Where("user_groups.group_code = ?", cond.GroupCode)
	}
	if cond.GroupName != "" {
		query = query.Where("user_groups.group_name LIKE ?", "%"+cond.GroupName+"%")
	}
	if cond.Owner != "" {
		query = query.Where("user_groups.group_owner = ?", cond.Owner)
	}
	if len(cond.Members) > 0 {
		query = query.Where("user_to_user_group.user_code IN ?", cond.Members)
	}
	return query
}

func (r *userGroupRepository) ListByCondition(cond *UserGroupCondition, page, pageSize int) ([]*model.UserGroup, error) {
	var groups []*model.UserGroup
	err := r.buildCondition(cond).
		Select("DISTINCT user_groups.*").
		Order("user_groups.id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&groups).Error
	if err != nil {
		return nil, wrapDBError("查询用户组列表失败", err)
	}
	return groups, nil
}

func (r *userGroupRepository) CountByCondition(cond *UserGroupCondition) (int64, error) {
	var total int64
	err := r.buildCondition(cond).
		Distinct("user_groups.id").
		Count(&total).Error
	if err != nil {
		return 0, wrapDBError("统计用户组失败", err)
	}
	return total, nil
}
