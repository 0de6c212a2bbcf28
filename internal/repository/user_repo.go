package repository

import (
	"gorm.io/gorm"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

type UserRepository interface {
	Create(user *model.User) (string, error)
	FindByCode(userCode string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	UpdateByCode(user *model.User) error
	DeleteByCode(userCode string) error
	List(page, pageSize int) ([]*model.User, error)
	Count() (int64, error)
}

type userRepository struct {
	db      *gorm.DB
	seqRepo SequenceRepository
}

func NewUserRepository(db *gorm.DB, seqRepo SequenceRepository) UserRepository {
	return &userRepository{db: db, seqRepo: seqRepo}
}

// Create 新增用户，未携带用户码时先发号。邮箱唯一，重复注册返回冲突。
func (r *userRepository) Create(user *model.User) (string, error) {
	if user.UserCode == "" {
		code, err := r.seqRepo.NextCode(model.CodePrefixUser)
		if err != nil {
			return "", err
		}
		user.UserCode = code
	}
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateErr(err) {
			return "", pkgErrors.ErrEmailExists
		}
		return "", wrapDBError("创建用户失败", err)
	}
	return user.UserCode, nil
}

func (r *userRepository) FindByCode(userCode string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_code = ?", userCode).First(&user).Error
	if err != nil {
		return nil, wrapDBError("查询用户失败", err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, wrapDBError("查询用户失败", err)
	}
	return &user, nil
}

// UpdateByCode 按用户码更新。先取回持久行再覆盖可变字段，码不存在视为硬错误。
func (r *userRepository) UpdateByCode(user *model.User) error {
	var result model.User
	if err := r.db.Where("user_code = ?", user.UserCode).First(&result).Error; err != nil {
		return wrapDBError("查询用户失败", err)
	}

	result.UserName = user.UserName
	result.Passwd = user.Passwd
	result.Role = user.Role
	result.Email = user.Email
	result.Description = user.Description
	result.Phone = user.Phone
	result.Avatar = user.Avatar
	result.Token = user.Token
	result.TokenExpiredAt = user.TokenExpiredAt

	if err := r.db.Save(&result).Error; err != nil {
		return wrapDBError("更新用户失败", err)
	}
	return nil
}

func (r *userRepository) DeleteByCode(userCode string) error {
	res := r.db.Where("user_code = ?", userCode).Delete(&model.User{})
	if res.Error != nil {
		return wrapDBError("删除用户失败", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgErrors.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) List(page, pageSize int) ([]*model.User, error) {
	var users []*model.User
	err := r.db.Order("id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&users).Error
	if err != nil {
		return nil, wrapDBError("查询用户列表失败", err)
	}
	return users, nil
}

func (r *userRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&model.User{}).Count(&total).Error; err != nil {
		return 0, wrapDBError("统计用户失败", err)
	}
	return total, nil
}
