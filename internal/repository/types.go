package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	pkgErrors "issuer/pkg/errors"
)

// Offset 计算分页偏移量，页码从1起
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// isDuplicateErr 判断唯一约束冲突
func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite方言未翻译时的兜底
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "Duplicate entry")
}

// wrapDBError 把存储层错误翻译为统一错误类型，不向上抛异常
func wrapDBError(message string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgErrors.ErrRecordNotFound
	}
	if isDuplicateErr(err) {
		return pkgErrors.ErrRecordExists
	}
	return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, message, err)
}
