package repository

import (
	"gorm.io/gorm"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

type MetasRepository interface {
	Insert(metas *model.Metas) error
	Delete(metaType, metaValue string) error
	ListByType(metaType string) ([]*model.Metas, error)
}

type metasRepository struct {
	db *gorm.DB
}

func NewMetasRepository(db *gorm.DB) MetasRepository {
	return &metasRepository{db: db}
}

func (r *metasRepository) Insert(metas *model.Metas) error {
	if err := r.db.Create(metas).Error; err != nil {
		return wrapDBError("写入枚举失败", err)
	}
	return nil
}

func (r *metasRepository) Delete(metaType, metaValue string) error {
	res := r.db.Where("meta_type = ? AND meta_value = ?", metaType, metaValue).
		Delete(&model.Metas{})
	if res.Error != nil {
		return wrapDBError("删除枚举失败", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgErrors.ErrRecordNotFound
	}
	return nil
}

func (r *metasRepository) ListByType(metaType string) ([]*model.Metas, error) {
	var metas []*model.Metas
	err := r.db.Where("meta_type = ?", metaType).Order("id ASC").Find(&metas).Error
	if err != nil {
		return nil, wrapDBError("查询枚举失败", err)
	}
	return metas, nil
}
