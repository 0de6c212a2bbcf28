package repository

import (
	"gorm.io/gorm"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

type NoticeRepository interface {
	Create(notice *model.Notice) (string, error)
	List(limit int) ([]*model.Notice, error)
	DeleteByCode(noticeCode string) error
}

type noticeRepository struct {
	db      *gorm.DB
	seqRepo SequenceRepository
}

func NewNoticeRepository(db *gorm.DB, seqRepo SequenceRepository) NoticeRepository {
	return &noticeRepository{db: db, seqRepo: seqRepo}
}

func (r *noticeRepository) Create(notice *model.Notice) (string, error) {
	if notice.NoticeCode == "" {
		code, err := r.seqRepo.NextCode(model.CodePrefixNotice)
		if err != nil {
			return "", err
		}
		notice.NoticeCode = code
	}
	if err := r.db.Create(notice).Error; err != nil {
		return "", wrapDBError("创建公告失败", err)
	}
	return notice.NoticeCode, nil
}

// List 最新公告在前，limit<=0时不限制条数
func (r *noticeRepository) List(limit int) ([]*model.Notice, error) {
	var notices []*model.Notice
	query := r.db.Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notices).Error; err != nil {
		return nil, wrapDBError("查询公告列表失败", err)
	}
	return notices, nil
}

func (r *noticeRepository) DeleteByCode(noticeCode string) error {
	res := r.db.Where("notice_code = ?", noticeCode).Delete(&model.Notice{})
	if res.Error != nil {
		return wrapDBError("删除公告失败", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgErrors.ErrRecordNotFound
	}
	return nil
}
