package repository

import (
	"strconv"

	"gorm.io/gorm"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

type SequenceRepository interface {
	NextCode(prefix string) (string, error)
	NextIssueSeq(tx *gorm.DB, projectCode string) (int, error)
}

type sequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

// NextCode 发号。单条插入后直接取回存储分配的自增ID，
// 不做二次查询，同前缀并发调用也不会重号。
func (r *sequenceRepository) NextCode(prefix string) (string, error) {
	seq := model.Sequence{Prefix: prefix}
	if err := r.db.Create(&seq).Error; err != nil {
		return "", pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "发号失败", err)
	}
	return prefix + strconv.FormatInt(seq.ID, 10), nil
}

// NextIssueSeq 项目内议题编号，从1起。
// 在调用方事务内先递增计数行再读回，避免count-then-write竞争。
func (r *sequenceRepository) NextIssueSeq(tx *gorm.DB, projectCode string) (int, error) {
	res := tx.Model(&model.IssueSequence{}).
		Where("project_code = ?", projectCode).
		UpdateColumn("next_seq", gorm.Expr("next_seq + 1"))
	if res.Error != nil {
		return 0, wrapDBError("递增议题编号失败", res.Error)
	}

	if res.RowsAffected == 0 {
		seq := model.IssueSequence{ProjectCode: projectCode, NextSeq: 1}
		err := tx.Create(&seq).Error
		if err == nil {
			return 1, nil
		}
		if !isDuplicateErr(err) {
			return 0, wrapDBError("初始化议题编号失败", err)
		}
		// 并发初始化，重试递增
		res = tx.Model(&model.IssueSequence{}).
			Where("project_code = ?", projectCode).
			UpdateColumn("next_seq", gorm.Expr("next_seq + 1"))
		if res.Error != nil {
			return 0, wrapDBError("递增议题编号失败", res.Error)
		}
	}

	var seq model.IssueSequence
	if err := tx.Where("project_code = ?", projectCode).First(&seq).Error; err != nil {
		return 0, wrapDBError("读取议题编号失败", err)
	}
	return seq.NextSeq, nil
}
