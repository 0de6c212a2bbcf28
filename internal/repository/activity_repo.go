package repository

import (
	"time"

	"gorm.io/gorm"

	"issuer/internal/model"
)

type ActivityRepository interface {
	Insert(activity *model.Activity) error
	ListBySubject(subject string, limit int) ([]*model.Activity, error)
	ListByTargets(targets []string, limit int) ([]*model.Activity, error)
	PruneBefore(t time.Time) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(activity *model.Activity) error {
	if err := r.db.Create(activity).Error; err != nil {
		return wrapDBError("写入动态失败", err)
	}
	return nil
}

// ListBySubject 按发起人查询，最新在前，limit<=0时不限制条数
func (r *activityRepository) ListBySubject(subject string, limit int) ([]*model.Activity, error) {
	var activities []*model.Activity
	query := r.db.Where("subject = ?", subject).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&activities).Error; err != nil {
		return nil, wrapDBError("查询动态失败", err)
	}
	return activities, nil
}

// ListByTargets 按对象集合查询，最新在前
func (r *activityRepository) ListByTargets(targets []string, limit int) ([]*model.Activity, error) {
	if len(targets) == 0 {
		return []*model.Activity{}, nil
	}

	var activities []*model.Activity
	query := r.db.Where("target IN ?", targets).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&activities).Error; err != nil {
		return nil, wrapDBError("查询动态失败", err)
	}
	return activities, nil
}

// PruneBefore 批量清理早于t的流水，定时任务与测试使用
func (r *activityRepository) PruneBefore(t time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", t).Delete(&model.Activity{})
	if res.Error != nil {
		return 0, wrapDBError("清理动态失败", res.Error)
	}
	return res.RowsAffected, nil
}
