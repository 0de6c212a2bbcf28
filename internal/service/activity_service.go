package service

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"issuer/internal/dto"
	"issuer/internal/model"
	"issuer/internal/pkg/logger"
	"issuer/internal/repository"
	"issuer/pkg/constants"
)

type ActivityService interface {
	Record(subject, target, category string, extInfo map[string]interface{})
	ListBySubject(subject string, limit int) ([]*dto.ActivityResponse, error)
	ListByTargets(targets []string, limit int) ([]*dto.ActivityResponse, error)
	Prune(retentionDays int) (int64, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

// Record 记录一条动态。动态只是旁路流水，写入失败仅记日志，
// 绝不让业务主流程跟着失败。
func (s *activityService) Record(subject, target, category string, extInfo map[string]interface{}) {
	activity := &model.Activity{
		Subject:  subject,
		Target:   target,
		Category: category,
		ExtInfo:  datatypes.JSONMap(extInfo),
	}
	if err := s.repo.Insert(activity); err != nil {
		logger.Error("记录动态失败",
			zap.String("subject", subject),
			zap.String("target", target),
			zap.String("category", category),
			zap.Error(err),
		)
	}
}

func (s *activityService) ListBySubject(subject string, limit int) ([]*dto.ActivityResponse, error) {
	activities, err := s.repo.ListBySubject(subject, limit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(activities), nil
}

func (s *activityService) ListByTargets(targets []string, limit int) ([]*dto.ActivityResponse, error) {
	activities, err := s.repo.ListByTargets(targets, limit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(activities), nil
}

// Prune 清理早于保留期的流水
func (s *activityService) Prune(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = constants.DefaultActivityRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.repo.PruneBefore(cutoff)
}

func (s *activityService) toResponses(activities []*model.Activity) []*dto.ActivityResponse {
	responses := make([]*dto.ActivityResponse, len(activities))
	for i, activity := range activities {
		responses[i] = &dto.ActivityResponse{
			Subject:   activity.Subject,
			Target:    activity.Target,
			Category:  activity.Category,
			ExtInfo:   activity.ExtInfo,
			CreatedAt: activity.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses
}
