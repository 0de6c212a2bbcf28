package service

import (
	"time"

	"issuer/internal/dto"
	"issuer/internal/model"
	"issuer/internal/repository"
	pkgErrors "issuer/pkg/errors"
)

type NoticeService interface {
	Create(currentUser string, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
	List(limit int) ([]*dto.NoticeResponse, error)
	Delete(currentUser, noticeCode string) error
}

type noticeService struct {
	repo     repository.NoticeRepository
	userRepo repository.UserRepository
}

func NewNoticeService(repo repository.NoticeRepository, userRepo repository.UserRepository) NoticeService {
	return &noticeService{repo: repo, userRepo: userRepo}
}

// Create 发布公告，仅管理员可操作
func (s *noticeService) Create(currentUser string, req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	if err := s.requireAdmin(currentUser); err != nil {
		return nil, err
	}

	notice := &model.Notice{Content: req.Content}
	if _, err := s.repo.Create(notice); err != nil {
		return nil, err
	}
	return s.toResponse(notice), nil
}

func (s *noticeService) List(limit int) ([]*dto.NoticeResponse, error) {
	notices, err := s.repo.List(limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NoticeResponse, len(notices))
	for i, notice := range notices {
		responses[i] = s.toResponse(notice)
	}
	return responses, nil
}

// Delete 撤下公告，仅管理员可操作
func (s *noticeService) Delete(currentUser, noticeCode string) error {
	if err := s.requireAdmin(currentUser); err != nil {
		return err
	}
	return s.repo.DeleteByCode(noticeCode)
}

func (s *noticeService) requireAdmin(userCode string) error {
	user, err := s.userRepo.FindByCode(userCode)
	if err != nil {
		return err
	}
	if user.Role != model.RoleAdmin {
		return pkgErrors.ErrPermissionDenied
	}
	return nil
}

func (s *noticeService) toResponse(notice *model.Notice) *dto.NoticeResponse {
	return &dto.NoticeResponse{
		NoticeCode: notice.NoticeCode,
		Content:    notice.Content,
		CreatedAt:  notice.CreatedAt.Format(time.RFC3339),
	}
}
