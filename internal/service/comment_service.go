package service

import (
	"time"

	"gorm.io/datatypes"

	"issuer/internal/dto"
	"issuer/internal/model"
	"issuer/internal/repository"
	pkgErrors "issuer/pkg/errors"
)

type CommentService interface {
	Create(currentUser string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Fold(currentUser string, req *dto.FoldCommentRequest) error
	ListByIssue(issueCode string) ([]*dto.CommentResponse, error)
	ListByCommenter(userCode string) ([]*dto.CommentResponse, error)
}

type commentService struct {
	repo        repository.IssueCommentRepository
	issueRepo   repository.IssueRepository
	activitySvc ActivityService
}

func NewCommentService(
	repo repository.IssueCommentRepository,
	issueRepo repository.IssueRepository,
	activitySvc ActivityService,
) CommentService {
	return &commentService{
		repo:        repo,
		issueRepo:   issueRepo,
		activitySvc: activitySvc,
	}
}

// Create 新增评论，附件顺序原样保留
func (s *commentService) Create(currentUser string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.issueRepo.FindByCode(req.IssueCode); err != nil {
		return nil, err
	}

	comment := &model.IssueComment{
		IssueCode:   req.IssueCode,
		CommentTime: time.Now(),
		Commenter:   currentUser,
		Content:     req.Content,
		Appendices:  datatypes.JSONSlice[string](req.Appendices),
	}
	commentCode, err := s.repo.Create(comment)
	if err != nil {
		return nil, err
	}

	s.activitySvc.Record(currentUser, req.IssueCode, model.ActivityNewComment,
		map[string]interface{}{"comment_code": commentCode})

	return s.toResponse(comment), nil
}

// Fold 折叠/展开评论，评论人或议题提出人可操作，内容本身不可改
func (s *commentService) Fold(currentUser string, req *dto.FoldCommentRequest) error {
	comment, err := s.repo.FindByCode(req.CommentCode)
	if err != nil {
		return err
	}
	if comment.Commenter != currentUser {
		issue, err := s.issueRepo.FindByCode(comment.IssueCode)
		if err != nil {
			return err
		}
		if issue.Owner != currentUser {
			return pkgErrors.ErrPermissionDenied
		}
	}

	if err := s.repo.UpdateFoldByCode(req.CommentCode, req.Fold); err != nil {
		return err
	}

	s.activitySvc.Record(currentUser, comment.IssueCode, model.ActivityFoldComment,
		map[string]interface{}{"comment_code": req.CommentCode})
	return nil
}

func (s *commentService) ListByIssue(issueCode string) ([]*dto.CommentResponse, error) {
	comments, err := s.repo.ListByIssue(issueCode)
	if err != nil {
		return nil, err
	}
	return s.toResponses(comments), nil
}

func (s *commentService) ListByCommenter(userCode string) ([]*dto.CommentResponse, error) {
	comments, err := s.repo.ListByCommenter(userCode)
	if err != nil {
		return nil, err
	}
	return s.toResponses(comments), nil
}

func (s *commentService) toResponses(comments []*model.IssueComment) []*dto.CommentResponse {
	responses := make([]*dto.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = s.toResponse(comment)
	}
	return responses
}

func (s *commentService) toResponse(comment *model.IssueComment) *dto.CommentResponse {
	return &dto.CommentResponse{
		CommentCode: comment.CommentCode,
		IssueCode:   comment.IssueCode,
		Commenter:   comment.Commenter,
		CommentTime: comment.CommentTime.Format(time.RFC3339),
		Fold:        comment.Fold,
		Content:     comment.Content,
		Appendices:  comment.Appendices,
	}
}
