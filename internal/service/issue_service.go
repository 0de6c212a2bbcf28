package service

import (
	"time"

	"github.com/samber/lo"

	"issuer/internal/dto"
	"issuer/internal/model"
	"issuer/internal/repository"
	pkgErrors "issuer/pkg/errors"
)

type IssueService interface {
	Create(currentUser string, req *dto.CreateIssueRequest) (*dto.IssueResponse, error)
	GetByCode(issueCode string) (*dto.IssueResponse, error)
	Update(currentUser string, req *dto.UpdateIssueRequest) (*dto.IssueResponse, error)
	Follow(currentUser string, req *dto.FollowIssueRequest) error
	Delete(currentUser, issueCode string) error
	Query(req *dto.QueryIssueRequest) ([]*dto.IssueResponse, int64, error)
}

type issueService struct {
	repo        repository.IssueRepository
	projectRepo repository.ProjectRepository
	commentRepo repository.IssueCommentRepository
	activitySvc ActivityService
}

func NewIssueService(
	repo repository.IssueRepository,
	projectRepo repository.ProjectRepository,
	commentRepo repository.IssueCommentRepository,
	activitySvc ActivityService,
) IssueService {
	return &issueService{
		repo:        repo,
		projectRepo: projectRepo,
		commentRepo: commentRepo,
		activitySvc: activitySvc,
	}
}

// Create 创建议题，初始状态Open，提出人自动关注
func (s *issueService) Create(currentUser string, req *dto.CreateIssueRequest) (*dto.IssueResponse, error) {
	if _, err := s.projectRepo.FindByCode(req.ProjectCode); err != nil {
		return nil, err
	}

	issue := &model.Issue{
		ProjectCode: req.ProjectCode,
		Title:       req.Title,
		Description: req.Description,
		Owner:       currentUser,
		ProposeDate: time.Now(),
		Status:      model.IssueStatusOpen,
		Tags:        lo.Uniq(req.Tags),
		Followers:   lo.Uniq(append(req.Followers, currentUser)),
		Assigned:    lo.Uniq(req.Assigned),
	}
	issueCode, err := s.repo.Create(issue)
	if err != nil {
		return nil, err
	}

	s.activitySvc.Record(currentUser, issueCode, model.ActivityNewIssue,
		map[string]interface{}{"title": issue.Title})

	return s.toResponse(issue), nil
}

func (s *issueService) GetByCode(issueCode string) (*dto.IssueResponse, error) {
	issue, err := s.repo.FindByCode(issueCode)
	if err != nil {
		return nil, err
	}
	return s.toResponse(issue), nil
}

// Update 更新议题，仅提出人可操作，标签集合整体替换
func (s *issueService) Update(currentUser string, req *dto.UpdateIssueRequest) (*dto.IssueResponse, error) {
	issue, err := s.repo.FindByCode(req.IssueCode)
	if err != nil {
		return nil, err
	}
	if issue.Owner != currentUser {
		return nil, pkgErrors.ErrPermissionDenied
	}

	issue.Title = req.Title
	issue.Description = req.Description
	issue.Status = req.Status
	issue.Tags = lo.Uniq(req.Tags)
	issue.Followers = lo.Uniq(req.Followers)
	issue.Assigned = lo.Uniq(req.Assigned)

	if err := s.repo.UpdateByCode(issue); err != nil {
		return nil, err
	}

	s.activitySvc.Record(currentUser, req.IssueCode, model.ActivityChangeIssue,
		map[string]interface{}{"title": issue.Title})

	return s.toResponse(issue), nil
}

// Follow 关注/取关议题，只动当前用户自己在关注者集合里的那一项
func (s *issueService) Follow(currentUser string, req *dto.FollowIssueRequest) error {
	issue, err := s.repo.FindByCode(req.IssueCode)
	if err != nil {
		return err
	}

	category := model.ActivityFollowIssue
	if req.Follow {
		if lo.Contains(issue.Followers, currentUser) {
			return nil
		}
		issue.Followers = append(issue.Followers, currentUser)
	} else {
		if !lo.Contains(issue.Followers, currentUser) {
			return nil
		}
		issue.Followers = lo.Without(issue.Followers, currentUser)
		category = model.ActivityUnfollowIssue
	}

	if err := s.repo.UpdateByCode(issue); err != nil {
		return err
	}

	s.activitySvc.Record(currentUser, req.IssueCode, category,
		map[string]interface{}{"title": issue.Title})
	return nil
}

// Delete 删除议题，提出人或项目负责人可操作，评论一并级联清理
func (s *issueService) Delete(currentUser, issueCode string) error {
	issue, err := s.repo.FindByCode(issueCode)
	if err != nil {
		return err
	}
	if issue.Owner != currentUser {
		project, err := s.projectRepo.FindByCode(issue.ProjectCode)
		if err != nil {
			return err
		}
		if project.Owner != currentUser {
			return pkgErrors.ErrPermissionDenied
		}
	}

	if err := s.repo.DeleteByCode(issueCode); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteByIssue(issueCode); err != nil {
		return err
	}

	s.activitySvc.Record(currentUser, issueCode, model.ActivityDeleteIssue,
		map[string]interface{}{"title": issue.Title})
	return nil
}

func (s *issueService) Query(req *dto.QueryIssueRequest) ([]*dto.IssueResponse, int64, error) {
	startDate, err := parseOptionalDate(optional(req.StartDate))
	if err != nil {
		return nil, 0, err
	}
	endDate, err := parseOptionalDate(optional(req.EndDate))
	if err != nil {
		return nil, 0, err
	}

	cond := &repository.IssueCondition{
		IssueCode:   req.IssueCode,
		ProjectCode: req.ProjectCode,
		Owner:       req.Owner,
		Status:      req.Status,
		IssueID:     req.IssueID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Follower:    req.Follower,
		Assigned:    req.Assigned,
		Tags:        req.Tags,
	}

	issues, err := s.repo.ListByCondition(cond, req.GetPage(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByCondition(cond)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.IssueResponse, len(issues))
	for i, issue := range issues {
		responses[i] = s.toResponse(issue)
	}
	return responses, total, nil
}

func (s *issueService) toResponse(issue *model.Issue) *dto.IssueResponse {
	return &dto.IssueResponse{
		IssueCode:   issue.IssueCode,
		ProjectCode: issue.ProjectCode,
		IssueID:     issue.IssueID,
		Title:       issue.Title,
		Description: issue.Description,
		Owner:       issue.Owner,
		ProposeDate: issue.ProposeDate.Format(dateLayout),
		Status:      issue.Status,
		Tags:        issue.Tags,
		Followers:   issue.Followers,
		Assigned:    issue.Assigned,
		CreatedAt:   issue.CreatedAt.Format(time.RFC3339),
	}
}
