package service

import (
	"time"

	"issuer/internal/dto"
	"issuer/internal/model"
	"issuer/internal/repository"
	pkgErrors "issuer/pkg/errors"
)

// 业务日期的统一格式
const dateLayout = "2006-01-02"

type ProjectService interface {
	Create(currentUser string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByCode(currentUser, projectCode string) (*dto.ProjectResponse, error)
	Update(currentUser string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(currentUser, projectCode string) error
	Join(currentUser string, req *dto.AddParticipantRequest) error
	Query(currentUser string, req *dto.QueryProjectRequest) ([]*dto.ProjectResponse, int64, error)
}

type projectService struct {
	repo        repository.ProjectRepository
	memberRepo  repository.ProjectMemberRepository
	issueRepo   repository.IssueRepository
	userRepo    repository.UserRepository
	activitySvc ActivityService
}

func NewProjectService(
	repo repository.ProjectRepository,
	memberRepo repository.ProjectMemberRepository,
	issueRepo repository.IssueRepository,
	userRepo repository.UserRepository,
	activitySvc ActivityService,
) ProjectService {
	return &projectService{
		repo:        repo,
		memberRepo:  memberRepo,
		issueRepo:   issueRepo,
		userRepo:    userRepo,
		activitySvc: activitySvc,
	}
}

// Create 创建项目，初始状态Start，创建者即负责人并自动成为参与者
func (s *projectService) Create(currentUser string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeBadRequest, "开始日期格式错误", err)
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		ProjectName: req.ProjectName,
		StartDate:   startDate,
		EndDate:     endDate,
		Owner:       currentUser,
		Description: req.Description,
		Status:      model.ProjectStatusStart,
		Budget:      req.Budget,
		Privilege:   req.Privilege,
	}
	projectCode, err := s.repo.Create(project)
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.Add(projectCode, currentUser); err != nil {
		return nil, err
	}

	s.activitySvc.Record(currentUser, projectCode, model.ActivityNewProject,
		map[string]interface{}{"project_name": project.ProjectName})

	return s.toResponse(project, true)
}

// GetByCode 查询项目详情。私有项目只有负责人与参与者可见。
func (s *projectService) GetByCode(currentUser, projectCode string) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByCode(projectCode)
	if err != nil {
		return nil, err
	}

	if project.Privilege == model.PrivilegePrivate && project.Owner != currentUser {
		joined, err := s.memberRepo.Exists(projectCode, currentUser)
		if err != nil {
			return nil, err
		}
		if !joined {
			return nil, pkgErrors.ErrPermissionDenied
		}
	}
	return s.toResponse(project, true)
}

// Update 更新项目，仅负责人可操作。移交负责人时新负责人自动成为参与者。
func (s *projectService) Update(currentUser string, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByCode(req.ProjectCode)
	if err != nil {
		return nil, err
	}
	if project.Owner != currentUser {
		return nil, pkgErrors.ErrPermissionDenied
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeBadRequest, "开始日期格式错误", err)
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	project.ProjectName = req.ProjectName
	project.StartDate = startDate
	project.EndDate = endDate
	project.Owner = req.Owner
	project.Description = req.Description
	project.Status = req.Status
	project.Budget = req.Budget
	project.Privilege = req.Privilege

	if err := s.repo.UpdateByCode(project); err != nil {
		return nil, err
	}
	if err := s.memberRepo.Add(req.ProjectCode, req.Owner); err != nil {
		return nil, err
	}

	s.activitySvc.Record(currentUser, req.ProjectCode, model.ActivityChangeProject,
		map[string]interface{}{"project_name": project.ProjectName})

	return s.toResponse(project, true)
}

// Delete 删除项目，仅负责人可操作。
// 项目下尚有议题时拒绝删除，参与关系一并清理。
func (s *projectService) Delete(currentUser, projectCode string) error {
	project, err := s.repo.FindByCode(projectCode)
	if err != nil {
		return err
	}
	if project.Owner != currentUser {
		return pkgErrors.ErrPermissionDenied
	}

	remaining, err := s.issueRepo.CountByCondition(&repository.IssueCondition{ProjectCode: projectCode})
	if err != nil {
		return err
	}
	if remaining > 0 {
		return pkgErrors.ErrUndeletedIssues
	}

	if err := s.repo.DeleteByCode(projectCode); err != nil {
		return err
	}
	if err := s.memberRepo.RemoveByProject(projectCode); err != nil {
		return err
	}

	s.activitySvc.Record(currentUser, projectCode, model.ActivityDeleteProject,
		map[string]interface{}{"project_name": project.ProjectName})
	return nil
}

// Join 加入项目。负责人可拉任何人，其他人只能把自己加进来。
func (s *projectService) Join(currentUser string, req *dto.AddParticipantRequest) error {
	project, err := s.repo.FindByCode(req.ProjectCode)
	if err != nil {
		return err
	}
	if currentUser != project.Owner && currentUser != req.UserCode {
		return pkgErrors.ErrPermissionDenied
	}
	if _, err := s.userRepo.FindByCode(req.UserCode); err != nil {
		return err
	}

	if err := s.memberRepo.Add(req.ProjectCode, req.UserCode); err != nil {
		return err
	}

	s.activitySvc.Record(req.UserCode, req.ProjectCode, model.ActivityJoinProject, nil)
	return nil
}

func (s *projectService) Query(currentUser string, req *dto.QueryProjectRequest) ([]*dto.ProjectResponse, int64, error) {
	beforeDate, err := parseOptionalDate(optional(req.BeforeDate))
	if err != nil {
		return nil, 0, err
	}
	afterDate, err := parseOptionalDate(optional(req.AfterDate))
	if err != nil {
		return nil, 0, err
	}

	cond := &repository.ProjectCondition{
		ProjectCode:  req.ProjectCode,
		ProjectName:  req.ProjectName,
		BeforeDate:   beforeDate,
		AfterDate:    afterDate,
		Owner:        req.Owner,
		Status:       req.Status,
		Participants: req.Participants,
	}

	projects, err := s.repo.ListByCondition(currentUser, cond, req.GetPage(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByCondition(currentUser, cond)
	if err != nil {
		return nil, 0, err
	}

	// 列表页不展开参与者，详情页才补全
	responses := make([]*dto.ProjectResponse, len(projects))
	for i, project := range projects {
		resp, err := s.toResponse(project, false)
		if err != nil {
			return nil, 0, err
		}
		responses[i] = resp
	}
	return responses, total, nil
}

func (s *projectService) toResponse(project *model.Project, withParticipants bool) (*dto.ProjectResponse, error) {
	owner, err := s.userRepo.FindByCode(project.Owner)
	if err != nil {
		return nil, err
	}

	var endDate *string
	if project.EndDate != nil {
		formatted := project.EndDate.Format(dateLayout)
		endDate = &formatted
	}

	resp := &dto.ProjectResponse{
		ProjectCode: project.ProjectCode,
		ProjectName: project.ProjectName,
		StartDate:   project.StartDate.Format(dateLayout),
		EndDate:     endDate,
		Owner:       toUserResponse(owner),
		Description: project.Description,
		Status:      project.Status,
		Budget:      project.Budget,
		Privilege:   project.Privilege,
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
	}

	if withParticipants {
		participantCodes, err := s.memberRepo.ListCodesByProject(project.ProjectCode)
		if err != nil {
			return nil, err
		}
		participants := make([]*dto.UserResponse, 0, len(participantCodes))
		for _, userCode := range participantCodes {
			participant, err := s.userRepo.FindByCode(userCode)
			if err != nil {
				return nil, err
			}
			participants = append(participants, toUserResponse(participant))
		}
		resp.Participants = participants
	}
	return resp, nil
}

// parseOptionalDate 解析可选日期串，nil原样透传
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeBadRequest, "日期格式错误", err)
	}
	return &parsed, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
