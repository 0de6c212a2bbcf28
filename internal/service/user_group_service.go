package service

import (
	"time"

	"github.com/samber/lo"

	"issuer/internal/dto"
	"issuer/internal/model"
	"issuer/internal/repository"
	pkgErrors "issuer/pkg/errors"
)

type UserGroupService interface {
	Create(currentUser string, req *dto.CreateUserGroupRequest) (*dto.UserGroupResponse, error)
	GetByCode(groupCode string) (*dto.UserGroupResponse, error)
	Update(currentUser string, req *dto.UpdateUserGroupRequest) (*dto.UserGroupResponse, error)
	Delete(currentUser, groupCode string) error
	Query(req *dto.QueryUserGroupRequest) ([]*dto.UserGroupResponse, int64, error)
}

type userGroupService struct {
	repo        repository.UserGroupRepository
	memberRepo  repository.GroupMemberRepository
	userRepo    repository.UserRepository
	activitySvc ActivityService
}

func NewUserGroupService(
	repo repository.UserGroupRepository,
	memberRepo repository.GroupMemberRepository,
	userRepo repository.UserRepository,
	activitySvc ActivityService,
) UserGroupService {
	return &userGroupService{
		repo:        repo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
		activitySvc: activitySvc,
	}
}

// Create 创建用户组，创建者即组长并自动入组
func (s *userGroupService) Create(currentUser string, req *dto.CreateUserGroupRequest) (*dto.UserGroupResponse, error) {
	group := &model.UserGroup{
		GroupName:  req.GroupName,
		GroupOwner: currentUser,
	}
	groupCode, err := s.repo.Create(group)
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.Add(currentUser, groupCode); err != nil {
		return nil, err
	}

	s.activitySvc.Record(currentUser, groupCode, model.ActivityNewGroup,
		map[string]interface{}{"group_name": group.GroupName})

	return s.toResponse(group)
}

func (s *userGroupService) GetByCode(groupCode string) (*dto.UserGroupResponse, error) {
	group, err := s.repo.FindByCode(groupCode)
	if err != nil {
		return nil, err
	}
	return s.toResponse(group)
}

// Update 更新用户组，仅组长可操作。members为更新后的完整成员集合，
// 组长（含移交后的新组长）必须仍在其中。
func (s *userGroupService) Update(currentUser string, req *dto.UpdateUserGroupRequest) (*dto.UserGroupResponse, error) {
	group, err := s.repo.FindByCode(req.GroupCode)
	if err != nil {
		return nil, err
	}
	if group.GroupOwner != currentUser {
		return nil, pkgErrors.ErrPermissionDenied
	}
	if !lo.Contains(req.Members, req.Owner) {
		return nil, pkgErrors.ErrOwnerNotInMembers
	}

	existing, err := s.memberRepo.ListCodesByGroup(req.GroupCode)
	if err != nil {
		return nil, err
	}

	group.GroupName = req.GroupName
	group.GroupOwner = req.Owner
	if err := s.repo.UpdateByCode(group); err != nil {
		return nil, err
	}
	if err := s.memberRepo.ReplaceAll(req.GroupCode, req.Members); err != nil {
		return nil, err
	}

	s.activitySvc.Record(currentUser, req.GroupCode, model.ActivityChangeGroup,
		map[string]interface{}{"group_name": group.GroupName})
	_, added := lo.Difference(existing, lo.Uniq(req.Members))
	for _, userCode := range added {
		s.activitySvc.Record(userCode, req.GroupCode, model.ActivityAddGroup, nil)
	}

	return s.toResponse(group)
}

// Delete 解散用户组，仅组长可操作，成员关系一并清理
func (s *userGroupService) Delete(currentUser, groupCode string) error {
	group, err := s.repo.FindByCode(groupCode)
	if err != nil {
		return err
	}
	if group.GroupOwner != currentUser {
		return pkgErrors.ErrPermissionDenied
	}

	if err := s.repo.DeleteByCode(groupCode); err != nil {
		return err
	}
	if err := s.memberRepo.RemoveByGroup(groupCode); err != nil {
		return err
	}

	s.activitySvc.Record(currentUser, groupCode, model.ActivityDeleteGroup,
		map[string]interface{}{"group_name": group.GroupName})
	return nil
}

func (s *userGroupService) Query(req *dto.QueryUserGroupRequest) ([]*dto.UserGroupResponse, int64, error) {
	cond := &repository.UserGroupCondition{
		GroupCode: req.GroupCode,
		GroupName: req.GroupName,
		Owner:     req.Owner,
		Members:   req.Members,
	}

	groups, err := s.repo.ListByCondition(cond, req.GetPage(), req.GetPageSize())
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByCondition(cond)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.UserGroupResponse, len(groups))
	for i, group := range groups {
		resp, err := s.toResponse(group)
		if err != nil {
			return nil, 0, err
		}
		responses[i] = resp
	}
	return responses, total, nil
}

// toResponse 转换为响应对象，组长与成员补全为用户信息
func (s *userGroupService) toResponse(group *model.UserGroup) (*dto.UserGroupResponse, error) {
	owner, err := s.userRepo.FindByCode(group.GroupOwner)
	if err != nil {
		return nil, err
	}

	memberCodes, err := s.memberRepo.ListCodesByGroup(group.GroupCode)
	if err != nil {
		return nil, err
	}
	members := make([]*dto.UserResponse, 0, len(memberCodes))
	for _, userCode := range memberCodes {
		member, err := s.userRepo.FindByCode(userCode)
		if err != nil {
			return nil, err
		}
		members = append(members, toUserResponse(member))
	}

	return &dto.UserGroupResponse{
		GroupCode: group.GroupCode,
		GroupName: group.GroupName,
		Owner:     toUserResponse(owner),
		Members:   members,
		CreatedAt: group.CreatedAt.Format(time.RFC3339),
	}, nil
}
