package service

import (
	"time"

	"issuer/internal/dto"
	"issuer/internal/model"
	"issuer/internal/pkg/crypto"
	"issuer/internal/repository"
	pkgErrors "issuer/pkg/errors"
)

type UserService interface {
	GetByCode(userCode string) (*dto.UserResponse, error)
	Update(currentUser string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	List(page, pageSize int) ([]*dto.UserResponse, int64, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByCode(userCode string) (*dto.UserResponse, error) {
	user, err := s.repo.FindByCode(userCode)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update 更新用户资料，仅本人或管理员可操作，未提供的字段不变更
func (s *userService) Update(currentUser string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if currentUser != req.UserCode {
		operator, err := s.repo.FindByCode(currentUser)
		if err != nil {
			return nil, err
		}
		if operator.Role != model.RoleAdmin {
			return nil, pkgErrors.ErrPermissionDenied
		}
	}

	user, err := s.repo.FindByCode(req.UserCode)
	if err != nil {
		return nil, err
	}

	if req.UserName != nil {
		user.UserName = *req.UserName
	}
	if req.Passwd != nil {
		hashed, err := crypto.HashPassword(*req.Passwd)
		if err != nil {
			return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
		}
		user.Passwd = hashed
	}
	if req.Description != nil {
		user.Description = req.Description
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = req.Avatar
	}

	if err := s.repo.UpdateByCode(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) List(page, pageSize int) ([]*dto.UserResponse, int64, error) {
	users, err := s.repo.List(page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count()
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = toUserResponse(user)
	}
	return responses, total, nil
}

// toUserResponse 转换为响应对象，口令与token不出服务层
func toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserCode:    user.UserCode,
		UserName:    user.UserName,
		Email:       user.Email,
		Role:        user.Role,
		Description: user.Description,
		Phone:       user.Phone,
		Avatar:      user.Avatar,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
