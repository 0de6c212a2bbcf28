package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"issuer/internal/dto"
	"issuer/internal/model"
	"issuer/internal/pkg/config"
	"issuer/internal/pkg/crypto"
	"issuer/internal/repository"
	pkgErrors "issuer/pkg/errors"
)

// 未配置auth.token_expire时的会话有效期，秒
const defaultTokenExpire = 3600

type AuthService interface {
	SignUp(req *dto.SignUpRequest) (*dto.UserResponse, error)
	SignIn(req *dto.SignInRequest) (*dto.SignInResponse, error)
	SignOut(userCode string) error
	Cancel(userCode string) error
	Validate(cookie string) (*model.User, error)
}

type authService struct {
	cfg               *config.AuthConfig
	userRepo          repository.UserRepository
	groupMemberRepo   repository.GroupMemberRepository
	projectMemberRepo repository.ProjectMemberRepository
}

func NewAuthService(
	cfg *config.AuthConfig,
	userRepo repository.UserRepository,
	groupMemberRepo repository.GroupMemberRepository,
	projectMemberRepo repository.ProjectMemberRepository,
) AuthService {
	return &authService{
		cfg:               cfg,
		userRepo:          userRepo,
		groupMemberRepo:   groupMemberRepo,
		projectMemberRepo: projectMemberRepo,
	}
}

// SignUp 用户注册，未指定角色时默认Normal
func (s *authService) SignUp(req *dto.SignUpRequest) (*dto.UserResponse, error) {
	role := model.RoleNormal
	if req.Role != nil {
		role = *req.Role
	}

	hashed, err := crypto.HashPassword(req.Passwd)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "密码加密失败", err)
	}

	user := &model.User{
		UserName:    req.UserName,
		Passwd:      hashed,
		Role:        role,
		Email:       req.Email,
		Description: req.Description,
		Phone:       req.Phone,
	}
	if _, err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// SignIn 用户登录。邮箱未注册与密码错误是两类不同的失败，
// 前端按reason分别提示。登录成功签发新token，旧会话随之失效。
func (s *authService) SignIn(req *dto.SignInRequest) (*dto.SignInResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrUserNotFound
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Passwd, user.Passwd) {
		return nil, pkgErrors.ErrWrongPasswd
	}

	expire := s.cfg.TokenExpire
	if expire <= 0 {
		expire = defaultTokenExpire
	}

	token := uuid.NewString()
	expiredAt := time.Now().Add(time.Duration(expire) * time.Second)
	user.Token = &token
	user.TokenExpiredAt = &expiredAt

	if err := s.userRepo.UpdateByCode(user); err != nil {
		return nil, err
	}

	return &dto.SignInResponse{
		Token:     token,
		ExpiresIn: expire,
		User:      toUserResponse(user),
	}, nil
}

// SignOut 用户登出，清空token
func (s *authService) SignOut(userCode string) error {
	user, err := s.userRepo.FindByCode(userCode)
	if err != nil {
		return err
	}
	user.Token = nil
	user.TokenExpiredAt = nil
	return s.userRepo.UpdateByCode(user)
}

// Cancel 用户注销，删除用户行并清理其组与项目的参与关系
func (s *authService) Cancel(userCode string) error {
	if err := s.userRepo.DeleteByCode(userCode); err != nil {
		return err
	}
	if err := s.groupMemberRepo.RemoveByUser(userCode); err != nil {
		return err
	}
	return s.projectMemberRepo.RemoveByUser(userCode)
}

// Validate 校验会话Cookie，格式为 user_code:token。
// token比对不上按无效处理，比对上但超过有效期按过期处理。
func (s *authService) Validate(cookie string) (*model.User, error) {
	parts := strings.SplitN(cookie, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, pkgErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByCode(parts[0])
	if err != nil {
		if errors.Is(err, pkgErrors.ErrRecordNotFound) {
			return nil, pkgErrors.ErrInvalidToken
		}
		return nil, err
	}

	if user.Token == nil || *user.Token != parts[1] {
		return nil, pkgErrors.ErrInvalidToken
	}
	if user.TokenExpiredAt == nil || user.TokenExpiredAt.Before(time.Now()) {
		return nil, pkgErrors.ErrTokenExpired
	}
	return user, nil
}
