package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuer/internal/dto"
	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

func TestSignUpDefaultRoleAndHashedPasswd(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.authSvc.SignUp(&dto.SignUpRequest{
		UserName: "张三",
		Email:    "zhangsan@example.com",
		Passwd:   "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleNormal, user.Role)

	stored, err := env.userRepo.FindByEmail("zhangsan@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Passwd) // 明文口令不落库
}

func TestSignUpDuplicateEmailRejected(t *testing.T) {
	env := newTestEnv(t)

	env.mustSignUp(t, "a", "dup@example.com")
	_, err := env.authSvc.SignUp(&dto.SignUpRequest{
		UserName: "b",
		Email:    "dup@example.com",
		Passwd:   "secret123",
	})
	assert.ErrorIs(t, err, pkgErrors.ErrEmailExists)
}

func TestSignInDistinguishesFailures(t *testing.T) {
	env := newTestEnv(t)
	env.mustSignUp(t, "张三", "zhangsan@example.com")

	// 邮箱未注册
	_, err := env.authSvc.SignIn(&dto.SignInRequest{Email: "nobody@example.com", Passwd: "secret123"})
	assert.ErrorIs(t, err, pkgErrors.ErrUserNotFound)

	// 密码错误
	_, err = env.authSvc.SignIn(&dto.SignInRequest{Email: "zhangsan@example.com", Passwd: "wrong-pass"})
	assert.ErrorIs(t, err, pkgErrors.ErrWrongPasswd)
}

func TestSignInThenValidate(t *testing.T) {
	env := newTestEnv(t)
	userCode := env.mustSignUp(t, "张三", "zhangsan@example.com")

	result, err := env.authSvc.SignIn(&dto.SignInRequest{Email: "zhangsan@example.com", Passwd: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, 3600, result.ExpiresIn)

	user, err := env.authSvc.Validate(fmt.Sprintf("%s:%s", userCode, result.Token))
	require.NoError(t, err)
	assert.Equal(t, userCode, user.UserCode)

	// token不匹配
	_, err = env.authSvc.Validate(fmt.Sprintf("%s:bogus", userCode))
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)

	// Cookie格式不对
	_, err = env.authSvc.Validate("garbage")
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}

func TestReSignInInvalidatesOldToken(t *testing.T) {
	env := newTestEnv(t)
	userCode := env.mustSignUp(t, "张三", "zhangsan@example.com")

	first, err := env.authSvc.SignIn(&dto.SignInRequest{Email: "zhangsan@example.com", Passwd: "secret123"})
	require.NoError(t, err)
	second, err := env.authSvc.SignIn(&dto.SignInRequest{Email: "zhangsan@example.com", Passwd: "secret123"})
	require.NoError(t, err)

	// 单会话：重新登录后旧token作废
	_, err = env.authSvc.Validate(fmt.Sprintf("%s:%s", userCode, first.Token))
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
	_, err = env.authSvc.Validate(fmt.Sprintf("%s:%s", userCode, second.Token))
	assert.NoError(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	userCode := env.mustSignUp(t, "张三", "zhangsan@example.com")

	result, err := env.authSvc.SignIn(&dto.SignInRequest{Email: "zhangsan@example.com", Passwd: "secret123"})
	require.NoError(t, err)

	// 人为把有效期拨到过去
	user, err := env.userRepo.FindByCode(userCode)
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	user.TokenExpiredAt = &expired
	require.NoError(t, env.userRepo.UpdateByCode(user))

	_, err = env.authSvc.Validate(fmt.Sprintf("%s:%s", userCode, result.Token))
	assert.ErrorIs(t, err, pkgErrors.ErrTokenExpired)
}

func TestSignOutClearsToken(t *testing.T) {
	env := newTestEnv(t)
	userCode := env.mustSignUp(t, "张三", "zhangsan@example.com")

	result, err := env.authSvc.SignIn(&dto.SignInRequest{Email: "zhangsan@example.com", Passwd: "secret123"})
	require.NoError(t, err)

	require.NoError(t, env.authSvc.SignOut(userCode))

	_, err = env.authSvc.Validate(fmt.Sprintf("%s:%s", userCode, result.Token))
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}

func TestCancelRemovesUserAndMemberships(t *testing.T) {
	env := newTestEnv(t)
	userCode := env.mustSignUp(t, "张三", "zhangsan@example.com")

	require.NoError(t, env.groupMemberRepo.Add(userCode, "UG1"))
	require.NoError(t, env.projectMemberRepo.Add("PJ1", userCode))

	require.NoError(t, env.authSvc.Cancel(userCode))

	_, err := env.userRepo.FindByCode(userCode)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)

	groups, err := env.groupMemberRepo.CountByUser(userCode)
	require.NoError(t, err)
	assert.Zero(t, groups)

	projects, err := env.projectMemberRepo.CountByUser(userCode)
	require.NoError(t, err)
	assert.Zero(t, projects)
}
