package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuer/internal/dto"
	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

func (e *testEnv) mustSignUpAdmin(t *testing.T, name, email string) string {
	t.Helper()
	user, err := e.authSvc.SignUp(&dto.SignUpRequest{
		UserName: name,
		Email:    email,
		Passwd:   "secret123",
		Role:     lo.ToPtr(model.RoleAdmin),
	})
	require.NoError(t, err)
	return user.UserCode
}

func TestNoticeCreateAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	admin := env.mustSignUpAdmin(t, "管理员", "admin@example.com")
	normal := env.mustSignUp(t, "普通人", "normal@example.com")

	_, err := env.noticeSvc.Create(normal, &dto.CreateNoticeRequest{Content: "越权公告"})
	assert.ErrorIs(t, err, pkgErrors.ErrPermissionDenied)

	notice, err := env.noticeSvc.Create(admin, &dto.CreateNoticeRequest{Content: "周五停机维护"})
	require.NoError(t, err)
	assert.NotEmpty(t, notice.NoticeCode)
	assert.Equal(t, "周五停机维护", notice.Content)
}

func TestNoticeListNewestFirstWithLimit(t *testing.T) {
	env := newTestEnv(t)
	admin := env.mustSignUpAdmin(t, "管理员", "admin@example.com")

	_, err := env.noticeSvc.Create(admin, &dto.CreateNoticeRequest{Content: "第一条"})
	require.NoError(t, err)
	_, err = env.noticeSvc.Create(admin, &dto.CreateNoticeRequest{Content: "第二条"})
	require.NoError(t, err)

	notices, err := env.noticeSvc.List(0)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, "第二条", notices[0].Content)

	limited, err := env.noticeSvc.List(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestNoticeDeleteAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	admin := env.mustSignUpAdmin(t, "管理员", "admin@example.com")
	normal := env.mustSignUp(t, "普通人", "normal@example.com")

	notice, err := env.noticeSvc.Create(admin, &dto.CreateNoticeRequest{Content: "待撤公告"})
	require.NoError(t, err)

	assert.ErrorIs(t, env.noticeSvc.Delete(normal, notice.NoticeCode), pkgErrors.ErrPermissionDenied)
	require.NoError(t, env.noticeSvc.Delete(admin, notice.NoticeCode))

	notices, err := env.noticeSvc.List(0)
	require.NoError(t, err)
	assert.Empty(t, notices)
}
