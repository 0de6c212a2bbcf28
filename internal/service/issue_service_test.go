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

func TestIssueCreateAutoFollowAndProjectNumbering(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")
	projectCode := env.mustCreateProject(t, owner, "数据平台", model.PrivilegePublic)

	first, err := env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       "登录超时",
		Description: lo.ToPtr("网关偶发504"),
		Tags:        []string{"bug", "bug"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.IssueID)
	assert.Equal(t, model.IssueStatusOpen, first.Status)
	assert.Contains(t, first.Followers, owner) // 提出人自动关注
	assert.Equal(t, []string{"bug"}, first.Tags)
	require.NotNil(t, first.Description)
	assert.Equal(t, "网关偶发504", *first.Description)

	second, err := env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       "导出乱码",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.IssueID)

	// 另一个项目的编号独立起算
	otherProject := env.mustCreateProject(t, owner, "另一个项目", model.PrivilegePublic)
	other, err := env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: otherProject,
		Title:       "首个议题",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, other.IssueID)
}

func TestIssueCreateRequiresProject(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")

	_, err := env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: "PJ999",
		Title:       "挂在空项目上",
	})
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestIssueFollowAndUnfollow(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")
	watcher := env.mustSignUp(t, "围观者", "watcher@example.com")
	projectCode := env.mustCreateProject(t, owner, "数据平台", model.PrivilegePublic)

	issue, err := env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       "登录超时",
	})
	require.NoError(t, err)

	require.NoError(t, env.issueSvc.Follow(watcher, &dto.FollowIssueRequest{IssueCode: issue.IssueCode, Follow: true}))
	// 重复关注为幂等空操作
	require.NoError(t, env.issueSvc.Follow(watcher, &dto.FollowIssueRequest{IssueCode: issue.IssueCode, Follow: true}))

	detail, err := env.issueSvc.GetByCode(issue.IssueCode)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{owner, watcher}, detail.Followers)

	require.NoError(t, env.issueSvc.Follow(watcher, &dto.FollowIssueRequest{IssueCode: issue.IssueCode, Follow: false}))
	detail, err = env.issueSvc.GetByCode(issue.IssueCode)
	require.NoError(t, err)
	assert.Equal(t, []string{owner}, detail.Followers)

	// 幂等路径不留痕：围观者只有关注/取关两条动态
	activities, err := env.activitySvc.ListBySubject(watcher, 0)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, model.ActivityUnfollowIssue, activities[0].Category)
	assert.Equal(t, model.ActivityFollowIssue, activities[1].Category)
}

func TestIssueUpdateOnlyOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")
	other := env.mustSignUp(t, "路人", "other@example.com")
	projectCode := env.mustCreateProject(t, owner, "数据平台", model.PrivilegePublic)

	issue, err := env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       "登录超时",
	})
	require.NoError(t, err)

	_, err = env.issueSvc.Update(other, &dto.UpdateIssueRequest{
		IssueCode: issue.IssueCode,
		Title:     "被改掉的标题",
		Status:    model.IssueStatusClosed,
	})
	assert.ErrorIs(t, err, pkgErrors.ErrPermissionDenied)

	updated, err := env.issueSvc.Update(owner, &dto.UpdateIssueRequest{
		IssueCode:   issue.IssueCode,
		Title:       "登录超时（已定位）",
		Description: lo.ToPtr("网关keepalive配置问题"),
		Status:      model.IssueStatusFinished,
		Tags:        []string{"bug", "auth"},
		Followers:   []string{owner},
	})
	require.NoError(t, err)
	assert.Equal(t, model.IssueStatusFinished, updated.Status)
	assert.ElementsMatch(t, []string{"bug", "auth"}, updated.Tags)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "网关keepalive配置问题", *updated.Description)
}

func TestIssueDeleteCascadesComments(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")
	projectCode := env.mustCreateProject(t, owner, "数据平台", model.PrivilegePublic)

	issue, err := env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       "登录超时",
	})
	require.NoError(t, err)
	_, err = env.commentSvc.Create(owner, &dto.CreateCommentRequest{
		IssueCode: issue.IssueCode,
		Content:   "复现步骤见附件",
	})
	require.NoError(t, err)

	require.NoError(t, env.issueSvc.Delete(owner, issue.IssueCode))

	_, err = env.issueSvc.GetByCode(issue.IssueCode)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)

	comments, err := env.commentSvc.ListByIssue(issue.IssueCode)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestIssueDeleteByProjectOwner(t *testing.T) {
	env := newTestEnv(t)
	projectOwner := env.mustSignUp(t, "负责人", "owner@example.com")
	reporter := env.mustSignUp(t, "提出人", "reporter@example.com")
	stranger := env.mustSignUp(t, "路人", "stranger@example.com")
	projectCode := env.mustCreateProject(t, projectOwner, "数据平台", model.PrivilegePublic)

	issue, err := env.issueSvc.Create(reporter, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       "别人提的议题",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, env.issueSvc.Delete(stranger, issue.IssueCode), pkgErrors.ErrPermissionDenied)
	require.NoError(t, env.issueSvc.Delete(projectOwner, issue.IssueCode))
}

func TestIssueQueryByTagAndFollower(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")
	projectCode := env.mustCreateProject(t, owner, "数据平台", model.PrivilegePublic)

	tagged, err := env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       "登录超时",
		Tags:        []string{"bug", "auth"},
	})
	require.NoError(t, err)
	_, err = env.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       "导出乱码",
		Tags:        []string{"bug"},
	})
	require.NoError(t, err)

	// 多标签查询需全部命中
	issues, total, err := env.issueSvc.Query(&dto.QueryIssueRequest{Tags: []string{"bug", "auth"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, issues, 1)
	assert.Equal(t, tagged.IssueCode, issues[0].IssueCode)

	issues, _, err = env.issueSvc.Query(&dto.QueryIssueRequest{Follower: owner})
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}
