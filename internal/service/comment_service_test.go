package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuer/internal/dto"
	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

func (e *testEnv) mustCreateIssue(t *testing.T, owner, projectCode, title string) string {
	t.Helper()
	issue, err := e.issueSvc.Create(owner, &dto.CreateIssueRequest{
		ProjectCode: projectCode,
		Title:       title,
	})
	require.NoError(t, err)
	return issue.IssueCode
}

func TestCommentCreateAndListInOrder(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")
	projectCode := env.mustCreateProject(t, owner, "数据平台", model.PrivilegePublic)
	issueCode := env.mustCreateIssue(t, owner, projectCode, "登录超时")

	_, err := env.commentSvc.Create(owner, &dto.CreateCommentRequest{
		IssueCode:  issueCode,
		Content:    "先贴日志",
		Appendices: []string{"log1.txt", "log2.txt"},
	})
	require.NoError(t, err)
	_, err = env.commentSvc.Create(owner, &dto.CreateCommentRequest{
		IssueCode: issueCode,
		Content:   "已定位到网关",
	})
	require.NoError(t, err)

	comments, err := env.commentSvc.ListByIssue(issueCode)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "先贴日志", comments[0].Content)
	assert.Equal(t, []string{"log1.txt", "log2.txt"}, comments[0].Appendices)
	assert.False(t, comments[0].Fold)
}

func TestCommentCreateRequiresIssue(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")

	_, err := env.commentSvc.Create(owner, &dto.CreateCommentRequest{
		IssueCode: "IS999",
		Content:   "评到空处",
	})
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestCommentFoldPermissions(t *testing.T) {
	env := newTestEnv(t)
	issueOwner := env.mustSignUp(t, "提出人", "owner@example.com")
	commenter := env.mustSignUp(t, "评论者", "commenter@example.com")
	stranger := env.mustSignUp(t, "路人", "stranger@example.com")
	projectCode := env.mustCreateProject(t, issueOwner, "数据平台", model.PrivilegePublic)
	issueCode := env.mustCreateIssue(t, issueOwner, projectCode, "登录超时")

	comment, err := env.commentSvc.Create(commenter, &dto.CreateCommentRequest{
		IssueCode: issueCode,
		Content:   "跑题了",
	})
	require.NoError(t, err)

	// 路人折不动，议题提出人可以折
	err = env.commentSvc.Fold(stranger, &dto.FoldCommentRequest{CommentCode: comment.CommentCode, Fold: true})
	assert.ErrorIs(t, err, pkgErrors.ErrPermissionDenied)

	require.NoError(t, env.commentSvc.Fold(issueOwner, &dto.FoldCommentRequest{CommentCode: comment.CommentCode, Fold: true}))

	comments, err := env.commentSvc.ListByIssue(issueCode)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.True(t, comments[0].Fold)
	assert.Equal(t, "跑题了", comments[0].Content) // 折叠不动正文

	// 评论者自己可以展开
	require.NoError(t, env.commentSvc.Fold(commenter, &dto.FoldCommentRequest{CommentCode: comment.CommentCode, Fold: false}))
	comments, err = env.commentSvc.ListByIssue(issueCode)
	require.NoError(t, err)
	assert.False(t, comments[0].Fold)
}

func TestCommentListByCommenter(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustSignUp(t, "提出人", "owner@example.com")
	commenter := env.mustSignUp(t, "评论者", "commenter@example.com")
	projectCode := env.mustCreateProject(t, owner, "数据平台", model.PrivilegePublic)
	issueCode := env.mustCreateIssue(t, owner, projectCode, "登录超时")

	_, err := env.commentSvc.Create(commenter, &dto.CreateCommentRequest{IssueCode: issueCode, Content: "一条"})
	require.NoError(t, err)
	_, err = env.commentSvc.Create(owner, &dto.CreateCommentRequest{IssueCode: issueCode, Content: "另一条"})
	require.NoError(t, err)

	comments, err := env.commentSvc.ListByCommenter(commenter)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "一条", comments[0].Content)
}
