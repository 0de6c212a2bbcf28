package repository

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

type groupEnv struct {
	repo       UserGroupRepository
	memberRepo GroupMemberRepository
}

func newGroupEnv(t *testing.T) *groupEnv {
	db := newTestDB(t)
	return &groupEnv{
		repo:       NewUserGroupRepository(db, NewSequenceRepository(db)),
		memberRepo: NewGroupMemberRepository(db),
	}
}

func (e *groupEnv) mustCreate(t *testing.T, name, owner string, members ...string) string {
	t.Helper()
	code, err := e.repo.Create(&model.UserGroup{GroupName: name, GroupOwner: owner})
	require.NoError(t, err)
	require.NoError(t, e.memberRepo.Add(owner, code))
	for _, userCode := range members {
		require.NoError(t, e.memberRepo.Add(userCode, code))
	}
	return code
}

func TestUserGroupCreateAndFindRoundtrip(t *testing.T) {
	env := newGroupEnv(t)

	code := env.mustCreate(t, "后端组", "US1")

	found, err := env.repo.FindByCode(code)
	require.NoError(t, err)
	assert.Equal(t, "后端组", found.GroupName)
	assert.Equal(t, "US1", found.GroupOwner)
}

func TestUserGroupUpdateByCode(t *testing.T) {
	env := newGroupEnv(t)

	code := env.mustCreate(t, "旧名", "US1")

	require.NoError(t, env.repo.UpdateByCode(&model.UserGroup{
		GroupCode:  code,
		GroupName:  "新名",
		GroupOwner: "US2",
	}))

	found, err := env.repo.FindByCode(code)
	require.NoError(t, err)
	assert.Equal(t, "新名", found.GroupName)
	assert.Equal(t, "US2", found.GroupOwner)
}

func TestUserGroupQueryByCondition(t *testing.T) {
	env := newGroupEnv(t)

	backend := env.mustCreate(t, "后端组", "US1", "US2")
	frontend := env.mustCreate(t, "前端组", "US2", "US3")

	// 按成员查询，命中任一成员即返回，不重复
	groups, err := env.repo.ListByCondition(&UserGroupCondition{Members: []string{"US2"}}, 1, 10)
	require.NoError(t, err)
	codes := lo.Map(groups, func(g *model.UserGroup, _ int) string { return g.GroupCode })
	assert.ElementsMatch(t, []string{backend, frontend}, codes)

	// 名称模糊匹配
	groups, err = env.repo.ListByCondition(&UserGroupCondition{GroupName: "前端"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, frontend, groups[0].GroupCode)

	total, err := env.repo.CountByCondition(&UserGroupCondition{Owner: "US2"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestUserGroupFindByOwner(t *testing.T) {
	env := newGroupEnv(t)

	first := env.mustCreate(t, "后端组", "US1")
	second := env.mustCreate(t, "平台组", "US1")
	env.mustCreate(t, "前端组", "US2")

	groups, err := env.repo.FindByOwner("US1")
	require.NoError(t, err)
	codes := lo.Map(groups, func(g *model.UserGroup, _ int) string { return g.GroupCode })
	assert.ElementsMatch(t, []string{first, second}, codes)
}

func TestUserGroupDeleteThenFindAbsent(t *testing.T) {
	env := newGroupEnv(t)

	code := env.mustCreate(t, "临时组", "US1")
	require.NoError(t, env.repo.DeleteByCode(code))

	_, err := env.repo.FindByCode(code)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}
