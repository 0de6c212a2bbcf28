package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

func newNoticeRepo(t *testing.T) NoticeRepository {
	db := newTestDB(t)
	return NewNoticeRepository(db, NewSequenceRepository(db))
}

func TestNoticeListNewestFirst(t *testing.T) {
	repo := newNoticeRepo(t)

	_, err := repo.Create(&model.Notice{Content: "第一条"})
	require.NoError(t, err)
	latest, err := repo.Create(&model.Notice{Content: "第二条"})
	require.NoError(t, err)

	notices, err := repo.List(0)
	require.NoError(t, err)
	require.Len(t, notices, 2)
	assert.Equal(t, latest, notices[0].NoticeCode)

	limited, err := repo.List(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "第二条", limited[0].Content)
}

func TestNoticeDelete(t *testing.T) {
	repo := newNoticeRepo(t)

	code, err := repo.Create(&model.Notice{Content: "要撤的"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByCode(code))
	assert.ErrorIs(t, repo.DeleteByCode(code), pkgErrors.ErrRecordNotFound)
}

func TestMetasInsertAndListByType(t *testing.T) {
	repo := NewMetasRepository(newTestDB(t))

	note := "管理员"
	require.NoError(t, repo.Insert(&model.Metas{MetaType: model.MetaTypeUserRole, MetaValue: model.RoleAdmin, Note: &note}))
	require.NoError(t, repo.Insert(&model.Metas{MetaType: model.MetaTypeUserRole, MetaValue: model.RoleNormal}))
	require.NoError(t, repo.Insert(&model.Metas{MetaType: model.MetaTypeIssueStatus, MetaValue: model.IssueStatusOpen}))

	metas, err := repo.ListByType(model.MetaTypeUserRole)
	require.NoError(t, err)
	assert.Len(t, metas, 2)

	require.NoError(t, repo.Delete(model.MetaTypeUserRole, model.RoleNormal))
	metas, err = repo.ListByType(model.MetaTypeUserRole)
	require.NoError(t, err)
	assert.Len(t, metas, 1)

	assert.ErrorIs(t, repo.Delete(model.MetaTypeUserRole, model.RoleNormal), pkgErrors.ErrRecordNotFound)
}
