package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuer/internal/model"
)

func TestActivityRecordAndListBySubject(t *testing.T) {
	env := newTestEnv(t)

	env.activitySvc.Record("US1", "PJ1", model.ActivityNewProject,
		map[string]interface{}{"project_name": "数据平台"})
	env.activitySvc.Record("US1", "IS1", model.ActivityNewIssue, nil)

	activities, err := env.activitySvc.ListBySubject("US1", 0)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	// 新动态在前
	assert.Equal(t, model.ActivityNewIssue, activities[0].Category)
	assert.Equal(t, "数据平台", activities[1].ExtInfo["project_name"])
}

func TestActivityListByTargets(t *testing.T) {
	env := newTestEnv(t)

	env.activitySvc.Record("US1", "IS1", model.ActivityNewComment, nil)
	env.activitySvc.Record("US2", "IS2", model.ActivityNewComment, nil)
	env.activitySvc.Record("US3", "PJ1", model.ActivityNewProject, nil)

	activities, err := env.activitySvc.ListByTargets([]string{"IS1", "IS2"}, 0)
	require.NoError(t, err)
	assert.Len(t, activities, 2)

	empty, err := env.activitySvc.ListByTargets(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestActivityPruneKeepsRecent(t *testing.T) {
	env := newTestEnv(t)

	env.activitySvc.Record("US1", "IS1", model.ActivityNewIssue, nil)
	env.activitySvc.Record("US1", "IS2", model.ActivityNewIssue, nil)

	// 人为做旧一条，超过默认保留期
	require.NoError(t, env.db.Model(&model.Activity{}).
		Where("target = ?", "IS1").
		UpdateColumn("created_at", time.Now().AddDate(0, 0, -120)).Error)

	pruned, err := env.activitySvc.Prune(0) // 0走默认保留期
	require.NoError(t, err)
	assert.EqualValues(t, 1, pruned)

	remaining, err := env.activitySvc.ListBySubject("US1", 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "IS2", remaining[0].Target)
}
