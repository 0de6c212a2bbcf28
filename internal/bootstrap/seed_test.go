package bootstrap

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"issuer/internal/model"
	"issuer/internal/pkg/database"
	"issuer/internal/repository"
)

func newMetasRepo(t *testing.T) repository.MetasRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return repository.NewMetasRepository(db)
}

func TestSeedMetasPopulatesDictionaries(t *testing.T) {
	repo := newMetasRepo(t)

	require.NoError(t, SeedMetas(repo))

	roles, err := repo.ListByType(model.MetaTypeUserRole)
	require.NoError(t, err)
	values := lo.Map(roles, func(meta *model.Metas, _ int) string { return meta.MetaValue })
	assert.ElementsMatch(t, []string{model.RoleAdmin, model.RoleNormal, model.RoleSuspend}, values)

	statuses, err := repo.ListByType(model.MetaTypeIssueStatus)
	require.NoError(t, err)
	assert.Len(t, statuses, 3)
}

func TestSeedMetasIdempotent(t *testing.T) {
	repo := newMetasRepo(t)

	require.NoError(t, SeedMetas(repo))
	first, err := repo.ListByType(model.MetaTypeUserRole)
	require.NoError(t, err)

	// 重复执行不产生重复行
	require.NoError(t, SeedMetas(repo))
	second, err := repo.ListByType(model.MetaTypeUserRole)
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
}
