package service

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"issuer/internal/dto"
	"issuer/internal/pkg/config"
	"issuer/internal/pkg/database"
	"issuer/internal/pkg/logger"
	"issuer/internal/repository"
)

var loggerOnce sync.Once

type testEnv struct {
	db *gorm.DB

	userRepo          repository.UserRepository
	groupMemberRepo   repository.GroupMemberRepository
	projectMemberRepo repository.ProjectMemberRepository
	activityRepo      repository.ActivityRepository

	authSvc     AuthService
	userSvc     UserService
	groupSvc    UserGroupService
	projectSvc  ProjectService
	issueSvc    IssueService
	commentSvc  CommentService
	noticeSvc   NoticeService
	activitySvc ActivityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	loggerOnce.Do(func() {
		_ = logger.Init(&config.LogConfig{Level: "error", Format: "console", Output: "stdout"})
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	seqRepo := repository.NewSequenceRepository(db)
	userRepo := repository.NewUserRepository(db, seqRepo)
	groupRepo := repository.NewUserGroupRepository(db, seqRepo)
	groupMemberRepo := repository.NewGroupMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db, seqRepo)
	projectMemberRepo := repository.NewProjectMemberRepository(db)
	issueRepo := repository.NewIssueRepository(db, seqRepo)
	commentRepo := repository.NewIssueCommentRepository(db, seqRepo)
	noticeRepo := repository.NewNoticeRepository(db, seqRepo)
	activityRepo := repository.NewActivityRepository(db)

	activitySvc := NewActivityService(activityRepo)
	authCfg := &config.AuthConfig{TokenExpire: 3600}

	return &testEnv{
		db:                db,
		userRepo:          userRepo,
		groupMemberRepo:   groupMemberRepo,
		projectMemberRepo: projectMemberRepo,
		activityRepo:      activityRepo,
		authSvc:           NewAuthService(authCfg, userRepo, groupMemberRepo, projectMemberRepo),
		userSvc:           NewUserService(userRepo),
		groupSvc:          NewUserGroupService(groupRepo, groupMemberRepo, userRepo, activitySvc),
		projectSvc:        NewProjectService(projectRepo, projectMemberRepo, issueRepo, userRepo, activitySvc),
		issueSvc:          NewIssueService(issueRepo, projectRepo, commentRepo, activitySvc),
		commentSvc:        NewCommentService(commentRepo, issueRepo, activitySvc),
		noticeSvc:         NewNoticeService(noticeRepo, userRepo),
		activitySvc:       activitySvc,
	}
}

// mustSignUp 注册一个普通用户，返回用户码
func (e *testEnv) mustSignUp(t *testing.T, name, email string) string {
	t.Helper()
	user, err := e.authSvc.SignUp(&dto.SignUpRequest{
		UserName: name,
		Email:    email,
		Passwd:   "secret123",
	})
	require.NoError(t, err)
	return user.UserCode
}

// mustCreateProject 建一个公开项目，返回项目码
func (e *testEnv) mustCreateProject(t *testing.T, owner, name, privilege string) string {
	t.Helper()
	project, err := e.projectSvc.Create(owner, &dto.CreateProjectRequest{
		ProjectName: name,
		StartDate:   "2026-01-01",
		Privilege:   privilege,
	})
	require.NoError(t, err)
	return project.ProjectCode
}
