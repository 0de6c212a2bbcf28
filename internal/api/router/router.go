package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"issuer/internal/api/handler"
	"issuer/internal/api/middleware"
	"issuer/internal/pkg/config"
	"issuer/internal/repository"
	"issuer/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 初始化Repository
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
	metasRepo := repository.NewMetasRepository(db)

	// 初始化Service
	activityService := service.NewActivityService(activityRepo)
	authService := service.NewAuthService(&cfg.Auth, userRepo, groupMemberRepo, projectMemberRepo)
	userService := service.NewUserService(userRepo)
	groupService := service.NewUserGroupService(groupRepo, groupMemberRepo, userRepo, activityService)
	projectService := service.NewProjectService(projectRepo, projectMemberRepo, issueRepo, userRepo, activityService)
	issueService := service.NewIssueService(issueRepo, projectRepo, commentRepo, activityService)
	commentService := service.NewCommentService(commentRepo, issueRepo, activityService)
	noticeService := service.NewNoticeService(noticeRepo, userRepo)
	metasService := service.NewMetasService(metasRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	groupHandler := handler.NewUserGroupHandler(groupService)
	projectHandler := handler.NewProjectHandler(projectService)
	issueHandler := handler.NewIssueHandler(issueService)
	commentHandler := handler.NewCommentHandler(commentService)
	noticeHandler := handler.NewNoticeHandler(noticeService)
	activityHandler := handler.NewActivityHandler(activityService)
	metasHandler := handler.NewMetasHandler(metasService)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 注册登录(无需会话)
		v1.POST("/users/sign_up", authHandler.SignUp)
		v1.POST("/users/sign_in", authHandler.SignIn)

		// 公告与枚举字典对外公开
		v1.GET("/notices", noticeHandler.List)
		v1.GET("/metas", metasHandler.ListByType)

		// 需要会话的路由
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware(authService))
		{
			// 账号与会话
			authed.POST("/users/sign_out", authHandler.SignOut)
			authed.POST("/users/cancel", authHandler.Cancel)
			authed.GET("/users/me", userHandler.GetMe)
			authed.GET("/users", userHandler.List)
			authed.GET("/user", userHandler.GetByCode)
			authed.PUT("/user", userHandler.Update)

			// 用户组管理
			groupGroup := authed.Group("/user_group")
			{
				groupGroup.POST("", groupHandler.Create)         // 创建用户组
				groupGroup.GET("", groupHandler.GetByCode)       // 获取详情
				groupGroup.PUT("", groupHandler.Update)          // 更新用户组
				groupGroup.DELETE("/:code", groupHandler.Delete) // 解散用户组
			}
			authed.GET("/user_groups", groupHandler.Query) // 组合查询

			// 项目管理
			projectGroup := authed.Group("/project")
			{
				projectGroup.POST("", projectHandler.Create)         // 创建项目
				projectGroup.GET("", projectHandler.GetByCode)       // 获取详情
				projectGroup.PUT("", projectHandler.Update)          // 更新项目
				projectGroup.DELETE("/:code", projectHandler.Delete) // 删除项目
				projectGroup.POST("/join", projectHandler.Join)      // 加入项目
			}
			authed.GET("/projects", projectHandler.Query) // 组合查询，受可见性约束

			// 议题管理
			issueGroup := authed.Group("/issue")
			{
				issueGroup.POST("", issueHandler.Create)         // 创建议题
				issueGroup.GET("", issueHandler.GetByCode)       // 获取详情
				issueGroup.PUT("", issueHandler.Update)          // 更新议题
				issueGroup.DELETE("/:code", issueHandler.Delete) // 删除议题，评论级联
				issueGroup.POST("/follow", issueHandler.Follow)  // 关注/取关
			}
			authed.GET("/issues", issueHandler.Query) // 组合查询

			// 评论管理
			commentGroup := authed.Group("/comment")
			{
				commentGroup.POST("", commentHandler.Create)    // 新增评论
				commentGroup.POST("/fold", commentHandler.Fold) // 折叠/展开
			}
			authed.GET("/comments", commentHandler.List) // 按议题或评论人查询

			// 公告管理(仅管理员)
			noticeGroup := authed.Group("/notice")
			{
				noticeGroup.POST("", noticeHandler.Create)
				noticeGroup.DELETE("/:code", noticeHandler.Delete)
			}

			// 动态流水
			authed.GET("/activities", activityHandler.List)
			authed.GET("/activities/targets", activityHandler.ListByTargets)
		}
	}

	return r
}
