package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"issuer/internal/pkg/config"
	"issuer/internal/service"
)

// Scheduler 调度器，目前只承载动态流水的定期清理
type Scheduler struct {
	cron        *cron.Cron
	logger      *zap.Logger
	activitySvc service.ActivityService
	cfg         *config.ActivityConfig
}

// NewScheduler 创建调度器
func NewScheduler(logger *zap.Logger, cfg *config.ActivityConfig, activitySvc service.ActivityService) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:        c,
		logger:      logger,
		activitySvc: activitySvc,
		cfg:         cfg,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	log := s.logger.Sugar()

	log.Info("启动定时任务调度器...")

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := s.cfg.PruneCron
	if cronExpr == "" {
		cronExpr = "0 0 3 * * *" // 默认: 每天凌晨3点
		log.Warnf("未配置activity.prune_cron，使用默认值: %s", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("执行定时任务: 动态流水清理")
		pruned, err := s.activitySvc.Prune(s.cfg.RetentionDays)
		if err != nil {
			log.Errorf("动态流水清理任务执行失败: %v", err)
			return
		}
		log.Infof("动态流水清理完成, 删除 %d 条", pruned)
	})
	if err != nil {
		log.Errorf("注册动态流水清理任务失败: %v", err)
		return err
	}

	s.cron.Start()
	log.Infof("定时任务调度器启动成功: %s entry_id=%d", cronExpr, entryID)

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}
