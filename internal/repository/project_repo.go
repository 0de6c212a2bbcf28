package repository

import (
	"time"

	"gorm.io/gorm"

	"issuer/internal/model"
	pkgErrors "issuer/pkg/errors"
)

// ProjectCondition 项目组合查询条件，零值字段不参与过滤
type ProjectCondition struct {
	ProjectCode  string
	ProjectName  string // 模糊匹配
	BeforeDate   *time.Time
	AfterDate    *time.Time
	Owner        string
	Status       string
	Participants []string // 含任一参与者即命中
}

type ProjectRepository interface {
	Create(project *model.Project) (string, error)
	FindByCode(projectCode string) (*model.Project, error)
	UpdateByCode(project *model.Project) error
	DeleteByCode(projectCode string) error
	ListByOwner(owner string, page, pageSize int) ([]*model.Project, error)
	ListByCondition(currentUser string, cond *ProjectCondition, page, pageSize int) ([]*model.Project, error)
	CountByCondition(currentUser string, cond *ProjectCondition) (int64, error)
}

type projectRepository struct {
	db      *gorm.DB
	seqRepo SequenceRepository
}

func NewProjectRepository(db *gorm.DB, seqRepo SequenceRepository) ProjectRepository {
	return &projectRepository{db: db, seqRepo: seqRepo}
}

func (r *projectRepository) Create(project *model.Project) (string, error) {
	if project.ProjectCode == "" {
		code, err := r.seqRepo.NextCode(model.CodePrefixProject)
		if err != nil {
			return "", err
		}
		project.ProjectCode = code
	}
	if err := r.db.Create(project).Error; err != nil {
		return "", wrapDBError("创建项目失败", err)
	}
	return project.ProjectCode, nil
}

func (r *projectRepository) FindByCode(projectCode string) (*model.Project, error) {
	var project model.Project
	err := r.db.Where("project_code = ?", projectCode).First(&project).Error
	if err != nil {
		return nil, wrapDBError("查询项目失败", err)
	}
	return &project, nil
}

func (r *projectRepository) UpdateByCode(project *model.Project) error {
	var result model.Project
	if err := r.db.Where("project_code = ?", project.ProjectCode).First(&result).Error; err != nil {
		return wrapDBError("查询项目失败", err)
	}

	result.ProjectName = project.ProjectName
	result.StartDate = project.StartDate
	result.EndDate = project.EndDate
	result.Owner = project.Owner
	result.Description = project.Description
	result.Status = project.Status
	result.Budget = project.Budget
	result.Privilege = project.Privilege

	if err := r.db.Save(&result).Error; err != nil {
		return wrapDBError("更新项目失败", err)
	}
	return nil
}

func (r *projectRepository) DeleteByCode(projectCode string) error {
	res := r.db.Where("project_code = ?", projectCode).Delete(&model.Project{})
	if res.Error != nil {
		return wrapDBError("删除项目失败", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgErrors.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepository) ListByOwner(owner string, page, pageSize int) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.db.Where("owner = ?", owner).
		Order("id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&projects).Error
	if err != nil {
		return nil, wrapDBError("查询项目列表失败", err)
	}
	return projects, nil
}

// buildCondition 组合查询。可见性过滤直接下推到SQL：
// 公开项目、本人负责或本人参与的项目之外的行不会出现在结果集里。
func (r *projectRepository) buildCondition(currentUser string, cond *ProjectCondition) *gorm.DB {
	query := r.db.Model(&model.Project{}).
		Joins("JOIN project_to_user ON project_to_user.project_code = projects.project_code")

	if cond.ProjectCode != "" {
		query = query.Where("projects.project_code = ?", cond.ProjectCode)
	}
	if cond.ProjectName != "" {
		query = query.Where("projects.project_name LIKE ?", "%"+cond.ProjectName+"%")
	}
	if cond.BeforeDate != nil {
		query = query.Where("projects.start_date < ?", cond.BeforeDate)
	}
	if cond.AfterDate != nil {
		query = query.Where("projects.start_date > ?", cond.AfterDate)
	}
	if cond.Owner != "" {
		query = query.Where("projects.owner = ?", cond.Owner)
	}
	if cond.Status != "" {
		query = query.Where("projects.status = ?", cond.Status)
	}
	if len(cond.Participants) > 0 {
		query = query.Where("project_to_user.user_code IN ?", cond.Participants)
	}

	return query.Where(
		"projects.privilege = ? OR projects.owner = ? OR project_to_user.user_code = ?",
		model.PrivilegePublic, currentUser, currentUser,
	)
}

func (r *projectRepository) ListByCondition(currentUser string, cond *ProjectCondition, page, pageSize int) ([]*model.Project, error) {
	var projects []*model.Project
	err := r.buildCondition(currentUser, cond).
		Select("DISTINCT projects.*").
		Order("projects.id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&projects).Error
	if err != nil {
		return nil, wrapDBError("查询项目列表失败", err)
	}
	return projects, nil
}

func (r *projectRepository) CountByCondition(currentUser string, cond *ProjectCondition) (int64, error) {
	var total int64
	err := r.buildCondition(currentUser, cond).
		Distinct("projects.id").
		Count(&total).Error
	if err != nil {
		return 0, wrapDBError("统计项目失败", err)
	}
	return total, nil
}
