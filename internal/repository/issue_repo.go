package repository

import (
	"time"

	"gorm.io/gorm"

	"issuer/internal/model"
)

// IssueCondition 议题组合查询条件，零值字段不参与过滤
type IssueCondition struct {
	IssueCode   string
	ProjectCode string
	Owner       string
	Status      string
	IssueID     *int
	Title       string // 模糊匹配
	Description string // 模糊匹配
	StartDate   *time.Time
	EndDate     *time.Time
	Follower    string
	Assigned    string
	Tags        []string // 每个标签都必须命中
}

type IssueRepository interface {
	Create(issue *model.Issue) (string, error)
	FindByCode(issueCode string) (*model.Issue, error)
	UpdateByCode(issue *model.Issue) error
	DeleteByCode(issueCode string) error
	ListByCondition(cond *IssueCondition, page, pageSize int) ([]*model.Issue, error)
	CountByCondition(cond *IssueCondition) (int64, error)
}

type issueRepository struct {
	db      *gorm.DB
	seqRepo SequenceRepository
}

func NewIssueRepository(db *gorm.DB, seqRepo SequenceRepository) IssueRepository {
	return &issueRepository{db: db, seqRepo: seqRepo}
}

// Create 新增议题。项目内编号与议题行、标签行在同一事务内落库。
func (r *issueRepository) Create(issue *model.Issue) (string, error) {
	if issue.IssueCode == "" {
		code, err := r.seqRepo.NextCode(model.CodePrefixIssue)
		if err != nil {
			return "", err
		}
		issue.IssueCode = code
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		seq, err := r.seqRepo.NextIssueSeq(tx, issue.ProjectCode)
		if err != nil {
			return err
		}
		issue.IssueID = seq

		if err := tx.Create(issue).Error; err != nil {
			return err
		}
		return saveIssueLabels(tx, issue)
	})
	if err != nil {
		return "", wrapDBError("创建议题失败", err)
	}
	return issue.IssueCode, nil
}

func (r *issueRepository) FindByCode(issueCode string) (*model.Issue, error) {
	var issue model.Issue
	err := r.db.Where("issue_code = ?", issueCode).First(&issue).Error
	if err != nil {
		return nil, wrapDBError("查询议题失败", err)
	}
	if err := r.loadLabels([]*model.Issue{&issue}); err != nil {
		return nil, err
	}
	return &issue, nil
}

// UpdateByCode 按议题码更新，标签集合整体替换，与议题行同一事务
func (r *issueRepository) UpdateByCode(issue *model.Issue) error {
	var result model.Issue
	if err := r.db.Where("issue_code = ?", issue.IssueCode).First(&result).Error; err != nil {
		return wrapDBError("查询议题失败", err)
	}

	result.Title = issue.Title
	result.Description = issue.Description
	result.Status = issue.Status
	result.Tags = issue.Tags
	result.Followers = issue.Followers
	result.Assigned = issue.Assigned

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&result).Error; err != nil {
			return err
		}
		if err := tx.Where("issue_code = ?", result.IssueCode).
			Delete(&model.IssueLabel{}).Error; err != nil {
			return err
		}
		return saveIssueLabels(tx, &result)
	})
	if err != nil {
		return wrapDBError("更新议题失败", err)
	}
	return nil
}

// DeleteByCode 删除议题行及其标签行。评论不在此级联，由调用方显式清理。
func (r *issueRepository) DeleteByCode(issueCode string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("issue_code = ?", issueCode).Delete(&model.Issue{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("issue_code = ?", issueCode).Delete(&model.IssueLabel{}).Error
	})
	if err != nil {
		return wrapDBError("删除议题失败", err)
	}
	return nil
}

// buildCondition 组合查询。标签类条件经issue_labels子查询精确匹配，
// 不做逗号串的子串匹配，"no"不会误中"node"。
func (r *issueRepository) buildCondition(cond *IssueCondition) *gorm.DB {
	query := r.db.Model(&model.Issue{})

	if cond.IssueCode != "" {
		query = query.Where("issue_code = ?", cond.IssueCode)
	}
	if cond.ProjectCode != "" {
		query = query.Where("project_code = ?", cond.ProjectCode)
	}
	if cond.Owner != "" {
		query = query.Where("owner = ?", cond.Owner)
	}
	if cond.Status != "" {
		query = query.Where("status = ?", cond.Status)
	}
	if cond.IssueID != nil {
		query = query.Where("issue_id = ?", *cond.IssueID)
	}
	if cond.Title != "" {
		query = query.Where("title LIKE ?", "%"+cond.Title+"%")
	}
	if cond.Description != "" {
		query = query.Where("description LIKE ?", "%"+cond.Description+"%")
	}
	if cond.StartDate != nil {
		query = query.Where("propose_date >= ?", cond.StartDate)
	}
	if cond.EndDate != nil {
		query = query.Where("propose_date <= ?", cond.EndDate)
	}
	if cond.Follower != "" {
		query = query.Where("issue_code IN (?)", r.labelSubQuery(model.LabelKindFollower, cond.Follower))
	}
	if cond.Assigned != "" {
		query = query.Where("issue_code IN (?)", r.labelSubQuery(model.LabelKindAssignee, cond.Assigned))
	}
	for _, tag := range cond.Tags {
		query = query.Where("issue_code IN (?)", r.labelSubQuery(model.LabelKindTag, tag))
	}
	return query
}

func (r *issueRepository) labelSubQuery(kind, value string) *gorm.DB {
	return r.db.Model(&model.IssueLabel{}).
		Select("issue_code").
		Where("kind = ? AND value = ?", kind, value)
}

func (r *issueRepository) ListByCondition(cond *IssueCondition, page, pageSize int) ([]*model.Issue, error) {
	var issues []*model.Issue
	err := r.buildCondition(cond).
		Order("id ASC").
		Offset(Offset(page, pageSize)).
		Limit(pageSize).
		Find(&issues).Error
	if err != nil {
		return nil, wrapDBError("查询议题列表失败", err)
	}
	if err := r.loadLabels(issues); err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *issueRepository) CountByCondition(cond *IssueCondition) (int64, error) {
	var total int64
	err := r.buildCondition(cond).Count(&total).Error
	if err != nil {
		return 0, wrapDBError("统计议题失败", err)
	}
	return total, nil
}

// loadLabels 回填议题的标签集合
func (r *issueRepository) loadLabels(issues []*model.Issue) error {
	if len(issues) == 0 {
		return nil
	}

	codes := make([]string, 0, len(issues))
	byCode := make(map[string]*model.Issue, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.IssueCode)
		byCode[issue.IssueCode] = issue
		issue.Tags = []string{}
		issue.Followers = []string{}
		issue.Assigned = []string{}
	}

	var labels []*model.IssueLabel
	err := r.db.Where("issue_code IN ?", codes).Order("id ASC").Find(&labels).Error
	if err != nil {
		return wrapDBError("查询议题标签失败", err)
	}

	for _, label := range labels {
		issue, ok := byCode[label.IssueCode]
		if !ok {
			continue
		}
		switch label.Kind {
		case model.LabelKindTag:
			issue.Tags = append(issue.Tags, label.Value)
		case model.LabelKindFollower:
			issue.Followers = append(issue.Followers, label.Value)
		case model.LabelKindAssignee:
			issue.Assigned = append(issue.Assigned, label.Value)
		}
	}
	return nil
}

// saveIssueLabels 写入议题的三类标签行
func saveIssueLabels(tx *gorm.DB, issue *model.Issue) error {
	rows := make([]model.IssueLabel, 0, len(issue.Tags)+len(issue.Followers)+len(issue.Assigned))
	for _, v := range issue.Tags {
		rows = append(rows, model.IssueLabel{IssueCode: issue.IssueCode, Kind: model.LabelKindTag, Value: v})
	}
	for _, v := range issue.Followers {
		rows = append(rows, model.IssueLabel{IssueCode: issue.IssueCode, Kind: model.LabelKindFollower, Value: v})
	}
	for _, v := range issue.Assigned {
		rows = append(rows, model.IssueLabel{IssueCode: issue.IssueCode, Kind: model.LabelKindAssignee, Value: v})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
