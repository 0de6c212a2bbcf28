package repository

import (
	"gorm.io/gorm"

	"issuer/internal/model"
)

type IssueCommentRepository interface {
	Create(comment *model.IssueComment) (string, error)
	FindByCode(commentCode string) (*model.IssueComment, error)
	UpdateFoldByCode(commentCode string, fold bool) error
	ListByIssue(issueCode string) ([]*model.IssueComment, error)
	ListByCommenter(userCode string) ([]*model.IssueComment, error)
	DeleteByIssue(issueCode string) error
}

type issueCommentRepository struct {
	db      *gorm.DB
	seqRepo SequenceRepository
}

func NewIssueCommentRepository(db *gorm.DB, seqRepo SequenceRepository) IssueCommentRepository {
	return &issueCommentRepository{db: db, seqRepo: seqRepo}
}

func (r *issueCommentRepository) Create(comment *model.IssueComment) (string, error) {
	if comment.CommentCode == "" {
		code, err := r.seqRepo.NextCode(model.CodePrefixIssueComment)
		if err != nil {
			return "", err
		}
		comment.CommentCode = code
	}
	if err := r.db.Create(comment).Error; err != nil {
		return "", wrapDBError("创建评论失败", err)
	}
	return comment.CommentCode, nil
}

func (r *issueCommentRepository) FindByCode(commentCode string) (*model.IssueComment, error) {
	var comment model.IssueComment
	err := r.db.Where("comment_code = ?", commentCode).First(&comment).Error
	if err != nil {
		return nil, wrapDBError("查询评论失败", err)
	}
	return &comment, nil
}

// UpdateFoldByCode 折叠/展开评论，评论内容本身不可改
func (r *issueCommentRepository) UpdateFoldByCode(commentCode string, fold bool) error {
	var result model.IssueComment
	if err := r.db.Where("comment_code = ?", commentCode).First(&result).Error; err != nil {
		return wrapDBError("查询评论失败", err)
	}

	result.Fold = fold
	if err := r.db.Save(&result).Error; err != nil {
		return wrapDBError("更新评论失败", err)
	}
	return nil
}

func (r *issueCommentRepository) ListByIssue(issueCode string) ([]*model.IssueComment, error) {
	var comments []*model.IssueComment
	err := r.db.Where("issue_code = ?", issueCode).Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, wrapDBError("查询评论列表失败", err)
	}
	return comments, nil
}

func (r *issueCommentRepository) ListByCommenter(userCode string) ([]*model.IssueComment, error) {
	var comments []*model.IssueComment
	err := r.db.Where("commenter = ?", userCode).Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, wrapDBError("查询评论列表失败", err)
	}
	return comments, nil
}

func (r *issueCommentRepository) DeleteByIssue(issueCode string) error {
	err := r.db.Where("issue_code = ?", issueCode).Delete(&model.IssueComment{}).Error
	if err != nil {
		return wrapDBError("删除评论失败", err)
	}
	return nil
}
