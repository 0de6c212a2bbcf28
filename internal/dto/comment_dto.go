package dto

// CreateCommentRequest 新增评论请求
type CreateCommentRequest struct {
	IssueCode  string   `json:"issue_code" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Appendices []string `json:"appendices"`
}

// FoldCommentRequest 折叠评论请求
type FoldCommentRequest struct {
	CommentCode string `json:"comment_code" binding:"required"`
	Fold        bool   `json:"fold"`
}

// CommentResponse 评论响应
type CommentResponse struct {
	CommentCode string   `json:"comment_code"`
	IssueCode   string   `json:"issue_code"`
	Commenter   string   `json:"commenter"`
	CommentTime string   `json:"comment_time"`
	Fold        bool     `json:"fold"`
	Content     string   `json:"content"`
	Appendices  []string `json:"appendices"`
}
