package dto

// CreateNoticeRequest 发布公告请求，仅管理员可操作
type CreateNoticeRequest struct {
	Content string `json:"content" binding:"required"`
}

// QueryNoticeRequest 公告查询请求
type QueryNoticeRequest struct {
	Limit int `form:"limit"` // 可选：最多返回条数，不传返回全部
}

// NoticeResponse 公告响应
type NoticeResponse struct {
	NoticeCode string `json:"notice_code"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}
