package dto

// CreateIssueRequest 创建议题请求
type CreateIssueRequest struct {
	ProjectCode string   `json:"project_code" binding:"required"`
	Title       string   `json:"title" binding:"required,max=200"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	Followers   []string `json:"followers"`
	Assigned    []string `json:"assigned"`
}

// UpdateIssueRequest 更新议题请求，标签集合整体替换
type UpdateIssueRequest struct {
	IssueCode   string   `json:"issue_code" binding:"required"`
	Title       string   `json:"title" binding:"required,max=200"`
	Description *string  `json:"description"`
	Status      string   `json:"status" binding:"required,oneof=Open Finished Closed"`
	Tags        []string `json:"tags"`
	Followers   []string `json:"followers"`
	Assigned    []string `json:"assigned"`
}

// FollowIssueRequest 关注/取关议题请求
type FollowIssueRequest struct {
	IssueCode string `json:"issue_code" binding:"required"`
	Follow    bool   `json:"follow"`
}

// QueryIssueRequest 议题组合查询请求
type QueryIssueRequest struct {
	PageQuery
	IssueCode   string   `form:"issue_code"`
	ProjectCode string   `form:"project_code"`
	Owner       string   `form:"owner"`
	Status      string   `form:"status" binding:"omitempty,oneof=Open Finished Closed"`
	IssueID     *int     `form:"issue_id"`
	Title       string   `form:"title"`       // 模糊匹配
	Description string   `form:"description"` // 模糊匹配
	StartDate   string   `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string   `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Follower    string   `form:"follower"`
	Assigned    string   `form:"assigned"`
	Tags        []string `form:"tags"` // 每个标签都必须命中
}

// IssueResponse 议题响应
type IssueResponse struct {
	IssueCode   string   `json:"issue_code"`
	ProjectCode string   `json:"project_code"`
	IssueID     int      `json:"issue_id"` // 项目内编号
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Owner       string   `json:"owner"`
	ProposeDate string   `json:"propose_date"`
	Status      string   `json:"status"`
	Tags        []string `json:"tags"`
	Followers   []string `json:"followers"`
	Assigned    []string `json:"assigned"`
	CreatedAt   string   `json:"created_at"`
}
