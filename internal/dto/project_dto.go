package dto

// CreateProjectRequest 创建项目请求，创建者即负责人并自动成为参与者
type CreateProjectRequest struct {
	ProjectName string  `json:"project_name" binding:"required,max=100"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
	Budget      *string `json:"budget"`
	Privilege   string  `json:"privilege" binding:"required,oneof=Public Private"`
}

// UpdateProjectRequest 更新项目请求，仅负责人可操作
type UpdateProjectRequest struct {
	ProjectCode string  `json:"project_code" binding:"required"`
	ProjectName string  `json:"project_name" binding:"required,max=100"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Owner       string  `json:"owner" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"required,oneof=Start Processing Check Finished"`
	Budget      *string `json:"budget"`
	Privilege   string  `json:"privilege" binding:"required,oneof=Public Private"`
}

// QueryProjectRequest 项目组合查询请求，结果受可见性约束
type QueryProjectRequest struct {
	PageQuery
	ProjectCode  string   `form:"project_code"`
	ProjectName  string   `form:"project_name"` // 模糊匹配
	BeforeDate   string   `form:"before_date" binding:"omitempty,datetime=2006-01-02"`
	AfterDate    string   `form:"after_date" binding:"omitempty,datetime=2006-01-02"`
	Owner        string   `form:"owner"`
	Status       string   `form:"status" binding:"omitempty,oneof=Start Processing Check Finished"`
	Participants []string `form:"participants"` // 含任一参与者即命中
}

// AddParticipantRequest 项目加人请求
type AddParticipantRequest struct {
	ProjectCode string `json:"project_code" binding:"required"`
	UserCode    string `json:"user_code" binding:"required"`
}

// ProjectResponse 项目响应
type ProjectResponse struct {
	ProjectCode  string          `json:"project_code"`
	ProjectName  string          `json:"project_name"`
	StartDate    string          `json:"start_date"`
	EndDate      *string         `json:"end_date"`
	Owner        *UserResponse   `json:"owner"`
	Description  *string         `json:"description"`
	Status       string          `json:"status"`
	Budget       *string         `json:"budget"`
	Privilege    string          `json:"privilege"`
	Participants []*UserResponse `json:"participants,omitempty"`
	CreatedAt    string          `json:"created_at"`
}
