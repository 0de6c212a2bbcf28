package dto

// CreateUserGroupRequest 创建用户组请求，创建者即组长并自动入组
type CreateUserGroupRequest struct {
	GroupName string `json:"group_name" binding:"required,max=100"`
}

// UpdateUserGroupRequest 更新用户组请求，members为更新后的完整成员集合
type UpdateUserGroupRequest struct {
	GroupCode string   `json:"group_code" binding:"required"`
	GroupName string   `json:"group_name" binding:"required,max=100"`
	Owner     string   `json:"owner" binding:"required"`
	Members   []string `json:"members" binding:"required"`
}

// QueryUserGroupRequest 用户组组合查询请求
type QueryUserGroupRequest struct {
	PageQuery
	GroupCode string   `form:"group_code"`
	GroupName string   `form:"group_name"` // 模糊匹配
	Owner     string   `form:"owner"`
	Members   []string `form:"members"` // 含任一成员即命中
}

// UserGroupResponse 用户组响应
type UserGroupResponse struct {
	GroupCode string          `json:"group_code"`
	GroupName string          `json:"group_name"`
	Owner     *UserResponse   `json:"owner"`
	Members   []*UserResponse `json:"members"`
	CreatedAt string          `json:"created_at"`
}
