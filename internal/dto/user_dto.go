package dto

// SignUpRequest 用户注册请求
type SignUpRequest struct {
	UserName    string  `json:"user_name" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Passwd      string  `json:"passwd" binding:"required,min=6"`
	Role        *string `json:"role" binding:"omitempty,oneof=Admin Normal Suspend"` // 可选：不传默认为Normal
	Description *string `json:"description"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
}

// SignInRequest 用户登录请求
type SignInRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Passwd string `json:"passwd" binding:"required"`
}

// SignInResponse 登录响应
type SignInResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expires_in"` // 有效期（秒）
	User      *UserResponse `json:"user"`
}

// UpdateUserRequest 更新用户资料请求，未提供的字段不变更
type UpdateUserRequest struct {
	UserCode    string  `json:"user_code" binding:"required"`
	UserName    *string `json:"user_name" binding:"omitempty,max=100"`
	Passwd      *string `json:"passwd" binding:"omitempty,min=6"`
	Description *string `json:"description"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	Avatar      *string `json:"avatar"`
}

// UserResponse 用户响应，不含口令与token
type UserResponse struct {
	UserCode    string  `json:"user_code"`
	UserName    string  `json:"user_name"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Avatar      *string `json:"avatar"`
	CreatedAt   string  `json:"created_at"`
}
