package dto

// QueryActivityRequest 动态流查询请求
type QueryActivityRequest struct {
	Subject string `form:"subject"` // 按发起人查询
	Limit   int    `form:"limit"`   // 可选：最多返回条数
}

// ActivityResponse 动态响应
type ActivityResponse struct {
	Subject   string                 `json:"subject"`
	Target    string                 `json:"target"`
	Category  string                 `json:"category"`
	ExtInfo   map[string]interface{} `json:"ext_info,omitempty"`
	CreatedAt string                 `json:"created_at"`
}
