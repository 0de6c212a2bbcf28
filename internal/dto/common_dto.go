package dto

import "issuer/pkg/constants"

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int `form:"page"`      // 可选：页码，不传默认为1
	PageSize int `form:"page_size"` // 可选：每页数量，不传默认为10
}

// GetPage 获取页码
func (p *PageQuery) GetPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量
func (p *PageQuery) GetPageSize() int {
	if p.PageSize < 1 {
		return constants.DefaultPageSize
	}
	if p.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return p.PageSize
}

// CodeParam 业务编码参数
type CodeParam struct {
	Code string `uri:"code" binding:"required"`
}

// PageResponse 分页响应
type PageResponse struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// NewPageResponse 创建分页响应
func NewPageResponse(items interface{}, total int64, page, pageSize int) *PageResponse {
	return &PageResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
