package dto

// MetasResponse 枚举字典响应
type MetasResponse struct {
	MetaType  string  `json:"meta_type"`
	MetaValue string  `json:"meta_value"`
	Note      *string `json:"note"`
}
