package dto

// ErrorDTO 错误响应体
type ErrorDTO struct {
	Detail string `json:"detail"`
}
