package dto

// ErrorResponse 错误返回体
type ErrorResponse struct {
	Message string `json:"message"`
}
