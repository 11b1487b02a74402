package dto

// Response 统一响应结构，code 与 HTTP 状态码一致
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
