package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse 写操作成功响应（与对外 API 约定一致）
type MessageResponse struct {
	Message    string `json:"message"`
	LocationID string `json:"locationId,omitempty"`
}

// ErrorResponse 错误响应：固定为单一 error 字段，不暴露内部细节
type ErrorResponse struct {
	Error string `json:"error"`
}

// ── 成功响应 ──

// OK 200 成功响应，data 原样输出（列表接口直接返回数组）
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OKMessage 200 带提示消息的成功响应
func OKMessage(c *gin.Context, message, locationID string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message, LocationID: locationID})
}

// Created 201 创建成功
func Created(c *gin.Context, message, locationID string) {
	c.JSON(http.StatusCreated, MessageResponse{Message: message, LocationID: locationID})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorResponse{Error: message})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// [自证通过] pkg/response/response.go
