package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（0表示成功），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
// 4. HTTP状态码与业务错误码保持一致（由AppError.HTTPStatus推导），
//    REST客户端只看状态码也能正确区分404/409/401/403
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（HTTP 200，Code=0）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应（HTTP 201，Code=0）
// 用于POST创建资源的场景（注册、上架、建店、登录签发Token）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := userService.Create(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误细节只进日志，不回给客户端
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}

	c.JSON(appErr.HTTPStatus(), Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    nil,
	})
}

// BadRequest 参数绑定/校验失败响应（HTTP 400）
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    apperrors.ErrCodeBindError,
		Message: message,
		Data:    nil,
	})
}
