package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHTTPStatus 测试错误码到HTTP状态码的映射
func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"未登录", ErrUnauthorized, http.StatusUnauthorized},
		{"Token无效", ErrInvalidToken, http.StatusUnauthorized},
		{"Token过期", ErrTokenExpired, http.StatusUnauthorized},
		{"凭证错误", ErrBadCredentials, http.StatusUnauthorized},
		{"无权限是403不是401", ErrForbidden, http.StatusForbidden},
		{"用户不存在", ErrUserNotFound, http.StatusNotFound},
		{"图书不存在", ErrBookNotFound, http.StatusNotFound},
		{"书店不存在", ErrStoreNotFound, http.StatusNotFound},
		{"库存记录不存在", ErrStockNotFound, http.StatusNotFound},
		{"邮箱冲突", ErrEmailDuplicate, http.StatusConflict},
		{"参数错误", ErrInvalidParams, http.StatusBadRequest},
		{"非法角色", ErrInvalidRole, http.StatusBadRequest},
		{"内部错误", ErrInternal, http.StatusInternalServerError},
		{"数据库错误", ErrDatabaseError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

// TestWrap 测试系统错误包装
func TestWrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := Wrap(cause, "数据库连接失败")

	assert.Equal(t, ErrCodeInternal, err.Code)
	assert.Equal(t, "数据库连接失败", err.Message)
	// Unwrap链可以找回底层错误
	assert.ErrorIs(t, err, cause)
	// Error()同时包含业务信息和底层错误
	assert.Contains(t, err.Error(), "50000")
	assert.Contains(t, err.Error(), "connection refused")
}

// TestGetAppError 测试AppError提取
func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		got := GetAppError(ErrBookNotFound)
		assert.Same(t, ErrBookNotFound, got)
	})

	t.Run("包装过的AppError也能提取", func(t *testing.T) {
		wrapped := fmt.Errorf("查询图书: %w", ErrBookNotFound)
		got := GetAppError(wrapped)
		assert.Equal(t, ErrCodeBookNotFound, got.Code)
	})

	t.Run("未知错误包装为内部错误", func(t *testing.T) {
		got := GetAppError(errors.New("boom"))
		assert.Equal(t, ErrCodeInternal, got.Code)
		assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus())
	})
}

// TestIsAppError 测试AppError判断
func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrUserNotFound))
	assert.True(t, IsAppError(fmt.Errorf("外层: %w", ErrUserNotFound)))
	assert.False(t, IsAppError(errors.New("普通错误")))
	assert.False(t, IsAppError(nil))
}
