package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookstore-inventory/pkg/errors"
	"github.com/xiebiao/bookstore-inventory/pkg/response"
)

// parseID 解析路径参数中的数字ID
// 解析失败时直接写404响应并返回false，调用方应立即return。
// 对客户端而言"abc"和不存在的数字ID一样都是未知资源，统一按404处理
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(c, apperrors.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}
