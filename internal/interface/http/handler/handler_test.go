package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestParseID 测试路径ID解析
func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("合法ID解析成功", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		id, ok := parseID(c, "id")
		assert.True(t, ok)
		assert.Equal(t, uint(42), id)
	})

	// 对客户端而言"abc"和不存在的数字ID一样都是未知资源,统一返回404
	for _, raw := range []string{"abc", "0", "-1", "1.5", ""} {
		t.Run("非法ID返回404: "+raw, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: raw}}

			_, ok := parseID(c, "id")
			assert.False(t, ok)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}
