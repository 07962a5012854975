package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger 请求日志中间件
// 设计说明：
// 1. 为每个请求生成唯一的请求ID，回写到X-Request-ID响应头，便于排查问题
// 2. 记录方法、路径、状态码、耗时、客户端IP
// 3. 不记录请求体（可能包含密码等敏感信息）
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()

		c.Next()

		latency := time.Since(start)

		log.Printf("[%s] %s %s %d %v %s",
			requestID[:8],
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency,
			c.ClientIP(),
		)
	}
}
