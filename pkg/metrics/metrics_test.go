package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getCounterValue 读取CounterVec指定label组合的当前值
func getCounterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()

	counter, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)

	var m dto.Metric
	require.NoError(t, counter.Write(&m))
	return m.GetCounter().GetValue()
}

// TestMiddlewareCountsRequests 测试请求计数中间件
func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/books/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// 不同ID的请求应归并到同一个path label
	for _, path := range []string{"/books/1", "/books/2", "/books/3"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	value := getCounterValue(t, m.requestsTotal, "GET", "/books/:id", "200")
	assert.Equal(t, float64(3), value)
}

// TestMiddlewareUnmatchedRoute 测试404路由的label归并
func TestMiddlewareUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := New()
	r := gin.New()
	r.Use(m.Middleware())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	r.ServeHTTP(w, req)

	value := getCounterValue(t, m.requestsTotal, "GET", "unmatched", "404")
	assert.Equal(t, float64(1), value)
}

// TestHandlerExposesMetrics 测试/metrics端点输出
func TestHandlerExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/metrics", m.Handler())

	// 先产生一条请求记录
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// /metrics应包含两个指标
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "http_request_duration_seconds")
}

// TestIndependentRegistries 测试每个实例使用独立Registry
func TestIndependentRegistries(t *testing.T) {
	// 两次New不应因重复注册而panic
	m1 := New()
	m2 := New()

	m1.requestsTotal.WithLabelValues("GET", "/ping", "200").Inc()

	assert.Equal(t, float64(1), getCounterValue(t, m1.requestsTotal, "GET", "/ping", "200"))
	assert.Equal(t, float64(0), getCounterValue(t, m2.requestsTotal, "GET", "/ping", "200"))
}
