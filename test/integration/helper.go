package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// 集成测试辅助工具
// 运行前提:服务已启动(依赖真实MySQL与Redis)
//
//	go test -v ./test/integration/...

const (
	// BaseURL API基础URL
	BaseURL = "http://localhost:8080"
	// Timeout HTTP请求超时时间
	Timeout = 10 * time.Second
)

// Response 统一响应结构
type Response struct {
	// Status HTTP状态码(从响应中另行记录,不在JSON体内)
	Status  int             `json:"-"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// UserData 用户响应数据
type UserData struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginData 登录响应数据
type LoginData struct {
	AccessToken string `json:"accessToken"`
}

// BookData 图书响应数据
type BookData struct {
	ID     uint    `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
}

// StoreData 书店响应数据
type StoreData struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// StoreDetailData 书店详情响应数据(含库存)
type StoreDetailData struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Location string       `json:"location"`
	Stock    []StockEntry `json:"stock"`
}

// StockEntry 库存条目响应数据
type StockEntry struct {
	ID          uint      `json:"id"`
	BookstoreID uint      `json:"bookstore_id"`
	BookID      uint      `json:"book_id"`
	Quantity    int       `json:"quantity"`
	Book        *BookData `json:"book"`
}

// doJSON 发送带JSON体的请求并解析统一响应
func doJSON(t *testing.T, method, url string, data interface{}, token string) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")

	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	err = json.Unmarshal(raw, &result)
	require.NoError(t, err, "解析JSON响应失败: %s", string(raw))

	result.Status = resp.StatusCode
	return &result
}

// PostJSON 发送POST请求
func PostJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPost, url, data, token)
}

// PatchJSON 发送PATCH请求
func PatchJSON(t *testing.T, url string, data interface{}, token string) *Response {
	return doJSON(t, http.MethodPatch, url, data, token)
}

// GetJSON 发送GET请求
func GetJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodGet, url, nil, token)
}

// DeleteJSON 发送DELETE请求
func DeleteJSON(t *testing.T, url string, token string) *Response {
	return doJSON(t, http.MethodDelete, url, nil, token)
}

// GenerateTestEmail 生成唯一的测试邮箱
// 使用纳秒时间戳避免重复运行时邮箱冲突
func GenerateTestEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateTestUser 创建指定角色的测试用户并登录,返回邮箱和Token
func CreateTestUser(t *testing.T, prefix, role string) (email string, token string) {
	t.Helper()

	email = GenerateTestEmail(prefix)
	createReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}
	if role != "" {
		createReq["role"] = role
	}

	createResp := PostJSON(t, BaseURL+"/users", createReq, "")
	require.Equal(t, 0, createResp.Code, "创建用户失败: %s", createResp.Message)

	loginReq := map[string]string{
		"email":    email,
		"password": "Test1234",
	}
	loginResp := PostJSON(t, BaseURL+"/auth/login", loginReq, "")
	require.Equal(t, 0, loginResp.Code, "登录失败: %s", loginResp.Message)

	var loginData LoginData
	err := json.Unmarshal(loginResp.Data, &loginData)
	require.NoError(t, err, "解析登录响应失败")
	require.NotEmpty(t, loginData.AccessToken, "登录应返回accessToken")

	return email, loginData.AccessToken
}

// CreateTestBook 创建测试图书(需要ADMIN Token),返回图书ID
func CreateTestBook(t *testing.T, adminToken, title string) uint {
	t.Helper()

	bookReq := map[string]interface{}{
		"title":  title,
		"author": "测试作者",
		"price":  42.5,
	}

	resp := PostJSON(t, BaseURL+"/books", bookReq, adminToken)
	require.Equal(t, 0, resp.Code, "创建图书失败: %s", resp.Message)

	var data BookData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析图书响应失败")
	return data.ID
}

// CreateTestStore 创建测试书店(需要ADMIN Token),返回书店ID
func CreateTestStore(t *testing.T, adminToken, name string) uint {
	t.Helper()

	storeReq := map[string]string{
		"name":     name,
		"location": "测试地址",
	}

	resp := PostJSON(t, BaseURL+"/bookstores", storeReq, adminToken)
	require.Equal(t, 0, resp.Code, "创建书店失败: %s", resp.Message)

	var data StoreData
	err := json.Unmarshal(resp.Data, &data)
	require.NoError(t, err, "解析书店响应失败")
	return data.ID
}
