package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBookCreate 测试图书上架(仅ADMIN)
func TestBookCreate(t *testing.T) {
	_, adminToken := CreateTestUser(t, "book_admin", "ADMIN")

	t.Run("ADMIN创建成功", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":  "Go语言实战",
			"author": "William Kennedy",
			"price":  59.0,
		}, adminToken)

		require.Equal(t, 0, resp.Code, "创建失败: %s", resp.Message)
		assert.Equal(t, http.StatusCreated, resp.Status)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotZero(t, data.ID)
		assert.Equal(t, "Go语言实战", data.Title)
		assert.Equal(t, 59.0, data.Price)
	})

	t.Run("价格为0合法", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title":  "免费电子书",
			"author": "佚名",
			"price":  0,
		}, adminToken)

		assert.Equal(t, 0, resp.Code, "价格0应能通过校验: %s", resp.Message)
	})

	t.Run("普通用户返回403", func(t *testing.T) {
		_, userToken := CreateTestUser(t, "book_user", "")

		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title": "t", "author": "a", "price": 1.0,
		}, userToken)

		assert.Equal(t, http.StatusForbidden, resp.Status)
	})

	t.Run("店长也返回403", func(t *testing.T) {
		// 角色无上下级关系,STORE_MANAGER不能管理图书目录
		_, managerToken := CreateTestUser(t, "book_manager", "STORE_MANAGER")

		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title": "t", "author": "a", "price": 1.0,
		}, managerToken)

		assert.Equal(t, http.StatusForbidden, resp.Status)
	})

	t.Run("缺少必填字段返回400", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"title": "只有书名",
		}, adminToken)

		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})
}

// TestBookReadPublic 测试图书读取是公开接口
func TestBookReadPublic(t *testing.T) {
	_, adminToken := CreateTestUser(t, "book_read_admin", "ADMIN")
	bookID := CreateTestBook(t, adminToken, "公开可读的书")

	t.Run("未登录可查列表", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books", "")
		require.Equal(t, 0, resp.Code)

		var books []BookData
		require.NoError(t, json.Unmarshal(resp.Data, &books))
		assert.NotEmpty(t, books)
	})

	t.Run("未登录可查详情", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
		require.Equal(t, 0, resp.Code)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "公开可读的书", data.Title)
	})

	t.Run("不存在的图书返回404", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/99999999", "")
		assert.Equal(t, http.StatusNotFound, resp.Status)
	})
}

// TestBookUpdate 测试图书部分更新
func TestBookUpdate(t *testing.T) {
	_, adminToken := CreateTestUser(t, "book_upd_admin", "ADMIN")
	bookID := CreateTestBook(t, adminToken, "更新前书名")
	url := fmt.Sprintf("%s/books/%d", BaseURL, bookID)

	t.Run("只改价格其余保留", func(t *testing.T) {
		resp := PatchJSON(t, url, map[string]interface{}{"price": 99.9}, adminToken)
		require.Equal(t, 0, resp.Code, "更新失败: %s", resp.Message)

		var data BookData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 99.9, data.Price)
		assert.Equal(t, "更新前书名", data.Title)
	})

	t.Run("普通用户返回403", func(t *testing.T) {
		_, userToken := CreateTestUser(t, "book_upd_user", "")

		resp := PatchJSON(t, url, map[string]interface{}{"price": 1.0}, userToken)
		assert.Equal(t, http.StatusForbidden, resp.Status)
	})
}

// TestBookDelete 测试图书删除
func TestBookDelete(t *testing.T) {
	_, adminToken := CreateTestUser(t, "book_del_admin", "ADMIN")
	bookID := CreateTestBook(t, adminToken, "待删除的书")
	url := fmt.Sprintf("%s/books/%d", BaseURL, bookID)

	resp := DeleteJSON(t, url, adminToken)
	assert.Equal(t, 0, resp.Code, "删除应该成功")

	resp = GetJSON(t, url, "")
	assert.Equal(t, http.StatusNotFound, resp.Status)
}
