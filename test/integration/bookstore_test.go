package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quantityURL 库存变更接口地址
func quantityURL(storeID, bookID uint) string {
	return fmt.Sprintf("%s/bookstores/%d/quantity/%d", BaseURL, storeID, bookID)
}

// TestBookstoreCreate 测试书店创建(仅ADMIN)
func TestBookstoreCreate(t *testing.T) {
	t.Run("ADMIN创建成功", func(t *testing.T) {
		_, adminToken := CreateTestUser(t, "store_admin", "ADMIN")

		resp := PostJSON(t, BaseURL+"/bookstores", map[string]string{
			"name":     "先锋书店",
			"location": "南京市五台山",
		}, adminToken)

		require.Equal(t, 0, resp.Code, "创建失败: %s", resp.Message)
		assert.Equal(t, http.StatusCreated, resp.Status)

		var data StoreData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.NotZero(t, data.ID)
		assert.Equal(t, "先锋书店", data.Name)
	})

	t.Run("店长创建返回403", func(t *testing.T) {
		_, managerToken := CreateTestUser(t, "store_manager", "STORE_MANAGER")

		resp := PostJSON(t, BaseURL+"/bookstores", map[string]string{
			"name": "n", "location": "l",
		}, managerToken)

		assert.Equal(t, http.StatusForbidden, resp.Status)
	})

	t.Run("未登录返回401", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/bookstores", map[string]string{
			"name": "n", "location": "l",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, resp.Status)
	})
}

// TestBookstoreRead 测试书店查询
func TestBookstoreRead(t *testing.T) {
	_, adminToken := CreateTestUser(t, "store_read_admin", "ADMIN")
	storeID := CreateTestStore(t, adminToken, "查询测试店")

	t.Run("列表是概要视图", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/bookstores", "")
		require.Equal(t, 0, resp.Code)

		var stores []map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(resp.Data, &stores))
		require.NotEmpty(t, stores)
		// 概要视图不携带stock字段
		assert.NotContains(t, stores[0], "stock")
	})

	t.Run("详情含库存集合", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/bookstores/%d", BaseURL, storeID), "")
		require.Equal(t, 0, resp.Code)

		var data StoreDetailData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, "查询测试店", data.Name)
		// 新店库存为空集合而非null
		assert.NotNil(t, data.Stock)
		assert.Empty(t, data.Stock)
	})

	t.Run("不存在的书店返回404", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/bookstores/99999999", "")
		assert.Equal(t, http.StatusNotFound, resp.Status)
	})
}

// TestUpdateQuantity 测试库存数量变更工作流
func TestUpdateQuantity(t *testing.T) {
	_, adminToken := CreateTestUser(t, "qty_admin", "ADMIN")
	_, managerToken := CreateTestUser(t, "qty_manager", "STORE_MANAGER")

	storeID := CreateTestStore(t, adminToken, "库存测试店")
	bookID := CreateTestBook(t, adminToken, "库存测试书")

	t.Run("首次变更懒创建条目", func(t *testing.T) {
		resp := PatchJSON(t, quantityURL(storeID, bookID), map[string]int{
			"quantity": 5,
		}, managerToken)

		require.Equal(t, 0, resp.Code, "变更失败: %s", resp.Message)

		var entry StockEntry
		require.NoError(t, json.Unmarshal(resp.Data, &entry))
		assert.Equal(t, storeID, entry.BookstoreID)
		assert.Equal(t, bookID, entry.BookID)
		assert.Equal(t, 5, entry.Quantity)
	})

	t.Run("再次变更累加", func(t *testing.T) {
		resp := PatchJSON(t, quantityURL(storeID, bookID), map[string]int{
			"quantity": 3,
		}, managerToken)

		require.Equal(t, 0, resp.Code)

		var entry StockEntry
		require.NoError(t, json.Unmarshal(resp.Data, &entry))
		assert.Equal(t, 8, entry.Quantity)
	})

	t.Run("负增量可减到负数", func(t *testing.T) {
		resp := PatchJSON(t, quantityURL(storeID, bookID), map[string]int{
			"quantity": -10,
		}, managerToken)

		require.Equal(t, 0, resp.Code)

		var entry StockEntry
		require.NoError(t, json.Unmarshal(resp.Data, &entry))
		assert.Equal(t, -2, entry.Quantity)
	})

	t.Run("详情展开库存与关联图书", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/bookstores/%d", BaseURL, storeID), "")
		require.Equal(t, 0, resp.Code)

		var data StoreDetailData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Len(t, data.Stock, 1)

		entry := data.Stock[0]
		assert.Equal(t, -2, entry.Quantity)
		require.NotNil(t, entry.Book, "详情中的库存条目应展开图书")
		assert.Equal(t, "库存测试书", entry.Book.Title)
	})

	t.Run("ADMIN变更库存返回403", func(t *testing.T) {
		// 角色无上下级关系,库存变更只放行STORE_MANAGER
		resp := PatchJSON(t, quantityURL(storeID, bookID), map[string]int{
			"quantity": 1,
		}, adminToken)

		assert.Equal(t, http.StatusForbidden, resp.Status)
	})

	t.Run("书店不存在返回404", func(t *testing.T) {
		resp := PatchJSON(t, quantityURL(99999999, bookID), map[string]int{
			"quantity": 1,
		}, managerToken)

		assert.Equal(t, http.StatusNotFound, resp.Status)
	})

	t.Run("图书不存在返回404", func(t *testing.T) {
		resp := PatchJSON(t, quantityURL(storeID, 99999999), map[string]int{
			"quantity": 1,
		}, managerToken)

		assert.Equal(t, http.StatusNotFound, resp.Status)
	})

	t.Run("缺少quantity字段返回400", func(t *testing.T) {
		resp := PatchJSON(t, quantityURL(storeID, bookID), map[string]string{}, managerToken)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})
}
