package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToStockEntity 测试库存条目模型到实体的转换
func TestToStockEntity(t *testing.T) {
	t.Run("展开关联图书", func(t *testing.T) {
		model := &StockEntryModel{
			ID:          1,
			BookstoreID: 2,
			BookID:      3,
			Quantity:    5,
			Book: BookModel{
				ID:     3,
				Title:  "Go圣经",
				Author: "Alan Donovan",
				Price:  79.0,
			},
		}

		entry := toStockEntity(model, true)

		assert.Equal(t, uint(2), entry.BookstoreID)
		assert.Equal(t, uint(3), entry.BookID)
		assert.Equal(t, 5, entry.Quantity)
		require.NotNil(t, entry.Book)
		assert.Equal(t, "Go圣经", entry.Book.Title)
	})

	t.Run("图书已删除时Book为nil", func(t *testing.T) {
		// 关联图书被软删除后Preload不回填,模型里留下零值BookModel
		model := &StockEntryModel{
			ID:          1,
			BookstoreID: 2,
			BookID:      3,
			Quantity:    5,
		}

		entry := toStockEntity(model, true)

		assert.Nil(t, entry.Book, "零值图书不应输出幽灵对象")
	})

	t.Run("概要场景不展开图书", func(t *testing.T) {
		model := &StockEntryModel{
			ID:          1,
			BookstoreID: 2,
			BookID:      3,
			Quantity:    5,
			Book:        BookModel{ID: 3, Title: "Go圣经"},
		}

		entry := toStockEntity(model, false)

		assert.Nil(t, entry.Book)
	})
}
