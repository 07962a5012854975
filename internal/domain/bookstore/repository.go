package bookstore

import (
	"context"
)

// Repository 书店仓储接口(依赖倒置原则)
// 库存条目没有独立聚合,其持久化操作归属书店仓储
type Repository interface {
	// Create 创建书店
	Create(ctx context.Context, store *Bookstore) error

	// FindAll 查询全部书店(不加载库存,概要视图)
	FindAll(ctx context.Context) ([]*Bookstore, error)

	// FindByID 根据ID查找书店(不加载库存,用于存在性判断)
	// 不存在返回ErrStoreNotFound
	FindByID(ctx context.Context, id uint) (*Bookstore, error)

	// FindByIDWithStock 根据ID查找书店并加载全部库存条目,
	// 每个条目展开其关联图书;不存在返回ErrStoreNotFound
	FindByIDWithStock(ctx context.Context, id uint) (*Bookstore, error)

	// FindStock 查找(书店,图书)对应的库存条目
	// 不存在返回ErrStockNotFound(调用方据此懒创建)
	FindStock(ctx context.Context, storeID, bookID uint) (*StockEntry, error)

	// CreateStock 创建库存条目
	CreateStock(ctx context.Context, entry *StockEntry) error

	// SaveStock 持久化库存条目的数量变更
	SaveStock(ctx context.Context, entry *StockEntry) error
}
